package query

// Page is one page of filtered results plus pagination metadata.
// TotalCount is the size of the full filtered set, not the returned slice;
// TotalPages is derived from it and the page size.
type Page[T any] struct {
	Items      []T
	TotalCount int64
	TotalPages int
	Page       int
	Size       int
}
