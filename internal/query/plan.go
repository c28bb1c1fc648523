package query

// Sort orders a result page by one whitelisted car column.
type Sort struct {
	Field string
	Desc  bool
}

// Pageable carries pagination for one request. Page is 0-based; Size must
// be positive. Normalize before handing raw transport input to Compile.
type Pageable struct {
	Page int
	Size int
	Sort Sort
}

// Normalize clamps out-of-range pagination to safe values.
func (p Pageable) Normalize() Pageable {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.Sort.Field == "" {
		p.Sort.Field = DefaultSortField
	}
	return p
}

// Offset returns the row offset for the requested page.
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

const (
	DefaultPageSize  = 20
	MaxPageSize      = 100
	DefaultSortField = "id"
)

// Plan is an immutable set of predicates plus pagination, built once by
// Compile and executed once. Predicate order never affects results, only
// which constraint a backend applies first.
type Plan struct {
	predicates []Predicate
	page       Pageable
}

// Predicates returns a copy of the plan's predicate set.
func (p *Plan) Predicates() []Predicate {
	out := make([]Predicate, len(p.predicates))
	copy(out, p.predicates)
	return out
}

// Pageable returns the plan's pagination parameters.
func (p *Plan) Pageable() Pageable {
	return p.page
}
