package query

import "github.com/motorlane/carstock/internal/model"

// Predicate is one validated, typed constraint on a car record. The set of
// implementations is closed: exactly one per recognized criterion, so a
// store backend can exhaustively type-switch without ever touching a
// string-keyed parameter bag.
type Predicate interface {
	predicate()
}

// SalesEquals matches cars whose sales count is exactly Count.
type SalesEquals struct {
	Count int
}

// PriceAtLeast matches cars priced at or above Amount.
type PriceAtLeast struct {
	Amount float64
}

// PriceAtMost matches cars priced at or below Amount.
type PriceAtMost struct {
	Amount float64
}

// ModelContains matches cars whose model name contains Term
// (case-insensitive).
type ModelContains struct {
	Term string
}

// SegmentIs matches cars in the given market segment.
type SegmentIs struct {
	Segment model.Segment
}

// ManufacturerIs matches cars whose manufacturer has the given name. The
// name is a reference key: a name with no matching manufacturer yields zero
// results at execution time, not a compile error.
type ManufacturerIs struct {
	Name string
}

func (SalesEquals) predicate()    {}
func (PriceAtLeast) predicate()   {}
func (PriceAtMost) predicate()    {}
func (ModelContains) predicate()  {}
func (SegmentIs) predicate()      {}
func (ManufacturerIs) predicate() {}
