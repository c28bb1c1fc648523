package repository

import (
	"fmt"

	"github.com/motorlane/carstock/internal/query"
)

// clause is one SQL condition derived from a predicate. Join reports
// whether the condition references the manufacturers table.
type clause struct {
	Cond string
	Args []any
	Join bool
}

// predicateClause maps a typed predicate onto its SQL condition. The switch
// is exhaustive over the closed predicate set; an unknown type is a
// programming error.
func predicateClause(p query.Predicate) (clause, error) {
	switch pred := p.(type) {
	case query.SalesEquals:
		return clause{Cond: "cars.sales = ?", Args: []any{pred.Count}}, nil
	case query.PriceAtLeast:
		return clause{Cond: "cars.price >= ?", Args: []any{pred.Amount}}, nil
	case query.PriceAtMost:
		return clause{Cond: "cars.price <= ?", Args: []any{pred.Amount}}, nil
	case query.ModelContains:
		return clause{Cond: "cars.model_name ILIKE ?", Args: []any{"%" + pred.Term + "%"}}, nil
	case query.SegmentIs:
		return clause{Cond: "cars.segment = ?", Args: []any{string(pred.Segment)}}, nil
	case query.ManufacturerIs:
		return clause{Cond: "manufacturers.name = ?", Args: []any{pred.Name}, Join: true}, nil
	default:
		return clause{}, fmt.Errorf("unsupported predicate type %T", p)
	}
}

// orderClause renders a whitelisted sort as an ORDER BY expression. Sort
// fields are validated at the boundary, never interpolated from raw input.
func orderClause(sort query.Sort) string {
	direction := "ASC"
	if sort.Desc {
		direction = "DESC"
	}
	return fmt.Sprintf("cars.%s %s", sort.Field, direction)
}
