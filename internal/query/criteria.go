package query

import (
	"strconv"

	"github.com/motorlane/carstock/internal/model"
)

// RawCriteria is the loosely-typed input to Compile: one optional textual
// value per recognized criterion. An empty string means "no constraint".
// Built per request from boundary input and consumed exactly once.
type RawCriteria struct {
	Sales        string
	MinPrice     string
	MaxPrice     string
	Model        string
	Segment      string
	Manufacturer string
}

// Compile validates the criteria and builds an immutable Plan.
//
// Criteria are processed in a fixed order (sales, minPrice, maxPrice,
// model, segment, manufacturer) and the first invalid value aborts the
// whole compile, so a caller always sees exactly one offending field.
// An inverted price range (min > max) is not an error here: both bounds
// are independently valid predicates that happen to never match together.
func Compile(raw RawCriteria, page Pageable) (*Plan, error) {
	var predicates []Predicate

	if raw.Sales != "" {
		count, err := strconv.Atoi(raw.Sales)
		if err != nil {
			return nil, &InvalidNumberError{Field: "sales"}
		}
		predicates = append(predicates, SalesEquals{Count: count})
	}

	if raw.MinPrice != "" {
		amount, err := strconv.ParseFloat(raw.MinPrice, 64)
		if err != nil {
			return nil, &InvalidNumberError{Field: "minPrice"}
		}
		predicates = append(predicates, PriceAtLeast{Amount: amount})
	}

	if raw.MaxPrice != "" {
		amount, err := strconv.ParseFloat(raw.MaxPrice, 64)
		if err != nil {
			return nil, &InvalidNumberError{Field: "maxPrice"}
		}
		predicates = append(predicates, PriceAtMost{Amount: amount})
	}

	if raw.Model != "" {
		predicates = append(predicates, ModelContains{Term: raw.Model})
	}

	if raw.Segment != "" {
		segment, err := model.ParseSegment(raw.Segment)
		if err != nil {
			return nil, &InvalidEnumError{Field: "segment"}
		}
		predicates = append(predicates, SegmentIs{Segment: segment})
	}

	if raw.Manufacturer != "" {
		// Existence of the manufacturer is deliberately not checked here;
		// an unknown name executes to an empty page.
		predicates = append(predicates, ManufacturerIs{Name: raw.Manufacturer})
	}

	return &Plan{
		predicates: predicates,
		page:       page.Normalize(),
	}, nil
}
