package query

import (
	"context"
	"math"
)

// Store is the record store a Plan executes against. Implementations must
// combine the given predicates with logical AND and keep ordering stable
// across page requests in the absence of concurrent writes.
//
// The store is always passed in by the caller; this package never reaches
// for a shared instance.
type Store[T any] interface {
	FindPage(ctx context.Context, predicates []Predicate, page Pageable) ([]T, error)
	Count(ctx context.Context, predicates []Predicate) (int64, error)
}

// Execute runs the plan against the store and returns exactly one page.
//
// The total count is computed with the same predicates used for the page,
// so TotalPages always agrees with what filtering actually returns. Store
// failures come back wrapped in *StoreError; retrying is the caller's
// policy, never this function's.
func Execute[T any](ctx context.Context, plan *Plan, store Store[T]) (*Page[T], error) {
	predicates := plan.Predicates()
	page := plan.Pageable()

	items, err := store.FindPage(ctx, predicates, page)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	total, err := store.Count(ctx, predicates)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	return &Page[T]{
		Items:      items,
		TotalCount: total,
		TotalPages: int(math.Ceil(float64(total) / float64(page.Size))),
		Page:       page.Page,
		Size:       page.Size,
	}, nil
}
