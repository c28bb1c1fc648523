package query

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/motorlane/carstock/internal/model"
)

// memStore is an in-memory Store backed by a slice. It applies predicates
// with the same AND semantics a SQL backend would.
type memStore struct {
	cars []model.Car

	findCalls  int
	countCalls int
	failWith   error
}

func (s *memStore) matches(car model.Car, predicates []Predicate) bool {
	for _, p := range predicates {
		switch pred := p.(type) {
		case SalesEquals:
			if car.Sales != pred.Count {
				return false
			}
		case PriceAtLeast:
			if car.Price < pred.Amount {
				return false
			}
		case PriceAtMost:
			if car.Price > pred.Amount {
				return false
			}
		case ModelContains:
			if !strings.Contains(strings.ToLower(car.ModelName), strings.ToLower(pred.Term)) {
				return false
			}
		case SegmentIs:
			if car.Segment != pred.Segment {
				return false
			}
		case ManufacturerIs:
			if car.Manufacturer.Name != pred.Name {
				return false
			}
		}
	}
	return true
}

func (s *memStore) filtered(predicates []Predicate) []model.Car {
	var out []model.Car
	for _, car := range s.cars {
		if s.matches(car, predicates) {
			out = append(out, car)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) FindPage(_ context.Context, predicates []Predicate, page Pageable) ([]model.Car, error) {
	s.findCalls++
	if s.failWith != nil {
		return nil, s.failWith
	}

	all := s.filtered(predicates)
	start := page.Offset()
	if start >= len(all) {
		return []model.Car{}, nil
	}
	end := start + page.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (s *memStore) Count(_ context.Context, predicates []Predicate) (int64, error) {
	s.countCalls++
	if s.failWith != nil {
		return 0, s.failWith
	}
	return int64(len(s.filtered(predicates))), nil
}

func testFleet() []model.Car {
	cars := []model.Car{
		{ModelName: "Cityline", Price: 9500, Sales: 300, Segment: model.SegmentCompact},
		{ModelName: "Trailhead", Price: 15000, Sales: 120, Segment: model.SegmentSUV},
		{ModelName: "Trailhead XL", Price: 19500, Sales: 80, Segment: model.SegmentSUV},
		{ModelName: "Summit", Price: 27000, Sales: 45, Segment: model.SegmentSUV},
		{ModelName: "Family Seven", Price: 18000, Sales: 210, Segment: model.SegmentMinivan},
		{ModelName: "Apex GT", Price: 62000, Sales: 15, Segment: model.SegmentSport},
	}
	makers := []string{"Toyoda", "Toyoda", "Volkswerk", "Volkswerk", "Fordham", "Fordham"}
	for i := range cars {
		cars[i].ID = uint(i + 1)
		cars[i].ManufacturerID = uint(i%3 + 1)
		cars[i].Manufacturer = model.Manufacturer{Name: makers[i]}
	}
	return cars
}

func TestExecute_FilteredPage(t *testing.T) {
	store := &memStore{cars: testFleet()}

	raw := RawCriteria{
		Segment:  "SUV",
		MinPrice: "10000",
		MaxPrice: "20000",
	}
	plan, err := Compile(raw, Pageable{Page: 0, Size: 10, Sort: Sort{Field: "id"}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	page, err := Execute(context.Background(), plan, store)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(page.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(page.Items))
	}
	if page.Items[0].ModelName != "Trailhead" || page.Items[1].ModelName != "Trailhead XL" {
		t.Errorf("Unexpected items: %q, %q", page.Items[0].ModelName, page.Items[1].ModelName)
	}
	// Total must reflect the filtered set, not the whole table.
	if page.TotalCount != 2 {
		t.Errorf("Expected filtered total 2, got %d", page.TotalCount)
	}
	if page.TotalPages != 1 {
		t.Errorf("Expected 1 total page, got %d", page.TotalPages)
	}
}

func TestExecute_NoPredicatesReturnsEverything(t *testing.T) {
	store := &memStore{cars: testFleet()}

	plan, err := Compile(RawCriteria{}, Pageable{Page: 0, Size: 10, Sort: Sort{Field: "id"}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	page, err := Execute(context.Background(), plan, store)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.TotalCount != 6 {
		t.Errorf("Expected total 6, got %d", page.TotalCount)
	}
	if len(page.Items) != 6 {
		t.Errorf("Expected 6 items, got %d", len(page.Items))
	}
}

func TestExecute_Pagination(t *testing.T) {
	store := &memStore{cars: testFleet()}

	plan, err := Compile(RawCriteria{}, Pageable{Page: 1, Size: 4, Sort: Sort{Field: "id"}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	page, err := Execute(context.Background(), plan, store)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(page.Items) != 2 {
		t.Fatalf("Expected 2 items on the last page, got %d", len(page.Items))
	}
	if page.TotalCount != 6 {
		t.Errorf("Expected total 6, got %d", page.TotalCount)
	}
	if page.TotalPages != 2 {
		t.Errorf("Expected 2 total pages, got %d", page.TotalPages)
	}
	if page.Page != 1 || page.Size != 4 {
		t.Errorf("Page metadata mismatch: page=%d size=%d", page.Page, page.Size)
	}
}

func TestExecute_InvertedRangeYieldsEmptyPage(t *testing.T) {
	store := &memStore{cars: testFleet()}

	plan, err := Compile(
		RawCriteria{MinPrice: "50000", MaxPrice: "10000"},
		Pageable{Page: 0, Size: 10, Sort: Sort{Field: "id"}},
	)
	if err != nil {
		t.Fatalf("Inverted range must compile, got %v", err)
	}

	page, err := Execute(context.Background(), plan, store)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("Expected empty page, got %d items", len(page.Items))
	}
	if page.TotalCount != 0 {
		t.Errorf("Expected total 0, got %d", page.TotalCount)
	}
	if page.TotalPages != 0 {
		t.Errorf("Expected 0 total pages, got %d", page.TotalPages)
	}
}

func TestExecute_UnknownManufacturerYieldsEmptyPage(t *testing.T) {
	store := &memStore{cars: testFleet()}

	plan, err := Compile(
		RawCriteria{Manufacturer: "NoSuchMaker"},
		Pageable{Page: 0, Size: 10, Sort: Sort{Field: "id"}},
	)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	page, err := Execute(context.Background(), plan, store)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.TotalCount != 0 || len(page.Items) != 0 {
		t.Errorf("Expected empty result, got total=%d items=%d", page.TotalCount, len(page.Items))
	}
}

func TestExecute_StoreFailureIsWrapped(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	store := &memStore{cars: testFleet(), failWith: cause}

	plan, err := Compile(RawCriteria{Segment: "SUV"}, Pageable{Page: 0, Size: 10, Sort: Sort{Field: "id"}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = Execute(context.Background(), plan, store)

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Expected StoreError, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Error("Expected wrapped error to preserve the cause")
	}
}

func TestExecute_CompileFailureNeverTouchesStore(t *testing.T) {
	store := &memStore{cars: testFleet()}

	_, err := Compile(RawCriteria{Sales: "bad"}, Pageable{Page: 0, Size: 10, Sort: Sort{Field: "id"}})
	if err == nil {
		t.Fatal("Expected compile error")
	}

	if store.findCalls != 0 || store.countCalls != 0 {
		t.Errorf("Store was called %d/%d times before a valid plan existed",
			store.findCalls, store.countCalls)
	}
}
