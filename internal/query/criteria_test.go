package query

import (
	"errors"
	"reflect"
	"testing"

	"github.com/motorlane/carstock/internal/model"
)

func defaultPage() Pageable {
	return Pageable{Page: 0, Size: 10, Sort: Sort{Field: "id"}}
}

func TestCompile_NoCriteria(t *testing.T) {
	plan, err := Compile(RawCriteria{}, defaultPage())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := len(plan.Predicates()); got != 0 {
		t.Errorf("Expected zero predicates, got %d", got)
	}
}

func TestCompile_AllCriteria(t *testing.T) {
	raw := RawCriteria{
		Sales:        "1200",
		MinPrice:     "10000",
		MaxPrice:     "20000",
		Model:        "Corolla",
		Segment:      "SUV",
		Manufacturer: "Toyoda",
	}

	plan, err := Compile(raw, defaultPage())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []Predicate{
		SalesEquals{Count: 1200},
		PriceAtLeast{Amount: 10000},
		PriceAtMost{Amount: 20000},
		ModelContains{Term: "Corolla"},
		SegmentIs{Segment: model.SegmentSUV},
		ManufacturerIs{Name: "Toyoda"},
	}
	if got := plan.Predicates(); !reflect.DeepEqual(got, want) {
		t.Errorf("Predicates mismatch:\n got  %#v\n want %#v", got, want)
	}
}

func TestCompile_InvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		raw       RawCriteria
		wantField string
		wantEnum  bool
	}{
		{
			name:      "Non-numeric sales",
			raw:       RawCriteria{Sales: "notanumber"},
			wantField: "sales",
		},
		{
			name:      "Non-numeric min price",
			raw:       RawCriteria{MinPrice: "cheap"},
			wantField: "minPrice",
		},
		{
			name:      "Non-numeric max price",
			raw:       RawCriteria{MaxPrice: "12k"},
			wantField: "maxPrice",
		},
		{
			name:      "Unknown segment",
			raw:       RawCriteria{Segment: "HOVERCRAFT"},
			wantField: "segment",
			wantEnum:  true,
		},
		{
			name:      "Lowercase segment is rejected",
			raw:       RawCriteria{Segment: "suv"},
			wantField: "segment",
			wantEnum:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Compile(tt.raw, defaultPage())
			if err == nil {
				t.Fatalf("Expected error, got plan with %d predicates", len(plan.Predicates()))
			}

			if tt.wantEnum {
				var enumErr *InvalidEnumError
				if !errors.As(err, &enumErr) {
					t.Fatalf("Expected InvalidEnumError, got %T", err)
				}
				if enumErr.Field != tt.wantField {
					t.Errorf("Expected field %q, got %q", tt.wantField, enumErr.Field)
				}
				return
			}

			var numErr *InvalidNumberError
			if !errors.As(err, &numErr) {
				t.Fatalf("Expected InvalidNumberError, got %T", err)
			}
			if numErr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, numErr.Field)
			}
		})
	}
}

func TestCompile_FirstErrorWins(t *testing.T) {
	// Multiple bad criteria: only the first in processing order is
	// reported.
	raw := RawCriteria{
		Sales:    "bad",
		MinPrice: "alsobad",
		Segment:  "NOPE",
	}

	_, err := Compile(raw, defaultPage())

	var numErr *InvalidNumberError
	if !errors.As(err, &numErr) {
		t.Fatalf("Expected InvalidNumberError, got %v", err)
	}
	if numErr.Field != "sales" {
		t.Errorf("Expected first error on sales, got %q", numErr.Field)
	}
}

func TestCompile_InvertedPriceRange(t *testing.T) {
	raw := RawCriteria{MinPrice: "50000", MaxPrice: "10000"}

	plan, err := Compile(raw, defaultPage())
	if err != nil {
		t.Fatalf("Inverted range must compile, got %v", err)
	}
	if got := len(plan.Predicates()); got != 2 {
		t.Errorf("Expected 2 predicates, got %d", got)
	}
}

func TestCompile_UnknownManufacturerAccepted(t *testing.T) {
	plan, err := Compile(RawCriteria{Manufacturer: "NoSuchMaker"}, defaultPage())
	if err != nil {
		t.Fatalf("Manufacturer existence must not be checked at compile time, got %v", err)
	}

	preds := plan.Predicates()
	if len(preds) != 1 {
		t.Fatalf("Expected 1 predicate, got %d", len(preds))
	}
	if _, ok := preds[0].(ManufacturerIs); !ok {
		t.Errorf("Expected ManufacturerIs, got %T", preds[0])
	}
}

func TestCompile_Idempotent(t *testing.T) {
	raw := RawCriteria{Sales: "7", Model: "GT", Segment: "SPORT"}

	first, err := Compile(raw, defaultPage())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := Compile(raw, defaultPage())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !reflect.DeepEqual(first.Predicates(), second.Predicates()) {
		t.Error("Compiling the same criteria twice produced different predicate sets")
	}
	if first.Pageable() != second.Pageable() {
		t.Error("Compiling the same criteria twice produced different pagination")
	}
}

func TestCompile_NormalizesPagination(t *testing.T) {
	plan, err := Compile(RawCriteria{}, Pageable{Page: -3, Size: 0})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	page := plan.Pageable()
	if page.Page != 0 {
		t.Errorf("Expected page 0, got %d", page.Page)
	}
	if page.Size != DefaultPageSize {
		t.Errorf("Expected size %d, got %d", DefaultPageSize, page.Size)
	}
	if page.Sort.Field != DefaultSortField {
		t.Errorf("Expected sort field %q, got %q", DefaultSortField, page.Sort.Field)
	}
}

func TestPlan_PredicatesIsACopy(t *testing.T) {
	plan, err := Compile(RawCriteria{Model: "GT"}, defaultPage())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	preds := plan.Predicates()
	preds[0] = SalesEquals{Count: 99}

	if _, ok := plan.Predicates()[0].(ModelContains); !ok {
		t.Error("Mutating the returned slice changed the plan")
	}
}
