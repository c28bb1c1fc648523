package repository

import (
	"reflect"
	"testing"

	"github.com/motorlane/carstock/internal/model"
	"github.com/motorlane/carstock/internal/query"
)

func TestPredicateClause(t *testing.T) {
	tests := []struct {
		name      string
		predicate query.Predicate
		wantCond  string
		wantArgs  []any
		wantJoin  bool
	}{
		{
			name:      "Sales equals",
			predicate: query.SalesEquals{Count: 1200},
			wantCond:  "cars.sales = ?",
			wantArgs:  []any{1200},
		},
		{
			name:      "Price at least",
			predicate: query.PriceAtLeast{Amount: 10000},
			wantCond:  "cars.price >= ?",
			wantArgs:  []any{10000.0},
		},
		{
			name:      "Price at most",
			predicate: query.PriceAtMost{Amount: 20000},
			wantCond:  "cars.price <= ?",
			wantArgs:  []any{20000.0},
		},
		{
			name:      "Model substring",
			predicate: query.ModelContains{Term: "Trail"},
			wantCond:  "cars.model_name ILIKE ?",
			wantArgs:  []any{"%Trail%"},
		},
		{
			name:      "Segment equals",
			predicate: query.SegmentIs{Segment: model.SegmentSUV},
			wantCond:  "cars.segment = ?",
			wantArgs:  []any{"SUV"},
		},
		{
			name:      "Manufacturer name joins",
			predicate: query.ManufacturerIs{Name: "Toyoda"},
			wantCond:  "manufacturers.name = ?",
			wantArgs:  []any{"Toyoda"},
			wantJoin:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := predicateClause(tt.predicate)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got.Cond != tt.wantCond {
				t.Errorf("Expected condition %q, got %q", tt.wantCond, got.Cond)
			}
			if !reflect.DeepEqual(got.Args, tt.wantArgs) {
				t.Errorf("Expected args %v, got %v", tt.wantArgs, got.Args)
			}
			if got.Join != tt.wantJoin {
				t.Errorf("Expected join=%v, got %v", tt.wantJoin, got.Join)
			}
		})
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name string
		sort query.Sort
		want string
	}{
		{
			name: "Ascending by default",
			sort: query.Sort{Field: "id"},
			want: "cars.id ASC",
		},
		{
			name: "Descending",
			sort: query.Sort{Field: "price", Desc: true},
			want: "cars.price DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderClause(tt.sort); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
