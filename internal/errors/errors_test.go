package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/motorlane/carstock/internal/query"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "Nil error",
			err:  nil,
			want: http.StatusOK,
		},
		{
			name: "Invalid number criterion",
			err:  &query.InvalidNumberError{Field: "minPrice"},
			want: http.StatusBadRequest,
		},
		{
			name: "Invalid enum criterion",
			err:  &query.InvalidEnumError{Field: "segment"},
			want: http.StatusBadRequest,
		},
		{
			name: "Store failure",
			err:  &query.StoreError{Err: fmt.Errorf("connection refused")},
			want: http.StatusServiceUnavailable,
		},
		{
			name: "Car not found",
			err:  ErrCarNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "Manufacturer conflict",
			err:  ErrManufacturerExists,
			want: http.StatusConflict,
		},
		{
			name: "Id supplied on create",
			err:  ErrIDInCreateBody,
			want: http.StatusBadRequest,
		},
		{
			name: "Wrapped internal error",
			err:  WrapError(ErrInternal, fmt.Errorf("boom")),
			want: http.StatusInternalServerError,
		},
		{
			name: "Plain error",
			err:  fmt.Errorf("something unexpected"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHTTPStatus(tt.err); got != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, got)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	cause := fmt.Errorf("duplicate key value")
	wrapped := WrapError(ErrInternal, cause)

	if wrapped.Code != ErrInternal.Code {
		t.Errorf("Expected code %q, got %q", ErrInternal.Code, wrapped.Code)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("Expected wrapped error to preserve the cause")
	}
	// The sentinel itself must stay pristine for errors.Is comparisons.
	if ErrInternal.Err != nil {
		t.Error("Wrapping must not mutate the sentinel error")
	}
}

func TestGetErrorMessage(t *testing.T) {
	if got := GetErrorMessage(nil); got != "" {
		t.Errorf("Expected empty message for nil, got %q", got)
	}
	if got := GetErrorMessage(ErrCarNotFound); got != "car not found" {
		t.Errorf("Expected domain message, got %q", got)
	}
	if got := GetErrorMessage(fmt.Errorf("raw failure")); got != "raw failure" {
		t.Errorf("Expected raw message, got %q", got)
	}
}
