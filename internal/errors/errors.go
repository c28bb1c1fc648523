package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/motorlane/carstock/internal/query"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors
var (
	// Entity errors
	ErrCarNotFound          = NewDomainError("CAR_NOT_FOUND", "car not found")
	ErrManufacturerNotFound = NewDomainError("MANUFACTURER_NOT_FOUND", "manufacturer not found")
	ErrPhotoNotFound        = NewDomainError("PHOTO_NOT_FOUND", "photo not found")
	ErrLinkNotFound         = NewDomainError("LINK_NOT_FOUND", "link not found")
	ErrManufacturerExists   = NewDomainError("MANUFACTURER_EXISTS", "manufacturer name already exists")
	ErrIDInCreateBody       = NewDomainError("ID_IN_CREATE_BODY", "a new entity cannot already have an id")

	// Validation errors
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "invalid input")
	ErrInvalidFilter = NewDomainError("INVALID_FILTER", "invalid filter criterion")

	// System errors
	ErrInternal           = NewDomainError("INTERNAL_ERROR", "internal server error")
	ErrStoreUnavailable   = NewDomainError("STORE_UNAVAILABLE", "record store unavailable")
	ErrServiceUnavailable = NewDomainError("SERVICE_UNAVAILABLE", "service unavailable")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// ToHTTPStatus maps domain and filter errors to HTTP status codes.
// This should only be used in the handler/presentation layer.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	// Filter-compiler validation errors are always a bad request
	var numErr *query.InvalidNumberError
	var enumErr *query.InvalidEnumError
	if errors.As(err, &numErr) || errors.As(err, &enumErr) {
		return http.StatusBadRequest
	}

	var storeErr *query.StoreError
	if errors.As(err, &storeErr) {
		return http.StatusServiceUnavailable
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	case "INVALID_INPUT", "INVALID_FILTER", "ID_IN_CREATE_BODY":
		return http.StatusBadRequest

	case "CAR_NOT_FOUND", "MANUFACTURER_NOT_FOUND", "PHOTO_NOT_FOUND", "LINK_NOT_FOUND":
		return http.StatusNotFound

	case "MANUFACTURER_EXISTS":
		return http.StatusConflict

	case "STORE_UNAVAILABLE", "SERVICE_UNAVAILABLE":
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
