package query

import "fmt"

// InvalidNumberError reports a criterion that was expected to be numeric
// but did not parse. Field names the offending criterion.
type InvalidNumberError struct {
	Field string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("criterion %q must be numeric", e.Field)
}

// InvalidEnumError reports a criterion whose value falls outside a closed
// enumerated set.
type InvalidEnumError struct {
	Field string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("criterion %q is not an allowed value", e.Field)
}

// StoreError wraps a failure from the underlying record store. It is a
// distinct kind from validation errors: the caller may retry, this package
// never does.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("record store query failed: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
