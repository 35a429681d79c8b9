package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidOrder  = errors.New("invalid order")
)

// ValidationError is a client-correctable violation of the request shape or
// a business rule. Only the first violation found is reported.
type ValidationError struct {
	Reason string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// BusinessLogicError is a domain or server-side failure: an unavailable item,
// a stock commit failure after compensation, a persistence failure, or any
// unclassified error wrapped with its original message preserved.
type BusinessLogicError struct {
	Reason string
	Err    error
}

func NewBusinessError(err error, format string, args ...any) *BusinessLogicError {
	return &BusinessLogicError{Reason: fmt.Sprintf(format, args...), Err: err}
}

func (e *BusinessLogicError) Error() string {
	return e.Reason
}

func (e *BusinessLogicError) Unwrap() error {
	return e.Err
}

// AsBusinessError wraps err into a BusinessLogicError unless it already is
// one; the original error stays reachable through the chain.
func AsBusinessError(err error) *BusinessLogicError {
	var ble *BusinessLogicError
	if errors.As(err, &ble) {
		return ble
	}
	return &BusinessLogicError{Reason: err.Error(), Err: err}
}
