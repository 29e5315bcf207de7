package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrOrderNotFound      = errors.New("order not found")
	ErrRateTableNotFound  = errors.New("rate table not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrInvalidService     = errors.New("invalid service")

	// ErrUpstream wraps any storage, cache or broker failure so that raw
	// driver errors never reach the HTTP layer.
	ErrUpstream = errors.New("upstream unavailable")
)

// ValidationError names the request field that is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// PartialOrderError is returned when the order was written but linking its
// print jobs failed. The order is left in place for manual reconciliation.
type PartialOrderError struct {
	OrderID string
	Err     error
}

func (e *PartialOrderError) Error() string {
	return fmt.Sprintf("order %s placed but print jobs not fully linked: %v", e.OrderID, e.Err)
}

func (e *PartialOrderError) Unwrap() error {
	return e.Err
}

func upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, op, err)
}
