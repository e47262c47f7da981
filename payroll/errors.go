/*
errors.go - Centralized error types for the payroll core

PURPOSE:
  All error types in one place for consistency and discoverability.
  The registry itself never errors: absent keys are (value, ok) results.

ERROR CATEGORIES:
  1. Capability errors - salary computation on a variant without a rule
  2. Persistence errors live in store/csvfile (they are codec concerns)

USAGE:
  if errors.Is(err, payroll.ErrUnsupportedOperation) {
      // generic record, no salary rule
  }
*/
package payroll

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperation is returned when salary computation is
	// requested for a variant that has no salary rule.
	ErrUnsupportedOperation = errors.New("salary calculation not supported")
)

// UnsupportedOperationError carries the offending record's identity.
type UnsupportedOperationError struct {
	ID   string
	Role Role
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("salary calculation not supported for role %q (employee %s)", e.Role, e.ID)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

// IsUnsupported returns true if the error indicates a missing salary rule.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedOperation)
}
