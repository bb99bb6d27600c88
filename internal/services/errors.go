// Package services defines the business logic for document generation and
// the order lifecycle. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing error codes and HTTP statuses is performed at
// the handler layer.
package services

import (
	"errors"
	"fmt"

	"github.com/reclamo-app/go-reclamo-backend/internal/usecase"
)

var (
	// ErrFactsRequired is returned when the compiled fact sheet (or the
	// legacy free-text facts) is shorter than the minimum usable length.
	// It is raised before any call to the generation provider.
	ErrFactsRequired = errors.New("facts are required")

	// ErrInvalidOrderID is returned when an order identifier does not match
	// the canonical token format. The store is never touched in this case.
	ErrInvalidOrderID = errors.New("order id is not a valid identifier")

	// ErrOrderNotFound indicates that no order exists for the given id.
	ErrOrderNotFound = errors.New("order not found")

	// ErrMockPaymentsDisabled is returned when the mock-payment feature
	// flag is off. The store is not touched.
	ErrMockPaymentsDisabled = errors.New("mock payments are disabled")
)

// ValidationError carries the structured field-level issues produced by form
// validation. The form is never partially applied: when this error is
// returned no other processing has happened.
type ValidationError struct {
	Issues []usecase.FieldIssue
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed with %d issue(s)", len(e.Issues))
}
