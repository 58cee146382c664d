package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──┬──> Delivered
//	          │
//	          └──> Cancelled
//
// Delivered and Cancelled are both terminal: no further transitions
// are allowed from either of them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// Only orders in this status may still be mutated.
	Created

	// Delivered indicates the order reached its destination.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Created -> Delivered
//
// Returns (0, error) with a StateConflictError when the order is not
// in Created status.
func (s Status) Deliver() (Status, error) {
	if s != Created {
		return 0, errs.NewStateConflictError("deliver", s.String())
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//
// Returns (0, error) with a StateConflictError when the order is not
// in Created status.
func (s Status) Cancel() (Status, error) {
	if s != Created {
		return 0, errs.NewStateConflictError("cancel", s.String())
	}

	return Cancelled, nil
}

// ValidateLocationChange checks whether a destination change is allowed
// from the current status without performing any transition. Destination
// changes are only allowed while the order is still Created.
func (s Status) ValidateLocationChange() error {
	if s != Created {
		return errs.NewLocationChangeNotAllowedError(s.String())
	}
	return nil
}
