package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrAddressRefineFailed is the sentinel for AddressRefineFailedError.
	// Errors carrying it are transient by nature: the expected cause is
	// upstream geocoding unavailability, so callers may retry the whole
	// operation later.
	ErrAddressRefineFailed = errors.New("address refinement failed")

	// ErrStateConflict is the sentinel for StateConflictError.
	ErrStateConflict = errors.New("order state conflict")

	// ErrLocationChangeNotAllowed is the sentinel for
	// LocationChangeNotAllowedError.
	ErrLocationChangeNotAllowed = errors.New("location change not allowed")

	// ErrConcurrentModification is the sentinel for
	// ConcurrentModificationError.
	ErrConcurrentModification = errors.New("concurrent modification detected")
)

// AddressRefineFailedError indicates that reverse geocoding failed. With a
// Provider set it describes a single provider failure; without one it is the
// aggregated error raised after every provider in the fallback chain failed,
// whose cause chain references the last provider attempted.
type AddressRefineFailedError struct {
	Provider string
	Coords   string
	Cause    error
}

// NewAddressRefineFailedError creates an error for a single provider failure.
func NewAddressRefineFailedError(provider, coords string, cause error) *AddressRefineFailedError {
	return &AddressRefineFailedError{Provider: provider, Coords: coords, Cause: cause}
}

// NewAddressRefinementExhaustedError creates the aggregated error raised when
// the whole fallback chain is exhausted. The cause is the last provider's
// failure.
func NewAddressRefinementExhaustedError(coords string, cause error) *AddressRefineFailedError {
	return &AddressRefineFailedError{Coords: coords, Cause: cause}
}

func (e *AddressRefineFailedError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s: provider %s, coords %s (cause: %s)",
			ErrAddressRefineFailed, e.Provider, e.Coords, e.Cause)
	}
	return fmt.Sprintf("%s: all providers exhausted, coords %s (cause: %s)",
		ErrAddressRefineFailed, e.Coords, e.Cause)
}

func (e *AddressRefineFailedError) Unwrap() []error {
	return []error{ErrAddressRefineFailed, e.Cause}
}

// IsRetryable reports whether the error is transient and the failed operation
// may be retried shortly. Validation, state-conflict and not-found errors are
// never retryable.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrAddressRefineFailed)
}

// StateConflictError indicates an illegal order status transition. It is a
// business error, not a transient fault, and must not be retried.
type StateConflictError struct {
	Transition    string
	CurrentStatus string
}

// NewStateConflictError creates a StateConflictError naming the attempted
// transition and the status that forbids it.
func NewStateConflictError(transition, currentStatus string) *StateConflictError {
	return &StateConflictError{Transition: transition, CurrentStatus: currentStatus}
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s: cannot %s from status %s", ErrStateConflict, e.Transition, e.CurrentStatus)
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// LocationChangeNotAllowedError indicates an attempt to change the destination
// of an order that is no longer in Created status.
type LocationChangeNotAllowedError struct {
	CurrentStatus string
}

// NewLocationChangeNotAllowedError creates a LocationChangeNotAllowedError for
// the given current status.
func NewLocationChangeNotAllowedError(currentStatus string) *LocationChangeNotAllowedError {
	return &LocationChangeNotAllowedError{CurrentStatus: currentStatus}
}

func (e *LocationChangeNotAllowedError) Error() string {
	return fmt.Sprintf("%s: destination can be changed only in Created status, current status is %s",
		ErrLocationChangeNotAllowed, e.CurrentStatus)
}

func (e *LocationChangeNotAllowedError) Unwrap() error {
	return ErrLocationChangeNotAllowed
}

// ConcurrentModificationError indicates that an optimistic-concurrency update
// lost the race: the aggregate's version changed between read and write.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
}

// NewConcurrentModificationError creates a ConcurrentModificationError for the
// given aggregate identifier.
func NewConcurrentModificationError(paramName string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %v was modified by another transaction",
		ErrConcurrentModification, e.ParamName, e.ID)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
