package kernel

import (
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a Weight was not created via
// NewWeight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight represents a non-negative item weight in grams.
type Weight struct {
	grams int64
	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from grams. Negative weights are rejected.
func NewWeight(grams int64) (Weight, error) {
	if grams < 0 {
		return Weight{}, errs.NewValueIsInvalidError("weight must not be negative")
	}

	return Weight{grams: grams, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the Weight was created through its constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Grams returns the weight in grams.
func (w Weight) Grams() int64 {
	return w.grams
}
