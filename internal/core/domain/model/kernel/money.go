package kernel

import (
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when a Money was not created via
// NewMoney or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents a non-negative monetary amount in minor currency units
// (e.g. won, cents). Integer minor units avoid floating-point drift in sums.
type Money struct {
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money from an amount in minor units. Negative amounts are
// rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidError("money amount must not be negative")
	}

	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// ZeroMoney returns a Money of zero amount.
func ZeroMoney() Money {
	return Money{amount: 0, guard: guard.NewConstructorGuard()}
}

// Validate checks that the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount, guard: guard.NewConstructorGuard()}
}

// Multiply returns the amount multiplied by a non-negative quantity.
func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount * int64(quantity), guard: guard.NewConstructorGuard()}
}
