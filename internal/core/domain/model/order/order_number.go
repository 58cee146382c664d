package order

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// OrderNumberPrefix is the fixed marker every order number starts with.
const OrderNumberPrefix = "ORD-"

// ErrOrderNumberIsNotConstructed is returned when an OrderNumber was not
// created via NewOrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber constructor")

// OrderNumber is the system-generated external identifier of an order. It is
// never user-supplied and doubles as the outbox partition/dedupe key.
type OrderNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewOrderNumber creates an OrderNumber from its string form. The value must
// be non-blank and carry the ORD- prefix.
func NewOrderNumber(value string) (OrderNumber, error) {
	if strings.TrimSpace(value) == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("order number")
	}
	if !strings.HasPrefix(value, OrderNumberPrefix) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%q does not start with %q", value, OrderNumberPrefix))
	}

	return OrderNumber{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the OrderNumber was created through its constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// Value returns the string form of the order number.
func (n OrderNumber) Value() string {
	return n.value
}

// String implements fmt.Stringer.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}
