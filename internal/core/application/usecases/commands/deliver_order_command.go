package commands

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a request to mark an order as delivered.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver an order.
func NewDeliverOrderCommand(orderID int64) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the persistent identity of the order to deliver.
func (c DeliverOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *DeliverOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	c.orderID = orderID
	return nil
}
