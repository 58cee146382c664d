package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new order. It carries
// fully constructed domain value objects; the edge layer is responsible for
// building them from raw request data.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	items       []order.OrderItem
	origin      order.Location
	destination order.Location
	policy      order.DeliveryPolicy

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Requires at least one item and fully constructed locations and policy.
func NewCreateOrderCommand(
	items []order.OrderItem,
	origin order.Location,
	destination order.Location,
	policy order.DeliveryPolicy,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItems(items),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
		cmd.setPolicy(policy),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.OrderItem {
	return c.items
}

// Origin returns the pickup location.
func (c CreateOrderCommand) Origin() order.Location {
	return c.origin
}

// Destination returns the drop-off location.
func (c CreateOrderCommand) Destination() order.Location {
	return c.destination
}

// Policy returns the delivery policy.
func (c CreateOrderCommand) Policy() order.DeliveryPolicy {
	return c.policy
}

func (c *CreateOrderCommand) setItems(items []order.OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setOrigin(origin order.Location) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	c.origin = origin
	return nil
}

func (c *CreateOrderCommand) setDestination(destination order.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setPolicy(policy order.DeliveryPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	c.policy = policy
	return nil
}
