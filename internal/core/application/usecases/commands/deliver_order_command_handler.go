package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler marks orders as delivered.
type DeliverOrderCommandHandler struct {
	transitioner Transitioner
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(transitioner Transitioner) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{transitioner: transitioner}
}

// Handle processes the delivery command and returns the updated order.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.transitioner.Deliver(ctx, cmd.OrderID())
}
