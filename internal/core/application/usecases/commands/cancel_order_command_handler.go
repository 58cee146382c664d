package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels orders that have not been delivered yet.
type CancelOrderCommandHandler struct {
	transitioner Transitioner
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(transitioner Transitioner) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{transitioner: transitioner}
}

// Handle processes the cancellation command and returns the updated order.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.transitioner.Cancel(ctx, cmd.OrderID())
}
