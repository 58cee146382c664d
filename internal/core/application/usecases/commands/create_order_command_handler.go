package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Both locations are refined through the provider chain before the order is
// stored, so persisted orders always carry provider-resolved addresses. The
// refinement happens outside the database transaction: provider calls are
// slow external I/O and must not hold locks.
type CreateOrderCommandHandler struct {
	refiner AddressRefiner
	creator OrderCreator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(refiner AddressRefiner, creator OrderCreator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		refiner: refiner,
		creator: creator,
	}
}

// Handle processes the order creation command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	origin, err := h.refiner.RefineLocation(ctx, cmd.Origin())
	if err != nil {
		return nil, err
	}

	destination, err := h.refiner.RefineLocation(ctx, cmd.Destination())
	if err != nil {
		return nil, err
	}

	return h.creator.Create(ctx, cmd.Items(), origin, destination, cmd.Policy())
}
