package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// ChangeDestinationCommandHandler handles destination changes.
//
// The new coordinates are refined into an address through the provider chain
// before the transactional update runs, mirroring the creation flow:
// refinement is external I/O and stays outside the transaction.
type ChangeDestinationCommandHandler struct {
	refiner AddressRefiner
	changer LocationChanger
}

// NewChangeDestinationCommandHandler creates a handler for destination changes.
func NewChangeDestinationCommandHandler(refiner AddressRefiner, changer LocationChanger) ChangeDestinationCommandHandler {
	return ChangeDestinationCommandHandler{
		refiner: refiner,
		changer: changer,
	}
}

// Handle processes the destination change and returns the updated order.
func (h *ChangeDestinationCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeDestinationCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	address, err := h.refiner.RefineAddress(ctx, cmd.LatLng(), cmd.DetailAddress())
	if err != nil {
		return nil, err
	}

	return h.changer.ChangeDestination(ctx, cmd.OrderID(), address, cmd.LatLng(), cmd.EntranceInfo())
}
