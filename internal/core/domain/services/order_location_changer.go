package services

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// OrderLocationChanger applies a destination change to a stored order.
//
// The flow runs in one unit of work: load the order, apply the change through
// the aggregate (which enforces the Created-only rule and raises the change
// event), update with optimistic concurrency and append the event to the
// outbox. A version race surfaces as a ConcurrentModificationError.
type OrderLocationChanger struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewOrderLocationChanger creates an OrderLocationChanger.
func NewOrderLocationChanger(uowFactory ports.UnitOfWorkFactory) *OrderLocationChanger {
	return &OrderLocationChanger{uowFactory: uowFactory}
}

// ChangeDestination replaces the destination of the order identified by
// orderID with the given refined address, coordinates and entrance info.
func (c *OrderLocationChanger) ChangeDestination(
	ctx context.Context,
	orderID int64,
	address kernel.Address,
	latLng kernel.LatLng,
	entranceInfo kernel.EntranceInfo,
) (*order.Order, error) {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeDestinationAddress(address, latLng, entranceInfo); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = appendToOutbox(ctx, uow.OutboxRepository(), aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
