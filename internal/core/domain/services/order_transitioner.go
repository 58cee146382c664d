package services

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// OrderTransitioner moves stored orders through their terminal transitions.
// Like the other write flows, each transition runs in one unit of work with
// an optimistic-concurrency update and an outbox append.
type OrderTransitioner struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewOrderTransitioner creates an OrderTransitioner.
func NewOrderTransitioner(uowFactory ports.UnitOfWorkFactory) *OrderTransitioner {
	return &OrderTransitioner{uowFactory: uowFactory}
}

// Deliver marks the order as delivered.
func (t *OrderTransitioner) Deliver(ctx context.Context, orderID int64) (*order.Order, error) {
	return t.transition(ctx, orderID, func(aggregate *order.Order) error {
		return aggregate.Deliver(time.Now().UTC())
	})
}

// Cancel marks the order as cancelled.
func (t *OrderTransitioner) Cancel(ctx context.Context, orderID int64) (*order.Order, error) {
	return t.transition(ctx, orderID, func(aggregate *order.Order) error {
		return aggregate.Cancel(time.Now().UTC())
	})
}

func (t *OrderTransitioner) transition(
	ctx context.Context,
	orderID int64,
	apply func(*order.Order) error,
) (*order.Order, error) {
	uow := t.uowFactory.Create()
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

	if err = apply(aggregate); err != nil {
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
