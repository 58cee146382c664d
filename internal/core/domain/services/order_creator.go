package services

import (
	"context"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/outbox"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// orderNumberAttempts bounds the retries on an order number collision.
const orderNumberAttempts = 3

// OrderCreator persists a new order and its creation event atomically.
//
// The whole flow runs in one unit of work: generate a unique order number,
// store the draft (the repository assigns the identity and the aggregate
// raises its creation event), append every pending event to the outbox, then
// commit. Any failure rolls the transaction back, leaving no partial state.
type OrderCreator struct {
	uowFactory ports.UnitOfWorkFactory
	generator  OrderNumberGenerator
}

// NewOrderCreator creates an OrderCreator.
func NewOrderCreator(uowFactory ports.UnitOfWorkFactory, generator OrderNumberGenerator) *OrderCreator {
	return &OrderCreator{
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Create builds, validates and persists a new order. The returned aggregate
// carries the assigned identity and an empty pending-events buffer.
func (c *OrderCreator) Create(
	ctx context.Context,
	items []order.OrderItem,
	origin order.Location,
	destination order.Location,
	policy order.DeliveryPolicy,
) (*order.Order, error) {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	number, err := c.uniqueOrderNumber(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	draft, err := order.NewDraft(number, items, origin, destination, policy, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	created, err := orderRepo.Store(ctx, draft)
	if err != nil {
		return nil, err
	}

	if err = appendToOutbox(ctx, uow.OutboxRepository(), created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// uniqueOrderNumber generates order numbers until one is free, giving up
// after a few attempts.
func (c *OrderCreator) uniqueOrderNumber(
	ctx context.Context,
	repo ports.OrderRepository,
) (order.OrderNumber, error) {
	var number order.OrderNumber
	for range orderNumberAttempts {
		candidate, err := c.generator.Generate(time.Now())
		if err != nil {
			return order.OrderNumber{}, err
		}

		exists, err := repo.ExistsByOrderNumber(ctx, candidate)
		if err != nil {
			return order.OrderNumber{}, err
		}
		if !exists {
			return candidate, nil
		}
		number = candidate
	}

	return order.OrderNumber{}, errs.NewValueIsInvalidError(
		"order number collision: " + number.Value())
}

// appendToOutbox serializes the aggregate's pending events into outbox
// records, keyed by the order number, and clears the buffer.
func appendToOutbox(ctx context.Context, repo ports.OutboxRepository, aggregate *order.Order) error {
	for _, event := range aggregate.PendingEvents() {
		record, err := outbox.FromDomainEvent(event, aggregate.OrderNumber().Value())
		if err != nil {
			return err
		}
		if err = repo.Save(ctx, record); err != nil {
			return err
		}
	}

	aggregate.ClearPendingEvents()
	return nil
}
