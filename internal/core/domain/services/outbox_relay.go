package services

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/ports"
)

// OutboxRelay moves stored outbox records to the message broker.
//
// The relay claims a batch of unpublished records inside its own transaction;
// the row locks taken by the claim keep concurrent relay runs from picking
// the same records. Each record is published and marked individually, so a
// broker failure on one record leaves it unpublished for the next run while
// the rest of the batch still goes out. Delivery is therefore at-least-once.
type OutboxRelay struct {
	uowFactory ports.UnitOfWorkFactory
	broker     ports.MessageBroker
	logger     *slog.Logger
}

// NewOutboxRelay creates an OutboxRelay.
func NewOutboxRelay(uowFactory ports.UnitOfWorkFactory, broker ports.MessageBroker, logger *slog.Logger) *OutboxRelay {
	return &OutboxRelay{
		uowFactory: uowFactory,
		broker:     broker,
		logger:     logger.With("component", "outbox_relay"),
	}
}

// PublishPendingEvents relays up to batchSize stored events to the broker and
// returns the number published.
func (r *OutboxRelay) PublishPendingEvents(ctx context.Context, batchSize int) (int, error) {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()

	records, err := outboxRepo.GetPendingBatch(ctx, batchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, record := range records {
		if err := r.broker.Publish(ctx, record.EventType, record.PartitionKey, record.Payload); err != nil {
			r.logger.Error("failed to publish outbox record",
				"record_id", record.ID,
				"event_type", record.EventType,
				"error", err)
			continue
		}

		record.MarkPublished(time.Now().UTC())
		if err := outboxRepo.MarkPublished(ctx, record); err != nil {
			return published, err
		}
		published++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return published, nil
}
