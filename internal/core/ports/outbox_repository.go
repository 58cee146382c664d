package ports

import (
	"context"

	"orders/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for outbox records.
type OutboxRepository interface {
	// Save persists a new outbox record. Called in the same transaction as
	// the aggregate change that raised the underlying event.
	Save(ctx context.Context, record *outbox.Record) error

	// GetPendingBatch claims up to limit unpublished records, oldest first.
	// Claimed rows are locked until the surrounding transaction ends so
	// concurrent relays never pick the same records.
	GetPendingBatch(ctx context.Context, limit int) ([]*outbox.Record, error)

	// MarkPublished flags a record as relayed to the broker.
	MarkPublished(ctx context.Context, record *outbox.Record) error
}
