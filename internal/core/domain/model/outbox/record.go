// Package outbox holds the transactional outbox record model.
//
// Domain events are written to the outbox in the same transaction as the
// aggregate change that raised them, then relayed to the message broker by a
// background job. Delivery is at-least-once: consumers must deduplicate by
// record ID.
package outbox

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// Record is one stored domain event awaiting publication.
type Record struct {
	ID           uuid.UUID
	EventType    string
	PartitionKey string
	Payload      []byte
	Published    bool
	CreatedAt    time.Time
	PublishedAt  *time.Time
}

// FromDomainEvent serializes a domain event into an outbox record. The
// partition key keeps all events of one order on one broker partition so
// consumers observe them in order.
func FromDomainEvent(event kernel.DomainEvent, partitionKey string) (*Record, error) {
	if event == nil {
		return nil, errs.NewValueIsRequiredError("event")
	}
	if strings.TrimSpace(partitionKey) == "" {
		return nil, errs.NewValueIsRequiredError("partition key")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("event payload", err)
	}

	return &Record{
		ID:           uuid.New(),
		EventType:    event.EventType(),
		PartitionKey: partitionKey,
		Payload:      payload,
		Published:    false,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// MarkPublished flags the record as relayed and stamps the publication time.
func (r *Record) MarkPublished(at time.Time) {
	r.Published = true
	r.PublishedAt = &at
}
