// Package outboxrepo provides persistence for transactional outbox records.
// Records are written in the same transaction as the aggregate change that
// raised them and claimed in batches by the relay job.
package outboxrepo

import (
	"time"

	"orders/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// RecordDTO represents the database structure for outbox records. The
// composite index on (published, created_at) backs the relay's batch claim.
type RecordDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventType    string    `gorm:"size:64"`
	PartitionKey string    `gorm:"size:32"`
	Payload      []byte    `gorm:"type:jsonb"`
	Published    bool      `gorm:"index:idx_outbox_pending,priority:1"`
	CreatedAt    time.Time `gorm:"index:idx_outbox_pending,priority:2"`
	PublishedAt  *time.Time
}

// TableName specifies the database table name for outbox records.
func (RecordDTO) TableName() string {
	return "outbox_records"
}

func fromDomain(record *outbox.Record) RecordDTO {
	return RecordDTO{
		ID:           record.ID,
		EventType:    record.EventType,
		PartitionKey: record.PartitionKey,
		Payload:      record.Payload,
		Published:    record.Published,
		CreatedAt:    record.CreatedAt,
		PublishedAt:  record.PublishedAt,
	}
}

func toDomain(dto RecordDTO) *outbox.Record {
	return &outbox.Record{
		ID:           dto.ID,
		EventType:    dto.EventType,
		PartitionKey: dto.PartitionKey,
		Payload:      dto.Payload,
		Published:    dto.Published,
		CreatedAt:    dto.CreatedAt,
		PublishedAt:  dto.PublishedAt,
	}
}
