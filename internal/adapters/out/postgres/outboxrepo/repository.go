package outboxrepo

import (
	"context"

	"orders/internal/core/domain/model/outbox"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Save inserts a new outbox record.
func (r *GormOutboxRepository) Save(ctx context.Context, record *outbox.Record) error {
	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPendingBatch claims up to limit unpublished records, oldest first.
// FOR UPDATE SKIP LOCKED lets concurrent relay transactions claim disjoint
// batches instead of blocking on each other's rows.
func (r *GormOutboxRepository) GetPendingBatch(ctx context.Context, limit int) ([]*outbox.Record, error) {
	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published = ?", false).
		Order("created_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*outbox.Record, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, toDomain(dto))
	}
	return records, nil
}

// MarkPublished flags a record as relayed to the broker.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, record *outbox.Record) error {
	result := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"published":    true,
			"published_at": record.PublishedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox record", record.ID)
	}

	return nil
}
