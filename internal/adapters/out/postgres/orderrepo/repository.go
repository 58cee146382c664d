package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Store inserts a new order draft, lets the database assign its identity and
// returns the aggregate built from the draft. The returned aggregate carries
// the creation event in its pending-events buffer.
func (r *GormOrderRepository) Store(ctx context.Context, draft *order.Draft) (*order.Order, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	dto := fromDraft(draft)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return draft.ToOrder(dto.ID)
}

// Update saves an existing order using optimistic concurrency: the write only
// lands when the stored version still matches the aggregate's version, and it
// bumps the version by one. A version mismatch surfaces as a
// ConcurrentModificationError.
//
// Order items are immutable after creation, so only the order row is updated.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	destination := locationToDTO(aggregate.Destination())
	updates := map[string]any{
		"status":                               int(aggregate.Status()),
		"version":                              aggregate.Version() + 1,
		"delivered_at":                         aggregate.DeliveredAt(),
		"cancelled_at":                         aggregate.CancelledAt(),
		"destination_contact_name":             destination.ContactName,
		"destination_contact_phone":            destination.ContactPhone,
		"destination_jibun_address":            destination.JibunAddress,
		"destination_road_address":             destination.RoadAddress,
		"destination_detail_address":           destination.DetailAddress,
		"destination_latitude":                 destination.Latitude,
		"destination_longitude":                destination.Longitude,
		"destination_entrance_password":        destination.EntrancePassword,
		"destination_entrance_guide":           destination.EntranceGuide,
		"destination_entrance_request_message": destination.EntranceRequestMessage,
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("order", aggregate.ID())
	}

	return nil
}

// FindByID retrieves an order by its persistent identity.
func (r *GormOrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByOrderNumber retrieves an order by its business identifier.
func (r *GormOrderRepository) FindByOrderNumber(ctx context.Context, number order.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "order_number = ?", number.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByOrderNumber reports whether an order with the given business
// identifier already exists.
func (r *GormOrderRepository) ExistsByOrderNumber(ctx context.Context, number order.OrderNumber) (bool, error) {
	if err := number.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_number = ?", number.Value()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
