// Package ports defines the contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Store persists a new order draft, assigns its persistent identity and
	// returns the resulting aggregate. The returned order carries the
	// creation event in its pending-events buffer.
	Store(ctx context.Context, draft *order.Draft) (*order.Order, error)

	// Update persists changes to an existing order aggregate using
	// optimistic concurrency. Returns a ConcurrentModificationError when
	// the stored version no longer matches the aggregate's version.
	Update(ctx context.Context, aggregate *order.Order) error

	// FindByID retrieves an order aggregate by its persistent identity.
	// Returns an ObjectNotFoundError when no such order exists.
	FindByID(ctx context.Context, id int64) (*order.Order, error)

	// FindByOrderNumber retrieves an order aggregate by its business identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	FindByOrderNumber(ctx context.Context, number order.OrderNumber) (*order.Order, error)

	// ExistsByOrderNumber reports whether an order with the given business
	// identifier already exists. Used to detect order number collisions.
	ExistsByOrderNumber(ctx context.Context, number order.OrderNumber) (bool, error)
}
