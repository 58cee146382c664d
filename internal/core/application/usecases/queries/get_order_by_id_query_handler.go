package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order from the database by its
// persistent identity.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for order lookups by id.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// order with the given id exists.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	return loadOrder(ctx, h.db, "id = ?", query.OrderID())
}
