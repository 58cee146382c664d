package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler retrieves a single order from the database by
// its business identifier.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for order number lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// order with the given number exists.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	return loadOrder(ctx, h.db, "order_number = ?", query.OrderNumber())
}
