package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves a single order by its persistent identity.
//
// Example:
//
//	query, err := NewGetOrderByIDQuery(42)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", response.OrderNumber, response.Status)
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for a single order lookup.
func NewGetOrderByIDQuery(orderID int64) (GetOrderByIDQuery, error) {
	query := GetOrderByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identity to look up.
func (q GetOrderByIDQuery) OrderID() int64 {
	return q.orderID
}

func (q *GetOrderByIDQuery) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	q.orderID = orderID
	return nil
}
