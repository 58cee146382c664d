package queries

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves a single order by its business identifier.
// Unlike the database identity, the order number is the value shared with
// customers and external systems.
type GetOrderByNumberQuery struct { //nolint:recvcheck //using for validation
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for an order number lookup.
func NewGetOrderByNumberQuery(orderNumber string) (GetOrderByNumberQuery, error) {
	query := GetOrderByNumberQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderNumber(orderNumber); err != nil {
		return GetOrderByNumberQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// OrderNumber returns the business identifier to look up.
func (q GetOrderByNumberQuery) OrderNumber() string {
	return q.orderNumber
}

func (q *GetOrderByNumberQuery) setOrderNumber(orderNumber string) error {
	if strings.TrimSpace(orderNumber) == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	q.orderNumber = orderNumber
	return nil
}
