package services

import (
	"fmt"
	"math/rand/v2"
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderNumberGenerator produces business identifiers for new orders.
//
// The format is "ORD-" + timestamp (yyyyMMddHHmmss) + a zero-padded 3-digit
// random suffix. The suffix keeps numbers generated within the same second
// distinct with high probability; collisions are caught by the uniqueness
// check during order creation.
type OrderNumberGenerator struct{}

// NewOrderNumberGenerator creates a new OrderNumberGenerator instance.
func NewOrderNumberGenerator() OrderNumberGenerator {
	return OrderNumberGenerator{}
}

// Generate produces an order number for the given creation time.
func (g OrderNumberGenerator) Generate(at time.Time) (order.OrderNumber, error) {
	value := fmt.Sprintf("%s%s%03d",
		order.OrderNumberPrefix,
		at.Format("20060102150405"),
		rand.IntN(1000),
	)
	return order.NewOrderNumber(value)
}
