package order_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func validOrderNumber(t *testing.T) order.OrderNumber {
	t.Helper()
	number, err := order.NewOrderNumber("ORD-20260830120000001")
	require.NoError(t, err)
	return number
}

func validItem(t *testing.T) order.OrderItem {
	t.Helper()
	price, err := kernel.NewMoney(12500)
	require.NoError(t, err)
	item, err := order.NewOrderItem("Americano", 2, price, "beverage", nil, nil)
	require.NoError(t, err)
	return item
}

func validLocation(t *testing.T, detailAddress string) order.Location {
	t.Helper()
	contact, err := kernel.NewContact("Kim Minsoo", "010-1234-5678")
	require.NoError(t, err)
	address, err := kernel.NewAddress("", "Teheran-ro 123", detailAddress)
	require.NoError(t, err)
	latLng, err := kernel.NewLatLng(37.4979, 127.0276)
	require.NoError(t, err)
	location, err := order.NewLocation(contact, address, latLng, kernel.EmptyEntranceInfo())
	require.NoError(t, err)
	return location
}

func validPolicy(t *testing.T) order.DeliveryPolicy {
	t.Helper()
	policy, err := order.NewDeliveryPolicy(false, false, false, nil, time.Now())
	require.NoError(t, err)
	return policy
}

func validOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		1,
		validOrderNumber(t),
		[]order.OrderItem{validItem(t)},
		validLocation(t, "3F"),
		validLocation(t, "7F"),
		validPolicy(t),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}
