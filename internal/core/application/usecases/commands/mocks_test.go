package commands_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAddressRefiner struct{ mock.Mock }

func (m *MockAddressRefiner) RefineLocation(ctx context.Context, location order.Location) (order.Location, error) {
	args := m.Called(ctx, location)
	return args.Get(0).(order.Location), args.Error(1)
}

func (m *MockAddressRefiner) RefineAddress(
	ctx context.Context,
	coords kernel.LatLng,
	detailAddress string,
) (kernel.Address, error) {
	args := m.Called(ctx, coords, detailAddress)
	return args.Get(0).(kernel.Address), args.Error(1)
}

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Create(
	ctx context.Context,
	items []order.OrderItem,
	origin order.Location,
	destination order.Location,
	policy order.DeliveryPolicy,
) (*order.Order, error) {
	args := m.Called(ctx, items, origin, destination, policy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockLocationChanger struct{ mock.Mock }

func (m *MockLocationChanger) ChangeDestination(
	ctx context.Context,
	orderID int64,
	address kernel.Address,
	latLng kernel.LatLng,
	entranceInfo kernel.EntranceInfo,
) (*order.Order, error) {
	args := m.Called(ctx, orderID, address, latLng, entranceInfo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockTransitioner struct{ mock.Mock }

func (m *MockTransitioner) Deliver(ctx context.Context, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockTransitioner) Cancel(ctx context.Context, orderID int64) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func validItems(t *testing.T) []order.OrderItem {
	t.Helper()
	price, err := kernel.NewMoney(4500)
	require.NoError(t, err)
	item, err := order.NewOrderItem("Americano", 2, price, "beverage", nil, nil)
	require.NoError(t, err)
	return []order.OrderItem{item}
}

func validLocation(t *testing.T, road string) order.Location {
	t.Helper()
	contact, err := kernel.NewContact("Kim Minsoo", "010-1234-5678")
	require.NoError(t, err)
	address, err := kernel.NewAddress("", road, "3F")
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

func persistedOrder(t *testing.T) *order.Order {
	t.Helper()
	number, err := order.NewOrderNumber("ORD-20260830120000001")
	require.NoError(t, err)
	aggregate, err := order.RestoreOrder(42, number, order.Created, validItems(t),
		validLocation(t, "Teheran-ro 1"), validLocation(t, "Teheran-ro 123"),
		validPolicy(t), time.Now(), nil, nil, 0)
	require.NoError(t, err)
	return aggregate
}
