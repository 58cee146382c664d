package services_test

import (
	"errors"
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.OrderItem {
	t.Helper()
	price, err := kernel.NewMoney(4500)
	require.NoError(t, err)
	item, err := order.NewOrderItem("Americano", 2, price, "beverage", nil, nil)
	require.NoError(t, err)
	return []order.OrderItem{item}
}

func testPolicy(t *testing.T) order.DeliveryPolicy {
	t.Helper()
	policy, err := order.NewDeliveryPolicy(false, false, false, nil, time.Now())
	require.NoError(t, err)
	return policy
}

func storedOrder(t *testing.T, draft *order.Draft) *order.Order {
	t.Helper()
	aggregate, err := draft.ToOrder(42)
	require.NoError(t, err)
	return aggregate
}

func TestOrderCreator_Create(t *testing.T) {
	ctx := t.Context()

	t.Run("should store order and append creation event to outbox", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		outboxRepo := new(MockOutboxRepository)
		uow := new(MockUnitOfWork)

		// Store returns the aggregate built from the draft it receives.
		storeCall := orderRepo.On("Store", ctx, mock.AnythingOfType("*order.Draft")).
			Return(nil, nil).Once()
		storeCall.Run(func(args mock.Arguments) {
			draft := args.Get(1).(*order.Draft)
			storeCall.ReturnArguments = mock.Arguments{storedOrder(t, draft), nil}
		})

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("ExistsByOrderNumber", ctx, mock.AnythingOfType("order.OrderNumber")).
				Return(false, nil).Once(),
			storeCall,
			uow.On("OutboxRepository").Return(outboxRepo).Once(),
			outboxRepo.On("Save", ctx, mock.AnythingOfType("*outbox.Record")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockUnitOfWorkFactory)
		factory.On("Create").Return(uow).Once()

		creator := services.NewOrderCreator(factory, services.NewOrderNumberGenerator())
		created, err := creator.Create(ctx, testItems(t), testLocation(t), testLocation(t), testPolicy(t))

		require.NoError(t, err)
		assert.Equal(t, int64(42), created.ID())
		assert.Empty(t, created.PendingEvents())
		orderRepo.AssertExpectations(t)
		outboxRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("should retry order number on collision", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		outboxRepo := new(MockOutboxRepository)
		uow := new(MockUnitOfWork)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("OutboxRepository").Return(outboxRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("ExistsByOrderNumber", ctx, mock.AnythingOfType("order.OrderNumber")).
			Return(true, nil).Once()
		orderRepo.On("ExistsByOrderNumber", ctx, mock.AnythingOfType("order.OrderNumber")).
			Return(false, nil).Once()
		storeCall := orderRepo.On("Store", ctx, mock.AnythingOfType("*order.Draft")).
			Return(nil, nil).Once()
		storeCall.Run(func(args mock.Arguments) {
			draft := args.Get(1).(*order.Draft)
			storeCall.ReturnArguments = mock.Arguments{storedOrder(t, draft), nil}
		})
		outboxRepo.On("Save", ctx, mock.AnythingOfType("*outbox.Record")).Return(nil).Once()

		factory := new(MockUnitOfWorkFactory)
		factory.On("Create").Return(uow).Once()

		creator := services.NewOrderCreator(factory, services.NewOrderNumberGenerator())
		_, err := creator.Create(ctx, testItems(t), testLocation(t), testLocation(t), testPolicy(t))

		require.NoError(t, err)
		orderRepo.AssertNumberOfCalls(t, "ExistsByOrderNumber", 2)
	})

	t.Run("should give up after repeated collisions", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("ExistsByOrderNumber", ctx, mock.AnythingOfType("order.OrderNumber")).
			Return(true, nil).Times(3)

		factory := new(MockUnitOfWorkFactory)
		factory.On("Create").Return(uow).Once()

		creator := services.NewOrderCreator(factory, services.NewOrderNumberGenerator())
		_, err := creator.Create(ctx, testItems(t), testLocation(t), testLocation(t), testPolicy(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "collision")
		orderRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("should roll back when store fails", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("ExistsByOrderNumber", ctx, mock.AnythingOfType("order.OrderNumber")).
				Return(false, nil).Once(),
			orderRepo.On("Store", ctx, mock.AnythingOfType("*order.Draft")).
				Return(nil, errors.New("insert failed")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockUnitOfWorkFactory)
		factory.On("Create").Return(uow).Once()

		creator := services.NewOrderCreator(factory, services.NewOrderNumberGenerator())
		_, err := creator.Create(ctx, testItems(t), testLocation(t), testLocation(t), testPolicy(t))

		require.Error(t, err)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("should roll back when outbox save fails after store", func(t *testing.T) {
		orderRepo := new(MockOrderRepository)
		outboxRepo := new(MockOutboxRepository)
		uow := new(MockUnitOfWork)

		storeCall := orderRepo.On("Store", ctx, mock.AnythingOfType("*order.Draft")).
			Return(nil, nil).Once()
		storeCall.Run(func(args mock.Arguments) {
			draft := args.Get(1).(*order.Draft)
			storeCall.ReturnArguments = mock.Arguments{storedOrder(t, draft), nil}
		})

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("ExistsByOrderNumber", ctx, mock.AnythingOfType("order.OrderNumber")).
				Return(false, nil).Once(),
			storeCall,
			uow.On("OutboxRepository").Return(outboxRepo).Once(),
			outboxRepo.On("Save", ctx, mock.AnythingOfType("*outbox.Record")).
				Return(errors.New("outbox insert failed")).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockUnitOfWorkFactory)
		factory.On("Create").Return(uow).Once()

		creator := services.NewOrderCreator(factory, services.NewOrderNumberGenerator())
		_, err := creator.Create(ctx, testItems(t), testLocation(t), testLocation(t), testPolicy(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "outbox insert failed")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
		uow.AssertExpectations(t)
		outboxRepo.AssertExpectations(t)
	})

	t.Run("should fail when begin fails", func(t *testing.T) {
		uow := new(MockUnitOfWork)
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

		factory := new(MockUnitOfWorkFactory)
		factory.On("Create").Return(uow).Once()

		creator := services.NewOrderCreator(factory, services.NewOrderNumberGenerator())
		_, err := creator.Create(ctx, testItems(t), testLocation(t), testLocation(t), testPolicy(t))

		require.Error(t, err)
	})
}
