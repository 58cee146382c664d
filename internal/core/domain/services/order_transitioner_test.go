package services_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderTransitioner_Deliver(t *testing.T) {
	ctx := t.Context()

	t.Run("should deliver created order and append event", func(t *testing.T) {
		aggregate := restoredOrder(t, order.Created)
		orderRepo := new(MockOrderRepository)
		outboxRepo := new(MockOutboxRepository)
		uow := new(MockUnitOfWork)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("FindByID", ctx, int64(7)).Return(aggregate, nil).Once(),
			orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
			uow.On("OutboxRepository").Return(outboxRepo).Once(),
			outboxRepo.On("Save", ctx, mock.AnythingOfType("*outbox.Record")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockUnitOfWorkFactory)
		factory.On("Create").Return(uow).Once()

		transitioner := services.NewOrderTransitioner(factory)
		delivered, err := transitioner.Deliver(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, delivered.Status())
		assert.NotNil(t, delivered.DeliveredAt())
		assert.Empty(t, delivered.PendingEvents())
		uow.AssertExpectations(t)
	})

	t.Run("should reject delivery of cancelled order", func(t *testing.T) {
		aggregate := restoredOrder(t, order.Cancelled)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("FindByID", ctx, int64(7)).Return(aggregate, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockUnitOfWorkFactory)
		factory.On("Create").Return(uow).Once()

		transitioner := services.NewOrderTransitioner(factory)
		_, err := transitioner.Deliver(ctx, 7)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestOrderTransitioner_Cancel(t *testing.T) {
	ctx := t.Context()

	t.Run("should cancel created order and append event", func(t *testing.T) {
		aggregate := restoredOrder(t, order.Created)
		orderRepo := new(MockOrderRepository)
		outboxRepo := new(MockOutboxRepository)
		uow := new(MockUnitOfWork)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("FindByID", ctx, int64(7)).Return(aggregate, nil).Once(),
			orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
			uow.On("OutboxRepository").Return(outboxRepo).Once(),
			outboxRepo.On("Save", ctx, mock.AnythingOfType("*outbox.Record")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockUnitOfWorkFactory)
		factory.On("Create").Return(uow).Once()

		transitioner := services.NewOrderTransitioner(factory)
		cancelled, err := transitioner.Cancel(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, cancelled.Status())
		assert.NotNil(t, cancelled.CancelledAt())
		uow.AssertExpectations(t)
	})

	t.Run("should reject cancellation of delivered order", func(t *testing.T) {
		aggregate := restoredOrder(t, order.Delivered)
		orderRepo := new(MockOrderRepository)
		uow := new(MockUnitOfWork)

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("FindByID", ctx, int64(7)).Return(aggregate, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockUnitOfWorkFactory)
		factory.On("Create").Return(uow).Once()

		transitioner := services.NewOrderTransitioner(factory)
		_, err := transitioner.Cancel(ctx, 7)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})
}
