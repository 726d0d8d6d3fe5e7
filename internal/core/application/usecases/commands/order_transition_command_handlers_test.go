package commands_test

import (
	"context"
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOrderNumber int64 = 1718000000000

type transitionCase struct {
	name   string
	from   order.Status
	to     order.Status
	handle func(ctx context.Context, f commands.OrderUoWFactory, number int64) error
}

func transitionCases() []transitionCase {
	return []transitionCase{
		{
			name: "process",
			from: order.New,
			to:   order.InProgress,
			handle: func(ctx context.Context, f commands.OrderUoWFactory, number int64) error {
				cmd, err := commands.NewProcessOrderCommand(number)
				if err != nil {
					return err
				}
				return commands.NewProcessOrderCommandHandler(f).Handle(ctx, cmd)
			},
		},
		{
			name: "mark ready for delivery",
			from: order.InProgress,
			to:   order.PendingDelivery,
			handle: func(ctx context.Context, f commands.OrderUoWFactory, number int64) error {
				cmd, err := commands.NewMarkOrderReadyForDeliveryCommand(number)
				if err != nil {
					return err
				}
				return commands.NewMarkOrderReadyForDeliveryCommandHandler(f).Handle(ctx, cmd)
			},
		},
		{
			name: "serve",
			from: order.PendingDelivery,
			to:   order.Delivered,
			handle: func(ctx context.Context, f commands.OrderUoWFactory, number int64) error {
				cmd, err := commands.NewServeOrderCommand(number)
				if err != nil {
					return err
				}
				return commands.NewServeOrderCommandHandler(f).Handle(ctx, cmd)
			},
		},
		{
			name: "cancel",
			from: order.InProgress,
			to:   order.Cancelled,
			handle: func(ctx context.Context, f commands.OrderUoWFactory, number int64) error {
				cmd, err := commands.NewCancelOrderCommand(number)
				if err != nil {
					return err
				}
				return commands.NewCancelOrderCommandHandler(f).Handle(ctx, cmd)
			},
		},
	}
}

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	number, _ := kernel.NewOrderNumber(testOrderNumber)
	waiter, _ := kernel.NewWaiterID(7)
	establishment, _ := kernel.NewEstablishmentCode(1)
	o, err := order.RestoreOrder(number, waiter, establishment, placedAt, "Ana", nil, status)
	require.NoError(t, err)
	return o
}

func TestOrderTransitionHandlers_Success(t *testing.T) {
	for _, tc := range transitionCases() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			number, _ := kernel.NewOrderNumber(testOrderNumber)
			current := storedOrder(t, tc.from)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("GetForUpdate", ctx, number).Return(current, nil).Once(),
				repo.On("UpdateStatus", ctx, current).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			err := tc.handle(ctx, factory, testOrderNumber)

			require.NoError(t, err)
			assert.Equal(t, tc.to, current.Status())
			require.Len(t, current.DomainEvents(), 1)
			assert.Equal(t, tc.from, current.DomainEvents()[0].From)
			assert.Equal(t, tc.to, current.DomainEvents()[0].To)
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
			factory.AssertExpectations(t)
		})
	}
}

func TestOrderTransitionHandlers_NotFound(t *testing.T) {
	for _, tc := range transitionCases() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			number, _ := kernel.NewOrderNumber(testOrderNumber)

			repo := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			repo.On("GetForUpdate", ctx, number).
				Return(nil, errs.NewObjectNotFoundError("order", testOrderNumber)).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			err := tc.handle(ctx, factory, testOrderNumber)

			require.ErrorIs(t, err, errs.ErrObjectNotFound)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestOrderTransitionHandlers_IllegalTransition(t *testing.T) {
	for _, tc := range transitionCases() {
		for _, from := range order.Statuses() {
			if from == tc.from {
				continue
			}
			if tc.to == order.Cancelled && !from.IsTerminal() {
				continue
			}

			t.Run(tc.name+" from "+from.String(), func(t *testing.T) {
				ctx := t.Context()
				number, _ := kernel.NewOrderNumber(testOrderNumber)
				current := storedOrder(t, from)

				repo := new(MockOrderRepository)
				uow := new(MockUoW)
				factory := new(MockOrderUoWFactory)
				factory.On("Create").Return(uow).Once()
				uow.On("Begin", ctx).Return(nil).Once()
				uow.On("OrderRepository").Return(repo).Once()
				repo.On("GetForUpdate", ctx, number).Return(current, nil).Once()
				uow.On("Rollback", ctx).Return(nil).Once()

				err := tc.handle(ctx, factory, testOrderNumber)

				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				var transitionErr *errs.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, tc.to.String(), transitionErr.Target)
				assert.Equal(t, from.String(), transitionErr.Current)
				assert.Equal(t, from, current.Status())
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
				uow.AssertNotCalled(t, "Commit", mock.Anything)
			})
		}
	}
}

func TestOrderTransitionHandlers_StoreErrors(t *testing.T) {
	tc := transitionCases()[0]

	t.Run("begin error", func(t *testing.T) {
		ctx := t.Context()
		beginErr := errors.New("begin error")
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(beginErr).Once()

		err := tc.handle(ctx, factory, testOrderNumber)

		require.ErrorIs(t, err, beginErr)
		uow.AssertExpectations(t)
	})

	t.Run("update error", func(t *testing.T) {
		ctx := t.Context()
		updateErr := errors.New("update error")
		current := storedOrder(t, order.New)
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, mock.Anything).Return(current, nil).Once()
		repo.On("UpdateStatus", ctx, current).Return(updateErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := tc.handle(ctx, factory, testOrderNumber)

		require.ErrorIs(t, err, updateErr)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("commit error", func(t *testing.T) {
		ctx := t.Context()
		commitErr := errors.New("commit error")
		current := storedOrder(t, order.New)
		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, mock.Anything).Return(current, nil).Once()
		repo.On("UpdateStatus", ctx, current).Return(nil).Once()
		uow.On("Commit", ctx).Return(commitErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := tc.handle(ctx, factory, testOrderNumber)

		require.ErrorIs(t, err, commitErr)
		uow.AssertExpectations(t)
	})
}

func TestOrderTransitionCommands(t *testing.T) {
	t.Run("should reject non-positive numbers", func(t *testing.T) {
		_, err := commands.NewProcessOrderCommand(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewMarkOrderReadyForDeliveryCommand(-1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewServeOrderCommand(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewCancelOrderCommand(-7)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		assert.Equal(t, commands.ErrProcessOrderCommandIsNotConstructed, commands.ProcessOrderCommand{}.Validate())
		assert.Equal(t, commands.ErrMarkOrderReadyForDeliveryCommandIsNotConstructed,
			commands.MarkOrderReadyForDeliveryCommand{}.Validate())
		assert.Equal(t, commands.ErrServeOrderCommandIsNotConstructed, commands.ServeOrderCommand{}.Validate())
		assert.Equal(t, commands.ErrCancelOrderCommandIsNotConstructed, commands.CancelOrderCommand{}.Validate())
	})

	t.Run("should reject unconstructed command without touching the store", func(t *testing.T) {
		factory := new(MockOrderUoWFactory)
		handler := commands.NewServeOrderCommandHandler(factory)

		err := handler.Handle(t.Context(), commands.ServeOrderCommand{})

		require.ErrorIs(t, err, commands.ErrServeOrderCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})
}
