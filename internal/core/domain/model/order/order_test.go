package order_test

import (
	"strings"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2024, 6, 10, 13, 30, 0, 0, time.UTC)

func newOrder(t *testing.T) *order.Order {
	t.Helper()

	waiter, _ := kernel.NewWaiterID(7)
	establishment, _ := kernel.NewEstablishmentCode(1)
	line, err := order.NewLine(100, 2)
	require.NoError(t, err)

	o, err := order.NewOrder(waiter, establishment, placedAt, "Ana", []order.Line{line})
	require.NoError(t, err)
	return o
}

func numbered(t *testing.T, value int64) *order.Order {
	t.Helper()

	o := newOrder(t)
	number, _ := kernel.NewOrderNumber(value)
	require.NoError(t, o.AssignNumber(number))
	return o
}

func TestNewOrder(t *testing.T) {
	waiter, _ := kernel.NewWaiterID(7)
	establishment, _ := kernel.NewEstablishmentCode(1)

	t.Run("should create unnumbered order in status New", func(t *testing.T) {
		line, _ := order.NewLine(100, 2)

		o, err := order.NewOrder(waiter, establishment, placedAt, "Ana", []order.Line{line})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.False(t, o.HasNumber())
		assert.True(t, o.Number().IsZero())
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, waiter, o.WaiterID())
		assert.Equal(t, establishment, o.EstablishmentCode())
		assert.Equal(t, placedAt, o.PlacedAt())
		assert.Equal(t, "Ana", o.CustomerName())
		require.Len(t, o.Lines(), 1)
		assert.Equal(t, int64(100), o.Lines()[0].ProductCode())
		assert.Equal(t, 2, o.Lines()[0].Quantity())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should accept empty customer name and no lines", func(t *testing.T) {
		o, err := order.NewOrder(waiter, establishment, placedAt, "", nil)

		require.NoError(t, err)
		assert.Empty(t, o.Lines())
	})

	t.Run("should fail with unset references", func(t *testing.T) {
		o, err := order.NewOrder(kernel.WaiterID{}, kernel.EstablishmentCode{}, placedAt, "", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrWaiterIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrEstablishmentCodeIsNotConstructed)
	})

	t.Run("should fail without placement time", func(t *testing.T) {
		o, err := order.NewOrder(waiter, establishment, time.Time{}, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with overlong customer name", func(t *testing.T) {
		o, err := order.NewOrder(waiter, establishment, placedAt, strings.Repeat("x", 121), nil)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, o)
	})

	t.Run("should not share the lines slice with the caller", func(t *testing.T) {
		line, _ := order.NewLine(1, 1)
		lines := []order.Line{line}

		o, err := order.NewOrder(waiter, establishment, placedAt, "", lines)
		require.NoError(t, err)

		other, _ := order.NewLine(2, 2)
		lines[0] = other
		assert.Equal(t, int64(1), o.Lines()[0].ProductCode())
	})
}

func TestNewLine(t *testing.T) {
	t.Run("should reject bad product code", func(t *testing.T) {
		_, err := order.NewLine(0, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject quantity out of range", func(t *testing.T) {
		for _, q := range []int{0, -1, 1000} {
			_, err := order.NewLine(10, q)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "quantity %d", q)
		}
	})

	t.Run("should accept boundaries", func(t *testing.T) {
		for _, q := range []int{1, 999} {
			l, err := order.NewLine(10, q)
			require.NoError(t, err)
			assert.Equal(t, q, l.Quantity())
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	waiter, _ := kernel.NewWaiterID(7)
	establishment, _ := kernel.NewEstablishmentCode(1)
	number, _ := kernel.NewOrderNumber(1718000000000)

	t.Run("should restore with stored status", func(t *testing.T) {
		o, err := order.RestoreOrder(number, waiter, establishment, placedAt, "Ana", nil, order.PendingDelivery)

		require.NoError(t, err)
		assert.Equal(t, number, o.Number())
		assert.Equal(t, order.PendingDelivery, o.Status())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should fail without number", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.OrderNumber{}, waiter, establishment, placedAt, "", nil, order.New)

		require.ErrorIs(t, err, kernel.ErrOrderNumberIsNotConstructed)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(number, waiter, establishment, placedAt, "", nil, order.Unknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_AssignNumber(t *testing.T) {
	t.Run("should number a new order", func(t *testing.T) {
		o := numbered(t, 42)

		assert.True(t, o.HasNumber())
		assert.Equal(t, int64(42), o.Number().Int64())
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("should refuse to renumber", func(t *testing.T) {
		o := numbered(t, 42)
		other, _ := kernel.NewOrderNumber(43)

		err := o.AssignNumber(other)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, int64(42), o.Number().Int64())
	})

	t.Run("should reject the zero number", func(t *testing.T) {
		o := newOrder(t)

		err := o.AssignNumber(kernel.OrderNumber{})

		require.ErrorIs(t, err, kernel.ErrOrderNumberIsNotConstructed)
		assert.False(t, o.HasNumber())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by number", func(t *testing.T) {
		assert.True(t, numbered(t, 1).IsEqual(numbered(t, 1)))
		assert.False(t, numbered(t, 1).IsEqual(numbered(t, 2)))
	})

	t.Run("should not equate unnumbered orders", func(t *testing.T) {
		assert.False(t, newOrder(t).IsEqual(newOrder(t)))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		assert.False(t, numbered(t, 1).IsEqual(nil))
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the happy path and record events", func(t *testing.T) {
		o := numbered(t, 99)

		require.NoError(t, o.Process())
		require.NoError(t, o.MarkReadyForDelivery())
		require.NoError(t, o.Serve())

		assert.Equal(t, order.Delivered, o.Status())

		events := o.DomainEvents()
		require.Len(t, events, 3)
		assert.Equal(t, order.New, events[0].From)
		assert.Equal(t, order.InProgress, events[0].To)
		assert.Equal(t, order.PendingDelivery, events[2].From)
		assert.Equal(t, order.Delivered, events[2].To)
		for _, e := range events {
			assert.Equal(t, int64(99), e.Number.Int64())
			assert.NotEmpty(t, e.ID)
			assert.False(t, e.OccurredAt.IsZero())
		}

		o.ClearDomainEvents()
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should not share the events slice with the caller", func(t *testing.T) {
		o := numbered(t, 99)
		require.NoError(t, o.Process())

		events := o.DomainEvents()
		events[0].To = order.Cancelled

		stored := o.DomainEvents()
		require.Len(t, stored, 1)
		assert.Equal(t, order.InProgress, stored[0].To)
	})

	t.Run("should leave status and events untouched on illegal transition", func(t *testing.T) {
		o := numbered(t, 99)

		err := o.Serve()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.New, o.Status())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should cancel from any non-terminal status", func(t *testing.T) {
		o := numbered(t, 99)
		require.NoError(t, o.Process())

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		require.ErrorIs(t, o.Process(), errs.ErrInvalidTransition)
	})

	t.Run("should not cancel a delivered order", func(t *testing.T) {
		waiter, _ := kernel.NewWaiterID(7)
		establishment, _ := kernel.NewEstablishmentCode(1)
		number, _ := kernel.NewOrderNumber(5)
		o, err := order.RestoreOrder(number, waiter, establishment, placedAt, "", nil, order.Delivered)
		require.NoError(t, err)

		err = o.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})
}
