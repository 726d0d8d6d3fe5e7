package staff_test

import (
	"strings"
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWaiter(t *testing.T) {
	id, _ := kernel.NewWaiterID(7)

	t.Run("should create waiter with trimmed name", func(t *testing.T) {
		w, err := staff.NewWaiter(id, "  Pablo ")

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, id, w.ID())
		assert.Equal(t, "Pablo", w.Name())
	})

	t.Run("should fail with blank name and unset id", func(t *testing.T) {
		w, err := staff.NewWaiter(kernel.WaiterID{}, "   ")

		require.Error(t, err)
		assert.Nil(t, w)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, kernel.ErrWaiterIDIsNotConstructed)
	})

	t.Run("should fail with a name longer than 120 characters", func(t *testing.T) {
		w, err := staff.NewWaiter(id, strings.Repeat("ñ", 121))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, w)
	})

	t.Run("should accept a name of exactly 120 characters", func(t *testing.T) {
		w, err := staff.NewWaiter(id, strings.Repeat("ñ", 120))

		require.NoError(t, err)
		assert.Len(t, []rune(w.Name()), 120)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var w staff.Waiter
		assert.Equal(t, staff.ErrWaiterIsNotConstructed, w.Validate())
	})
}

func TestNewEstablishment(t *testing.T) {
	code, _ := kernel.NewEstablishmentCode(3)

	t.Run("should create establishment", func(t *testing.T) {
		e, err := staff.NewEstablishment(code, "Pollos Felices Centro")

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, code, e.Code())
		assert.Equal(t, "Pollos Felices Centro", e.Name())
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := staff.NewEstablishment(code, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with a name longer than 120 characters", func(t *testing.T) {
		_, err := staff.NewEstablishment(code, strings.Repeat("a", 121))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail validation for nil", func(t *testing.T) {
		var e *staff.Establishment
		assert.Equal(t, staff.ErrEstablishmentIsNotConstructed, e.Validate())
	})
}
