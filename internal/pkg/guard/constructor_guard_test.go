package guard_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("entity not constructed")

	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type reorderCommand struct {
		tableNumber int
		guard       guard.ConstructorGuard
	}

	errReorderNotConstructed := errors.New("reorderCommand must be created via newReorderCommand")

	newReorderCommand := func(table int) (reorderCommand, error) {
		if table <= 0 {
			return reorderCommand{}, errors.New("table number must be positive")
		}
		return reorderCommand{tableNumber: table, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_is_valid", func(t *testing.T) {
		cmd, err := newReorderCommand(4)

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errReorderNotConstructed))
		assert.Equal(t, 4, cmd.tableNumber)
	})

	t.Run("literal_is_rejected", func(t *testing.T) {
		cmd := reorderCommand{tableNumber: 4}

		assert.Equal(t, errReorderNotConstructed, cmd.guard.Validate(errReorderNotConstructed))
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		cmd, err := newReorderCommand(0)

		require.Error(t, err)
		require.Error(t, cmd.guard.Validate(errReorderNotConstructed))
	})
}
