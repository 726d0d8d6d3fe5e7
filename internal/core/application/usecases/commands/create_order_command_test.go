package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should keep values as given", func(t *testing.T) {
		lines := []commands.CreateOrderLine{{ProductCode: 100, Quantity: 2}}

		cmd := commands.NewCreateOrderCommand(0, 7, 1, placedAt, "Ana", lines)

		require.NoError(t, cmd.Validate())
		assert.False(t, cmd.HasNumber())
		assert.Equal(t, int64(7), cmd.WaiterID())
		assert.Equal(t, int64(1), cmd.EstablishmentCode())
		assert.Equal(t, placedAt, cmd.PlacedAt())
		assert.Equal(t, "Ana", cmd.CustomerName())
		assert.Equal(t, lines, cmd.Lines())
	})

	t.Run("should report a pre-populated number", func(t *testing.T) {
		cmd := commands.NewCreateOrderCommand(42, 7, 1, placedAt, "", nil)

		assert.True(t, cmd.HasNumber())
		assert.Equal(t, int64(42), cmd.Number())
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, cmd.Validate())
	})
}
