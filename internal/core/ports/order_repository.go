package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new, numbered order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by number.
	// Returns errs.ObjectNotFoundError when no order has that number.
	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetForUpdate retrieves an order by number and locks its row until the
	// surrounding transaction ends, so concurrent transitions on the same
	// order are applied one after another.
	GetForUpdate(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetAll returns every stored order ordered by number.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// UpdateStatus writes the aggregate's current status and nothing else.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error
}
