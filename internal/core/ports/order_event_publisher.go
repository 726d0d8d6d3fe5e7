package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order status changes to other systems.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}
