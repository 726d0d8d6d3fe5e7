package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
)

// NumberSource hands out numbers for newly created orders.
type NumberSource interface {
	Next(ctx context.Context) (kernel.OrderNumber, error)
}
