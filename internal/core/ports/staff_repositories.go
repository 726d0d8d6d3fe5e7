package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/staff"
)

// WaiterRepository stores the waiters orders can reference.
type WaiterRepository interface {
	Add(ctx context.Context, waiter *staff.Waiter) error
	Exists(ctx context.Context, id kernel.WaiterID) (bool, error)
}

// EstablishmentRepository stores the establishments orders can reference.
type EstablishmentRepository interface {
	Add(ctx context.Context, establishment *staff.Establishment) error
	Exists(ctx context.Context, code kernel.EstablishmentCode) (bool, error)
}
