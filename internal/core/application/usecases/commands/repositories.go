// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// WaiterRepoFactory provides access to waiter repository within a transaction.
	WaiterRepoFactory interface {
		WaiterRepository() ports.WaiterRepository
	}

	// EstablishmentRepoFactory provides access to establishment repository within a transaction.
	EstablishmentRepoFactory interface {
		EstablishmentRepository() ports.EstablishmentRepository
	}

	// OrderUoW manages transactions for order-only operations such as
	// status transitions.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// WaiterUoW manages transactions for waiter registration.
	WaiterUoW interface {
		TxManager
		WaiterRepoFactory
	}

	// WaiterUoWFactory creates new waiter unit of work instances.
	WaiterUoWFactory interface {
		Create() WaiterUoW
	}

	// EstablishmentUoW manages transactions for establishment registration.
	EstablishmentUoW interface {
		TxManager
		EstablishmentRepoFactory
	}

	// EstablishmentUoWFactory creates new establishment unit of work instances.
	EstablishmentUoWFactory interface {
		Create() EstablishmentUoW
	}

	// UoW covers order creation, which checks the referenced waiter and
	// establishment before storing the order.
	//
	// Example:
	//   uow := factory.Create()
	//   ok, err := uow.WaiterRepository().Exists(ctx, waiterID)
	//   // ...
	//   err = uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		WaiterRepoFactory
		EstablishmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
