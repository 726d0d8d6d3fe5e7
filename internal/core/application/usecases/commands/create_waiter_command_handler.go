package commands

import (
	"context"

	"restaurant/internal/core/domain/model/staff"
)

// CreateWaiterCommandHandler stores new waiters.
type CreateWaiterCommandHandler struct {
	uowFactory WaiterUoWFactory
}

func NewCreateWaiterCommandHandler(uowFactory WaiterUoWFactory) CreateWaiterCommandHandler {
	return CreateWaiterCommandHandler{uowFactory: uowFactory}
}

// Handle creates the waiter entity and persists it within a transaction.
func (h *CreateWaiterCommandHandler) Handle(ctx context.Context, cmd CreateWaiterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	waiter, err := staff.NewWaiter(cmd.ID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WaiterRepository().Add(ctx, waiter); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
