package commands

import (
	"context"

	"restaurant/internal/core/domain/model/staff"
)

// CreateEstablishmentCommandHandler stores new establishments.
type CreateEstablishmentCommandHandler struct {
	uowFactory EstablishmentUoWFactory
}

func NewCreateEstablishmentCommandHandler(uowFactory EstablishmentUoWFactory) CreateEstablishmentCommandHandler {
	return CreateEstablishmentCommandHandler{uowFactory: uowFactory}
}

// Handle creates the establishment entity and persists it within a transaction.
func (h *CreateEstablishmentCommandHandler) Handle(ctx context.Context, cmd CreateEstablishmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	establishment, err := staff.NewEstablishment(cmd.Code(), cmd.Name())
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

	if err = uow.EstablishmentRepository().Add(ctx, establishment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
