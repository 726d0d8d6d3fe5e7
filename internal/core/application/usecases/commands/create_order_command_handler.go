package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// CreateOrderCommandHandler creates orders. It rejects candidates that are
// already numbered or that reference a waiter or establishment which does
// not exist, then numbers the order, sets it to NEW and stores it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock.NewMillisNumberSource())
//	number, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidState):
//	    // candidate already had a number
//	case errors.Is(err, errs.ErrInvalidReference):
//	    // unknown waiter or establishment
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	numbers    ports.NumberSource
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Numbers for new orders are drawn from numbers.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, numbers ports.NumberSource) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		numbers:    numbers,
	}
}

// Handle runs the creation checks in order and returns the new order number.
//
// Checks, each failing on its own:
//  1. the candidate already carries a number: errs.InvalidStateError
//  2. the waiter does not exist: errs.InvalidReferenceError
//  3. the establishment does not exist: errs.InvalidReferenceError
//
// The existence checks are read-only and run before the write transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderNumber{}, err
	}

	if cmd.HasNumber() {
		return kernel.OrderNumber{}, errs.NewInvalidStateError("an order that already has a number cannot be created")
	}

	uow := h.uowFactory.Create()

	waiterID, err := h.existingWaiter(ctx, uow, cmd.WaiterID())
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	establishmentCode, err := h.existingEstablishment(ctx, uow, cmd.EstablishmentCode())
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	lines, err := toOrderLines(cmd.Lines())
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	aggregate, err := order.NewOrder(waiterID, establishmentCode, cmd.PlacedAt(), cmd.CustomerName(), lines)
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	number, err := h.numbers.Next(ctx)
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = aggregate.AssignNumber(number); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	return number, nil
}

func (h *CreateOrderCommandHandler) existingWaiter(ctx context.Context, uow UoW, raw int64) (kernel.WaiterID, error) {
	id, err := kernel.NewWaiterID(raw)
	if err != nil {
		return kernel.WaiterID{}, errs.NewInvalidReferenceErrorWithCause("waiter", raw, err)
	}

	exists, err := uow.WaiterRepository().Exists(ctx, id)
	if err != nil {
		return kernel.WaiterID{}, err
	}
	if !exists {
		return kernel.WaiterID{}, errs.NewInvalidReferenceError("waiter", raw)
	}

	return id, nil
}

func (h *CreateOrderCommandHandler) existingEstablishment(
	ctx context.Context,
	uow UoW,
	raw int64,
) (kernel.EstablishmentCode, error) {
	code, err := kernel.NewEstablishmentCode(raw)
	if err != nil {
		return kernel.EstablishmentCode{}, errs.NewInvalidReferenceErrorWithCause("establishment", raw, err)
	}

	exists, err := uow.EstablishmentRepository().Exists(ctx, code)
	if err != nil {
		return kernel.EstablishmentCode{}, err
	}
	if !exists {
		return kernel.EstablishmentCode{}, errs.NewInvalidReferenceError("establishment", raw)
	}

	return code, nil
}

func toOrderLines(in []CreateOrderLine) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(in))
	var errList []error
	for _, l := range in {
		line, err := order.NewLine(l.ProductCode, l.Quantity)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return lines, nil
}
