package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// ProcessOrderCommandHandler moves an order from NEW to IN_PROGRESS.
//
// Example:
//
//	handler := NewProcessOrderCommandHandler(uowFactory)
//	cmd, _ := NewProcessOrderCommand(1718000000000)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order is not NEW
//	}
type ProcessOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewProcessOrderCommandHandler(uowFactory OrderUoWFactory) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{uowFactory: uowFactory}
}

func (h ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeStatus(ctx, h.uowFactory, cmd.Number(), (*order.Order).Process)
}

// MarkOrderReadyForDeliveryCommandHandler moves an order from IN_PROGRESS to PENDING_DELIVERY.
type MarkOrderReadyForDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkOrderReadyForDeliveryCommandHandler(uowFactory OrderUoWFactory) MarkOrderReadyForDeliveryCommandHandler {
	return MarkOrderReadyForDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h MarkOrderReadyForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyForDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeStatus(ctx, h.uowFactory, cmd.Number(), (*order.Order).MarkReadyForDelivery)
}

// ServeOrderCommandHandler moves an order from PENDING_DELIVERY to DELIVERED.
type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewServeOrderCommandHandler(uowFactory OrderUoWFactory) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{uowFactory: uowFactory}
}

func (h ServeOrderCommandHandler) Handle(ctx context.Context, cmd ServeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeStatus(ctx, h.uowFactory, cmd.Number(), (*order.Order).Serve)
}

// CancelOrderCommandHandler moves an order that is neither DELIVERED nor
// CANCELLED to CANCELLED.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return changeStatus(ctx, h.uowFactory, cmd.Number(), (*order.Order).Cancel)
}

// changeStatus loads the order under a row lock, applies transition and
// writes the new status back, all inside one transaction. A concurrent
// transition on the same order waits for the lock and then sees the new
// status.
func changeStatus(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	number kernel.OrderNumber,
	transition func(*order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, number)
	if err != nil {
		return err
	}

	if err = transition(aggregate); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
