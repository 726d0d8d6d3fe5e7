package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrProcessOrderCommandIsNotConstructed = errors.New(
		"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
	)
	ErrMarkOrderReadyForDeliveryCommandIsNotConstructed = errors.New(
		"MarkOrderReadyForDeliveryCommand must be created via NewMarkOrderReadyForDeliveryCommand constructor",
	)
	ErrServeOrderCommandIsNotConstructed = errors.New(
		"ServeOrderCommand must be created via NewServeOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// ProcessOrderCommand asks the kitchen to start preparing an order.
type ProcessOrderCommand struct {
	number kernel.OrderNumber
	guard  guard.ConstructorGuard
}

func NewProcessOrderCommand(number int64) (ProcessOrderCommand, error) {
	n, err := kernel.NewOrderNumber(number)
	if err != nil {
		return ProcessOrderCommand{}, err
	}
	return ProcessOrderCommand{number: n, guard: guard.NewConstructorGuard()}, nil
}

func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

func (c ProcessOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

// MarkOrderReadyForDeliveryCommand reports that an order left the kitchen.
type MarkOrderReadyForDeliveryCommand struct {
	number kernel.OrderNumber
	guard  guard.ConstructorGuard
}

func NewMarkOrderReadyForDeliveryCommand(number int64) (MarkOrderReadyForDeliveryCommand, error) {
	n, err := kernel.NewOrderNumber(number)
	if err != nil {
		return MarkOrderReadyForDeliveryCommand{}, err
	}
	return MarkOrderReadyForDeliveryCommand{number: n, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkOrderReadyForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyForDeliveryCommandIsNotConstructed)
}

func (c MarkOrderReadyForDeliveryCommand) Number() kernel.OrderNumber {
	return c.number
}

// ServeOrderCommand reports that an order reached the table.
type ServeOrderCommand struct {
	number kernel.OrderNumber
	guard  guard.ConstructorGuard
}

func NewServeOrderCommand(number int64) (ServeOrderCommand, error) {
	n, err := kernel.NewOrderNumber(number)
	if err != nil {
		return ServeOrderCommand{}, err
	}
	return ServeOrderCommand{number: n, guard: guard.NewConstructorGuard()}, nil
}

func (c ServeOrderCommand) Validate() error {
	return c.guard.Validate(ErrServeOrderCommandIsNotConstructed)
}

func (c ServeOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

// CancelOrderCommand abandons an order that has not been served.
type CancelOrderCommand struct {
	number kernel.OrderNumber
	guard  guard.ConstructorGuard
}

func NewCancelOrderCommand(number int64) (CancelOrderCommand, error) {
	n, err := kernel.NewOrderNumber(number)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{number: n, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Number() kernel.OrderNumber {
	return c.number
}
