package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderLine is a product and quantity requested on a new order.
type CreateOrderLine struct {
	ProductCode int64
	Quantity    int
}

// CreateOrderCommand carries a candidate order exactly as the caller sent it.
// Nothing is checked here: the handler decides, in a fixed order, whether
// the candidate may be created.
//
// Example:
//
//	cmd := NewCreateOrderCommand(0, 7, 1, time.Now(), "Ana", []CreateOrderLine{{ProductCode: 100, Quantity: 2}})
//
//	handler := NewCreateOrderCommandHandler(uowFactory, numbers)
//	number, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	number            int64
	waiterID          int64
	establishmentCode int64
	placedAt          time.Time
	customerName      string
	lines             []CreateOrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command for a candidate order. number is
// whatever number the candidate already carries; 0 means none.
func NewCreateOrderCommand(
	number int64,
	waiterID int64,
	establishmentCode int64,
	placedAt time.Time,
	customerName string,
	lines []CreateOrderLine,
) CreateOrderCommand {
	return CreateOrderCommand{
		number:            number,
		waiterID:          waiterID,
		establishmentCode: establishmentCode,
		placedAt:          placedAt,
		customerName:      customerName,
		lines:             append([]CreateOrderLine(nil), lines...),
		guard:             guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// HasNumber reports whether the candidate arrived already numbered.
func (c CreateOrderCommand) HasNumber() bool {
	return c.number != 0
}

func (c CreateOrderCommand) Number() int64 {
	return c.number
}

func (c CreateOrderCommand) WaiterID() int64 {
	return c.waiterID
}

func (c CreateOrderCommand) EstablishmentCode() int64 {
	return c.establishmentCode
}

func (c CreateOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c CreateOrderCommand) Lines() []CreateOrderLine {
	return append([]CreateOrderLine(nil), c.lines...)
}
