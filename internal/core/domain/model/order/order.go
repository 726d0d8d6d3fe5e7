package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

const maxCustomerNameLength = 120

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a restaurant order. It owns the order
// number, the references to the waiter and establishment, the status state
// machine and the descriptive payload (placement time, customer name, lines).
//
// Order follows these invariants:
//   - The number is assigned at most once and never changes afterwards
//   - Waiter and establishment references are set at creation and never change
//   - Status transitions follow the Status state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// Every successful transition records a StatusChanged event.
type Order struct {
	number            kernel.OrderNumber
	waiterID          kernel.WaiterID
	establishmentCode kernel.EstablishmentCode

	placedAt     time.Time
	customerName string
	lines        []Line

	status Status

	domainEvents []StatusChanged

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an unnumbered order in status New. The number is assigned
// later with AssignNumber, once the order has passed the creation checks.
//
// Parameters:
//   - waiterID: waiter who took the order
//   - establishmentCode: establishment the order belongs to
//   - placedAt: when the order was placed (required)
//   - customerName: optional, at most 120 characters
//   - lines: products on the order, may be empty
//
// Example:
//
//	waiter, _ := kernel.NewWaiterID(7)
//	establishment, _ := kernel.NewEstablishmentCode(1)
//	o, err := order.NewOrder(waiter, establishment, time.Now(), "Ana", nil)
func NewOrder(
	waiterID kernel.WaiterID,
	establishmentCode kernel.EstablishmentCode,
	placedAt time.Time,
	customerName string,
	lines []Line,
) (*Order, error) {
	o := &Order{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setWaiterID(waiterID),
		o.setEstablishmentCode(establishmentCode),
		o.setPlacedAt(placedAt),
		o.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}
	o.lines = append([]Line(nil), lines...)

	return o, nil
}

// RestoreOrder rebuilds a stored order. It is used by repositories and
// bypasses the New status default; no events are recorded.
func RestoreOrder(
	number kernel.OrderNumber,
	waiterID kernel.WaiterID,
	establishmentCode kernel.EstablishmentCode,
	placedAt time.Time,
	customerName string,
	lines []Line,
	status Status,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		number.Validate(),
		o.setWaiterID(waiterID),
		o.setEstablishmentCode(establishmentCode),
		o.setPlacedAt(placedAt),
		o.setCustomerName(customerName),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.number = number
	o.status = status
	o.lines = append([]Line(nil), lines...)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two numbered orders by number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.number.IsZero() && o.number.IsEqual(other.number)
}

func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// HasNumber reports whether the order has already been numbered.
func (o *Order) HasNumber() bool {
	return !o.number.IsZero()
}

func (o *Order) WaiterID() kernel.WaiterID {
	return o.waiterID
}

func (o *Order) EstablishmentCode() kernel.EstablishmentCode {
	return o.establishmentCode
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

func (o *Order) CustomerName() string {
	return o.customerName
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

func (o *Order) Status() Status {
	return o.status
}

// AssignNumber numbers a new order and resets its status to New.
//
// Returns:
//   - InvalidStateError if the order already carries a number
//   - ValueIsRequiredError if number is the zero value
func (o *Order) AssignNumber(number kernel.OrderNumber) error {
	if o.HasNumber() {
		return errs.NewInvalidStateError(fmt.Sprintf("order %s already has a number", o.number))
	}
	if err := number.Validate(); err != nil {
		return err
	}

	o.number = number
	o.status = New
	return nil
}

// Process moves the order from New to InProgress.
func (o *Order) Process() error {
	return o.apply(o.status.Process)
}

// MarkReadyForDelivery moves the order from InProgress to PendingDelivery.
func (o *Order) MarkReadyForDelivery() error {
	return o.apply(o.status.MarkReadyForDelivery)
}

// Serve moves the order from PendingDelivery to Delivered.
func (o *Order) Serve() error {
	return o.apply(o.status.Serve)
}

// Cancel moves any order that is neither Delivered nor Cancelled to Cancelled.
func (o *Order) Cancel() error {
	return o.apply(o.status.Cancel)
}

// DomainEvents returns a copy of the events recorded since the last
// ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	return append([]StatusChanged(nil), o.domainEvents...)
}

func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

func (o *Order) apply(transition func() (Status, error)) error {
	next, err := transition()
	if err != nil {
		return err
	}

	o.domainEvents = append(o.domainEvents, NewStatusChanged(o.number, o.status, next))
	o.status = next
	return nil
}

func (o *Order) setWaiterID(id kernel.WaiterID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.waiterID = id
	return nil
}

func (o *Order) setEstablishmentCode(code kernel.EstablishmentCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.establishmentCode = code
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placed at")
	}
	o.placedAt = placedAt
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if len([]rune(name)) > maxCustomerNameLength {
		return errs.NewValueIsOutOfRangeError("customer name length", len([]rune(name)), 0, maxCustomerNameLength)
	}
	o.customerName = name
	return nil
}
