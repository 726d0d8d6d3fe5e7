package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders
// follow the kitchen-to-table workflow.
//
// State transitions:
//
//	New ──> InProgress ──> PendingDelivery ──> Delivered
//	 │          │                 │
//	 └──────────┴─────────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the status an order receives when it is created.
	New

	// InProgress indicates the kitchen is preparing the order.
	InProgress

	// PendingDelivery indicates the order is ready and waiting to be served.
	PendingDelivery

	// Delivered indicates the order reached the table. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

var statusLabels = map[Status]string{
	New:             "NEW",
	InProgress:      "IN_PROGRESS",
	PendingDelivery: "PENDING_DELIVERY",
	Delivered:       "DELIVERED",
	Cancelled:       "CANCELLED",
}

// Statuses returns every valid status in workflow order.
func Statuses() []Status {
	return []Status{New, InProgress, PendingDelivery, Delivered, Cancelled}
}

// ParseStatus converts a label produced by String back into a Status.
//
// Returns:
//   - the matching Status for NEW, IN_PROGRESS, PENDING_DELIVERY, DELIVERED, CANCELLED
//   - (Unknown, error) for any other input
func ParseStatus(label string) (Status, error) {
	for s, l := range statusLabels {
		if l == label {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status label", label),
	)
}

// Validate checks if the Status value is one of the five defined statuses.
// It is used when statuses come from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := statusLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display label of the status.
// It is safe to call on any value and returns "UNKNOWN" for invalid ones.
//
// Example:
//
//	fmt.Println(order.PendingDelivery) // Output: "PENDING_DELIVERY"
func (s Status) String() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Process transitions New -> InProgress.
//
// Returns:
//   - (InProgress, nil) when the current status is New
//   - (Unknown, InvalidTransitionError) otherwise
func (s Status) Process() (Status, error) {
	return s.moveTo(InProgress, New)
}

// MarkReadyForDelivery transitions InProgress -> PendingDelivery.
func (s Status) MarkReadyForDelivery() (Status, error) {
	return s.moveTo(PendingDelivery, InProgress)
}

// Serve transitions PendingDelivery -> Delivered.
func (s Status) Serve() (Status, error) {
	return s.moveTo(Delivered, PendingDelivery)
}

// Cancel transitions any non-terminal status to Cancelled.
//
// Invalid transitions:
//   - Cancelled -> Cancelled (already cancelled)
//   - Delivered -> Cancelled (order already served)
//   - Unknown -> Cancelled (invalid initial state)
func (s Status) Cancel() (Status, error) {
	return s.moveTo(Cancelled, New, InProgress, PendingDelivery)
}

func (s Status) moveTo(target Status, allowedFrom ...Status) (Status, error) {
	for _, from := range allowedFrom {
		if s == from {
			return target, nil
		}
	}
	return Unknown, errs.NewInvalidTransitionError(target.String(), s.String())
}
