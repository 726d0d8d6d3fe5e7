package order

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// StatusChangedEventType names StatusChanged on the wire.
const StatusChangedEventType = "orders.StatusChanged"

// StatusChanged is recorded by an Order every time one of its transitions
// succeeds. Events are collected on the aggregate and dispatched after the
// surrounding unit of work commits.
type StatusChanged struct {
	ID         string
	Number     kernel.OrderNumber
	From       Status
	To         Status
	OccurredAt time.Time
}

func NewStatusChanged(number kernel.OrderNumber, from, to Status) StatusChanged {
	return StatusChanged{
		ID:         uuid.New().String(),
		Number:     number,
		From:       from,
		To:         to,
		OccurredAt: time.Now().UTC(),
	}
}
