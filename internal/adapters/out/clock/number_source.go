// Package clock derives order numbers from the wall clock.
package clock

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
)

// MillisNumberSource returns the current Unix time in milliseconds as the
// order number. Two orders created within the same millisecond get the
// same number; nothing here checks the store for collisions.
type MillisNumberSource struct {
	now func() time.Time
}

func NewMillisNumberSource() *MillisNumberSource {
	return &MillisNumberSource{now: time.Now}
}

// NewMillisNumberSourceWithClock is NewMillisNumberSource with an injected
// time function.
func NewMillisNumberSourceWithClock(now func() time.Time) *MillisNumberSource {
	return &MillisNumberSource{now: now}
}

func (s *MillisNumberSource) Next(ctx context.Context) (kernel.OrderNumber, error) {
	if err := ctx.Err(); err != nil {
		return kernel.OrderNumber{}, err
	}
	return kernel.NewOrderNumber(s.now().UnixMilli())
}
