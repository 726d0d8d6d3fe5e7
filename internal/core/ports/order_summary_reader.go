package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
)

// OrderSummaryRow is one row of the denormalized order listing, with the
// establishment and waiter names already joined in.
type OrderSummaryRow struct {
	Number            int64
	PlacedAt          time.Time
	EstablishmentName string
	WaiterName        string
	CustomerName      string
	LineCount         int
	Status            order.Status
}

// OrderSummaryReader serves read-only projections of stored orders.
type OrderSummaryReader interface {
	// FindSummaryRows returns one row per order ordered by number.
	FindSummaryRows(ctx context.Context) ([]OrderSummaryRow, error)
}
