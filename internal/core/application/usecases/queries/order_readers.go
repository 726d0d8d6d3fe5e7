// Package queries contains read-only operations over stored orders.
// Handlers never open a unit of work; they read through narrow reader
// interfaces or run SQL directly against the database.
package queries

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderReader is the read side of the order repository.
type OrderReader interface {
	Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// OrderLineResponse is one product on an order.
type OrderLineResponse struct {
	ProductCode int64
	Quantity    int
}

// OrderResponse is the full view of a stored order.
type OrderResponse struct {
	Number            int64
	WaiterID          int64
	EstablishmentCode int64
	PlacedAt          time.Time
	CustomerName      string
	Lines             []OrderLineResponse
	Status            order.Status
}

func toOrderResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineResponse{ProductCode: l.ProductCode(), Quantity: l.Quantity()})
	}

	return OrderResponse{
		Number:            o.Number().Int64(),
		WaiterID:          o.WaiterID().Int64(),
		EstablishmentCode: o.EstablishmentCode().Int64(),
		PlacedAt:          o.PlacedAt(),
		CustomerName:      o.CustomerName(),
		Lines:             lines,
		Status:            o.Status(),
	}
}
