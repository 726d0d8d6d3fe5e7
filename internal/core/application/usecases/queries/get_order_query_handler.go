package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// GetOrderQueryHandler reads a single order.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(orderRepo)
//	query := NewGetOrderQuery(1718000000000)
//	resp, found, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !found {
//	    // respond 404
//	}
type GetOrderQueryHandler struct {
	orders OrderReader
}

func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns found == false with a nil error when no order has the number,
// including numbers that are not positive.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, bool, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, false, err
	}

	number, err := kernel.NewOrderNumber(query.Number())
	if err != nil {
		return GetOrderQueryResponse{}, false, nil
	}

	o, err := h.orders.Get(ctx, number)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return GetOrderQueryResponse{}, false, nil
	}
	if err != nil {
		return GetOrderQueryResponse{}, false, err
	}

	return toOrderResponse(o), true, nil
}
