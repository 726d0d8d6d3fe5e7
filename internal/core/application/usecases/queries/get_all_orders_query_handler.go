package queries

import (
	"context"
)

// GetAllOrdersQueryHandler lists all orders in the order the store returns
// them, which is ascending by number.
type GetAllOrdersQueryHandler struct {
	orders OrderReader
}

func NewGetAllOrdersQueryHandler(orders OrderReader) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stored, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]OrderResponse, 0, len(stored))
	for _, o := range stored {
		result = append(result, toOrderResponse(o))
	}
	return result, nil
}
