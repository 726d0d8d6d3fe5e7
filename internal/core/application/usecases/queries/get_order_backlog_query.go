package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderBacklogQueryIsNotConstructed = errors.New(
	"GetOrderBacklogQuery must be created via NewGetOrderBacklogQuery constructor",
)

// GetOrderBacklogQuery counts the orders still moving through the kitchen,
// that is every order whose status is not terminal.
//
// Example:
//
//	handler := NewGetOrderBacklogQueryHandler(db)
//	backlog, err := handler.Handle(ctx, NewGetOrderBacklogQuery())
//	if err != nil {
//	    return err
//	}
//	for _, b := range backlog {
//	    fmt.Printf("%s: %d\n", b.Status, b.Count)
//	}
type GetOrderBacklogQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderBacklogQuery() GetOrderBacklogQuery {
	return GetOrderBacklogQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBacklogQueryIsNotConstructed)
}

// GetOrderBacklogQueryResponse is the number of orders in one status.
type GetOrderBacklogQueryResponse struct {
	Status order.Status
	Count  int64
}
