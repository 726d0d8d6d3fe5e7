package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery looks up a single order by number. Any number is accepted;
// one no order can carry simply finds nothing.
type GetOrderQuery struct {
	number int64
	guard  guard.ConstructorGuard
}

func NewGetOrderQuery(number int64) GetOrderQuery {
	return GetOrderQuery{number: number, guard: guard.NewConstructorGuard()}
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Number() int64 {
	return q.number
}

// GetOrderQueryResponse is the order found by GetOrderQuery.
type GetOrderQueryResponse = OrderResponse
