package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var ErrGetOrderSummariesQueryIsNotConstructed = errors.New(
	"GetOrderSummariesQuery must be created via NewGetOrderSummariesQuery constructor",
)

// GetOrderSummariesQuery lists every order in the denormalized summary shape
// shown on the front-of-house board.
type GetOrderSummariesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderSummariesQuery() GetOrderSummariesQuery {
	return GetOrderSummariesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderSummariesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummariesQueryIsNotConstructed)
}

// GetOrderSummariesQueryResponse is one summary row. Status is the display label.
type GetOrderSummariesQueryResponse struct {
	Number            int64
	Date              time.Time
	EstablishmentName string
	WaiterName        string
	CustomerName      string
	LineCount         int
	Status            string
}
