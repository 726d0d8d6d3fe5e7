package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetOrderBacklogQueryHandler counts non-terminal orders per status straight
// from the orders table.
type GetOrderBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBacklogQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetOrderBacklogQueryHandler(db *gorm.DB) GetOrderBacklogQueryHandler {
	return GetOrderBacklogQueryHandler{db: db}
}

// Handle returns one entry per non-terminal status in workflow order,
// including statuses with no orders.
func (h GetOrderBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBacklogQuery,
) ([]GetOrderBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	open := make([]order.Status, 0, len(order.Statuses()))
	labels := make([]string, 0, len(order.Statuses()))
	for _, s := range order.Statuses() {
		if !s.IsTerminal() {
			open = append(open, s)
			labels = append(labels, s.String())
		}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		WHERE status = ANY(?)
		GROUP BY status
	`, pq.Array(labels)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int64, len(open))
	for rows.Next() {
		var label string
		var count int64
		if err = rows.Scan(&label, &count); err != nil {
			return nil, err
		}

		status, parseErr := order.ParseStatus(label)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	backlog := make([]GetOrderBacklogQueryResponse, 0, len(open))
	for _, s := range open {
		backlog = append(backlog, GetOrderBacklogQueryResponse{Status: s, Count: counts[s]})
	}
	return backlog, nil
}
