package orderrepo

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

// GormOrderSummaryReader joins orders with their establishment, waiter and
// line count.
type GormOrderSummaryReader struct {
	db *gorm.DB
}

func NewGormOrderSummaryReader(db *gorm.DB) *GormOrderSummaryReader {
	return &GormOrderSummaryReader{db: db}
}

// FindSummaryRows returns one row per order ordered by number.
func (r *GormOrderSummaryReader) FindSummaryRows(ctx context.Context) ([]ports.OrderSummaryRow, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.number,
			o.placed_at,
			e.name,
			w.name,
			o.customer_name,
			COUNT(l.id),
			o.status
		FROM orders o
		JOIN establishments e ON e.code = o.establishment_code
		JOIN waiters w ON w.id = o.waiter_id
		LEFT JOIN order_lines l ON l.order_number = o.number
		GROUP BY o.number, e.name, w.name
		ORDER BY o.number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]ports.OrderSummaryRow, 0)
	for rows.Next() {
		var (
			row      ports.OrderSummaryRow
			placedAt time.Time
			label    string
		)
		if err = rows.Scan(
			&row.Number,
			&placedAt,
			&row.EstablishmentName,
			&row.WaiterName,
			&row.CustomerName,
			&row.LineCount,
			&label,
		); err != nil {
			return nil, err
		}

		status, parseErr := order.ParseStatus(label)
		if parseErr != nil {
			return nil, parseErr
		}
		row.PlacedAt = placedAt
		row.Status = status
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
