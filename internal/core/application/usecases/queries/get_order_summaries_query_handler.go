package queries

import (
	"context"

	"restaurant/internal/core/ports"
)

// GetOrderSummariesQueryHandler projects the joined rows supplied by the
// store into summaries, rendering each status as its label.
type GetOrderSummariesQueryHandler struct {
	reader ports.OrderSummaryReader
}

func NewGetOrderSummariesQueryHandler(reader ports.OrderSummaryReader) GetOrderSummariesQueryHandler {
	return GetOrderSummariesQueryHandler{reader: reader}
}

func (h GetOrderSummariesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummariesQuery,
) ([]GetOrderSummariesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.reader.FindSummaryRows(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]GetOrderSummariesQueryResponse, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, GetOrderSummariesQueryResponse{
			Number:            row.Number,
			Date:              row.PlacedAt,
			EstablishmentName: row.EstablishmentName,
			WaiterName:        row.WaiterName,
			CustomerName:      row.CustomerName,
			LineCount:         row.LineCount,
			Status:            row.Status.String(),
		})
	}
	return summaries, nil
}
