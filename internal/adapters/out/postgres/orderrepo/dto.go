// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its label so the table reads the same as the API.
type OrderDTO struct {
	Number            int64 `gorm:"primaryKey;autoIncrement:false"`
	WaiterID          int64
	EstablishmentCode int64
	PlacedAt          time.Time
	CustomerName      string
	Status            string
	Lines             []OrderLineDTO `gorm:"foreignKey:OrderNumber;references:Number"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one row of order_lines. Position keeps the lines in the
// order they were given at creation.
type OrderLineDTO struct {
	ID          int64 `gorm:"primaryKey"`
	OrderNumber int64
	Position    int
	ProductCode int64
	Quantity    int
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.Lines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))
	for i, l := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			OrderNumber: aggregate.Number().Int64(),
			Position:    i,
			ProductCode: l.ProductCode(),
			Quantity:    l.Quantity(),
		})
	}

	return OrderDTO{
		Number:            aggregate.Number().Int64(),
		WaiterID:          aggregate.WaiterID().Int64(),
		EstablishmentCode: aggregate.EstablishmentCode().Int64(),
		PlacedAt:          aggregate.PlacedAt(),
		CustomerName:      aggregate.CustomerName(),
		Status:            aggregate.Status().String(),
		Lines:             lineDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	number, numberErr := kernel.NewOrderNumber(dto.Number)
	waiterID, waiterErr := kernel.NewWaiterID(dto.WaiterID)
	establishmentCode, establishmentErr := kernel.NewEstablishmentCode(dto.EstablishmentCode)
	status, statusErr := order.ParseStatus(dto.Status)
	if err := errors.Join(numberErr, waiterErr, establishmentErr, statusErr); err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, err := order.NewLine(l.ProductCode, l.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		number,
		waiterID,
		establishmentCode,
		dto.PlacedAt,
		dto.CustomerName,
		lines,
		status,
	)
}
