package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

const (
	minLineQuantity = 1
	maxLineQuantity = 999
)

// Line is one product on an order. Lines are fixed at creation and carried
// through the lifecycle untouched.
type Line struct {
	productCode int64
	quantity    int
}

func NewLine(productCode int64, quantity int) (Line, error) {
	var err error
	if productCode <= 0 {
		err = errs.NewValueIsInvalidErrorWithCause(
			"product code",
			fmt.Errorf("%d is not greater than 0", productCode),
		)
	}
	if quantity < minLineQuantity || quantity > maxLineQuantity {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("quantity", quantity, minLineQuantity, maxLineQuantity))
	}
	if err != nil {
		return Line{}, err
	}
	return Line{productCode: productCode, quantity: quantity}, nil
}

func (l Line) ProductCode() int64 {
	return l.productCode
}

func (l Line) Quantity() int {
	return l.quantity
}
