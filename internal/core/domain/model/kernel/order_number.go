package kernel

import (
	"fmt"
	"strconv"

	"restaurant/internal/pkg/errs"
)

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError("order number must be created via NewOrderNumber")

// OrderNumber identifies an order. It is assigned once, when the order is
// created, and never changes afterwards. The zero value means the order has
// no number yet.
type OrderNumber struct {
	value int64
}

// NewOrderNumber wraps a positive integer as an order number.
//
// Example:
//
//	number, err := kernel.NewOrderNumber(time.Now().UnixMilli())
//	if err != nil {
//	    return err
//	}
func NewOrderNumber(value int64) (OrderNumber, error) {
	if value <= 0 {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return OrderNumber{value: value}, nil
}

// ParseOrderNumber parses the decimal representation produced by String.
func ParseOrderNumber(s string) (OrderNumber, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	return NewOrderNumber(value)
}

// Int64 returns the raw value; 0 for an unset number.
func (n OrderNumber) Int64() int64 {
	return n.value
}

// IsZero reports whether the number has not been assigned.
func (n OrderNumber) IsZero() bool {
	return n.value == 0
}

func (n OrderNumber) String() string {
	return strconv.FormatInt(n.value, 10)
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns ErrOrderNumberIsNotConstructed for the zero value.
func (n OrderNumber) Validate() error {
	if n.value <= 0 {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
