package kernel

import (
	"fmt"
	"strconv"

	"restaurant/internal/pkg/errs"
)

var (
	// ErrWaiterIDIsNotConstructed is returned when validating a zero-value WaiterID.
	ErrWaiterIDIsNotConstructed = errs.NewValueIsRequiredError("waiter id must be created via NewWaiterID")

	// ErrEstablishmentCodeIsNotConstructed is returned when validating a zero-value EstablishmentCode.
	ErrEstablishmentCodeIsNotConstructed = errs.NewValueIsRequiredError(
		"establishment code must be created via NewEstablishmentCode",
	)
)

// WaiterID references the waiter who took an order.
type WaiterID struct {
	value int64
}

func NewWaiterID(value int64) (WaiterID, error) {
	if value <= 0 {
		return WaiterID{}, errs.NewValueIsInvalidErrorWithCause(
			"waiter id",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return WaiterID{value: value}, nil
}

func (id WaiterID) Int64() int64 {
	return id.value
}

func (id WaiterID) String() string {
	return strconv.FormatInt(id.value, 10)
}

func (id WaiterID) Validate() error {
	if id.value <= 0 {
		return ErrWaiterIDIsNotConstructed
	}
	return nil
}

// EstablishmentCode references the establishment an order was placed at.
type EstablishmentCode struct {
	value int64
}

func NewEstablishmentCode(value int64) (EstablishmentCode, error) {
	if value <= 0 {
		return EstablishmentCode{}, errs.NewValueIsInvalidErrorWithCause(
			"establishment code",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return EstablishmentCode{value: value}, nil
}

func (c EstablishmentCode) Int64() int64 {
	return c.value
}

func (c EstablishmentCode) String() string {
	return strconv.FormatInt(c.value, 10)
}

func (c EstablishmentCode) Validate() error {
	if c.value <= 0 {
		return ErrEstablishmentCodeIsNotConstructed
	}
	return nil
}
