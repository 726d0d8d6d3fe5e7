package staff

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
)

var ErrEstablishmentIsNotConstructed = errors.New("Establishment must be created via NewEstablishment constructor")

// Establishment is a restaurant where orders are placed.
type Establishment struct {
	code          kernel.EstablishmentCode
	name          string
	isConstructed bool
}

func NewEstablishment(code kernel.EstablishmentCode, name string) (*Establishment, error) {
	name, nameErr := normalizeName("establishment name", name)
	if err := errors.Join(code.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Establishment{code: code, name: name, isConstructed: true}, nil
}

func (e *Establishment) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEstablishmentIsNotConstructed
	}
	return nil
}

func (e *Establishment) Code() kernel.EstablishmentCode {
	return e.code
}

func (e *Establishment) Name() string {
	return e.name
}
