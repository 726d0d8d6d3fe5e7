package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateEstablishmentCommandIsNotConstructed = errors.New(
	"CreateEstablishmentCommand must be created via NewCreateEstablishmentCommand constructor",
)

// CreateEstablishmentCommand registers an establishment that orders can then reference.
type CreateEstablishmentCommand struct { //nolint:recvcheck //using for validation
	code kernel.EstablishmentCode
	name string

	guard guard.ConstructorGuard
}

func NewCreateEstablishmentCommand(code int64, name string) (CreateEstablishmentCommand, error) {
	establishmentCode, err := kernel.NewEstablishmentCode(code)
	if err != nil {
		return CreateEstablishmentCommand{}, err
	}

	return CreateEstablishmentCommand{
		code:  establishmentCode,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateEstablishmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateEstablishmentCommandIsNotConstructed)
}

func (c CreateEstablishmentCommand) Code() kernel.EstablishmentCode {
	return c.code
}

func (c CreateEstablishmentCommand) Name() string {
	return c.name
}
