package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateWaiterCommandIsNotConstructed = errors.New(
	"CreateWaiterCommand must be created via NewCreateWaiterCommand constructor",
)

// CreateWaiterCommand registers a waiter that orders can then reference.
type CreateWaiterCommand struct { //nolint:recvcheck //using for validation
	id   kernel.WaiterID
	name string

	guard guard.ConstructorGuard
}

func NewCreateWaiterCommand(id int64, name string) (CreateWaiterCommand, error) {
	waiterID, err := kernel.NewWaiterID(id)
	if err != nil {
		return CreateWaiterCommand{}, err
	}

	return CreateWaiterCommand{
		id:    waiterID,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateWaiterCommand) Validate() error {
	return c.guard.Validate(ErrCreateWaiterCommandIsNotConstructed)
}

func (c CreateWaiterCommand) ID() kernel.WaiterID {
	return c.id
}

func (c CreateWaiterCommand) Name() string {
	return c.name
}
