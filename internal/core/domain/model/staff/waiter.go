package staff

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
)

var ErrWaiterIsNotConstructed = errors.New("Waiter must be created via NewWaiter constructor")

// Waiter is a member of staff who can take orders.
type Waiter struct {
	id            kernel.WaiterID
	name          string
	isConstructed bool
}

func NewWaiter(id kernel.WaiterID, name string) (*Waiter, error) {
	name, nameErr := normalizeName("waiter name", name)
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}

	return &Waiter{id: id, name: name, isConstructed: true}, nil
}

func (w *Waiter) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWaiterIsNotConstructed
	}
	return nil
}

func (w *Waiter) ID() kernel.WaiterID {
	return w.id
}

func (w *Waiter) Name() string {
	return w.name
}
