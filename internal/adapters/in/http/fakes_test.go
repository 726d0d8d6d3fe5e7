package http_test

import (
	"context"
	"sort"
	"sync"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// memoryStore is an in-memory order store shared by every fake unit of work.
type memoryStore struct {
	mu             sync.Mutex
	orders         map[int64]*order.Order
	waiters        map[int64]string
	establishments map[int64]string
	nextNumber     int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders:         make(map[int64]*order.Order),
		waiters:        make(map[int64]string),
		establishments: make(map[int64]string),
		nextNumber:     1718000000000,
	}
}

func clone(o *order.Order) *order.Order {
	c, err := order.RestoreOrder(o.Number(), o.WaiterID(), o.EstablishmentCode(), o.PlacedAt(),
		o.CustomerName(), o.Lines(), o.Status())
	if err != nil {
		panic(err)
	}
	return c
}

// ports.NumberSource
func (s *memoryStore) Next(_ context.Context) (kernel.OrderNumber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextNumber++
	return kernel.NewOrderNumber(s.nextNumber)
}

// ports.OrderRepository and queries.OrderReader
func (s *memoryStore) Add(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.Number().Int64()] = clone(o)
	return nil
}

func (s *memoryStore) Get(_ context.Context, number kernel.OrderNumber) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[number.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", number.String())
	}
	return clone(o), nil
}

func (s *memoryStore) GetForUpdate(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	return s.Get(ctx, number)
}

func (s *memoryStore) GetAll(_ context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		all = append(all, clone(o))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Number().Int64() < all[j].Number().Int64() })
	return all, nil
}

func (s *memoryStore) UpdateStatus(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.Number().Int64()]; !ok {
		return errs.NewObjectNotFoundError("order", o.Number().String())
	}
	s.orders[o.Number().Int64()] = clone(o)
	return nil
}

// ports.OrderSummaryReader
func (s *memoryStore) FindSummaryRows(ctx context.Context) ([]ports.OrderSummaryRow, error) {
	all, _ := s.GetAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]ports.OrderSummaryRow, 0, len(all))
	for _, o := range all {
		rows = append(rows, ports.OrderSummaryRow{
			Number:            o.Number().Int64(),
			PlacedAt:          o.PlacedAt(),
			EstablishmentName: s.establishments[o.EstablishmentCode().Int64()],
			WaiterName:        s.waiters[o.WaiterID().Int64()],
			CustomerName:      o.CustomerName(),
			LineCount:         len(o.Lines()),
			Status:            o.Status(),
		})
	}
	return rows, nil
}

type memoryWaiters struct{ s *memoryStore }

func (r memoryWaiters) Add(_ context.Context, w *staff.Waiter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.waiters[w.ID().Int64()]; ok {
		return errs.NewAlreadyExistsError("waiter", w.ID().Int64())
	}
	r.s.waiters[w.ID().Int64()] = w.Name()
	return nil
}

func (r memoryWaiters) Exists(_ context.Context, id kernel.WaiterID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.waiters[id.Int64()]
	return ok, nil
}

type memoryEstablishments struct{ s *memoryStore }

func (r memoryEstablishments) Add(_ context.Context, e *staff.Establishment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.establishments[e.Code().Int64()]; ok {
		return errs.NewAlreadyExistsError("establishment", e.Code().Int64())
	}
	r.s.establishments[e.Code().Int64()] = e.Name()
	return nil
}

func (r memoryEstablishments) Exists(_ context.Context, code kernel.EstablishmentCode) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.establishments[code.Int64()]
	return ok, nil
}

// memoryUoW writes straight through to the store.
type memoryUoW struct{ s *memoryStore }

func (memoryUoW) Begin(context.Context) error    { return nil }
func (memoryUoW) Commit(context.Context) error   { return nil }
func (memoryUoW) Rollback(context.Context) error { return nil }

func (u memoryUoW) OrderRepository() ports.OrderRepository { return u.s }
func (u memoryUoW) WaiterRepository() ports.WaiterRepository {
	return memoryWaiters(u)
}
func (u memoryUoW) EstablishmentRepository() ports.EstablishmentRepository {
	return memoryEstablishments(u)
}

type uowFactory struct{ s *memoryStore }

func (f uowFactory) Create() commands.UoW { return memoryUoW(f) }

type orderUoWFactory struct{ s *memoryStore }

func (f orderUoWFactory) Create() commands.OrderUoW { return memoryUoW(f) }

type waiterUoWFactory struct{ s *memoryStore }

func (f waiterUoWFactory) Create() commands.WaiterUoW { return memoryUoW(f) }

type establishmentUoWFactory struct{ s *memoryStore }

func (f establishmentUoWFactory) Create() commands.EstablishmentUoW { return memoryUoW(f) }
