package commands_test

import (
	"context"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/staff"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockWaiterRepository struct{ mock.Mock }

func (m *MockWaiterRepository) Add(ctx context.Context, w *staff.Waiter) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWaiterRepository) Exists(ctx context.Context, id kernel.WaiterID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockEstablishmentRepository struct{ mock.Mock }

func (m *MockEstablishmentRepository) Add(ctx context.Context, e *staff.Establishment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEstablishmentRepository) Exists(ctx context.Context, code kernel.EstablishmentCode) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WaiterRepository() ports.WaiterRepository {
	args := m.Called()
	return args.Get(0).(ports.WaiterRepository)
}

func (m *MockUoW) EstablishmentRepository() ports.EstablishmentRepository {
	args := m.Called()
	return args.Get(0).(ports.EstablishmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockWaiterUoWFactory struct{ mock.Mock }

func (m *MockWaiterUoWFactory) Create() commands.WaiterUoW {
	args := m.Called()
	return args.Get(0).(commands.WaiterUoW)
}

type MockEstablishmentUoWFactory struct{ mock.Mock }

func (m *MockEstablishmentUoWFactory) Create() commands.EstablishmentUoW {
	args := m.Called()
	return args.Get(0).(commands.EstablishmentUoW)
}

type MockNumberSource struct{ mock.Mock }

func (m *MockNumberSource) Next(ctx context.Context) (kernel.OrderNumber, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderNumber), args.Error(1)
}
