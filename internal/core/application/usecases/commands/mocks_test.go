package commands_test

import (
	"context"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingShipment(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
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

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func intPtr(v int) *int {
	return &v
}

// newOrder builds an order in status with a single line item of weight grams.
func newOrder(t *testing.T, status order.Status, payment order.PaymentMethod, weight int) *order.Order {
	t.Helper()
	recipient, err := order.NewRecipient("山田 太郎", "090-1234-5678", "")
	require.NoError(t, err)
	address, err := order.NewAddress("150-0001", "東京都", "渋谷区", "神宮前1-1-1", "")
	require.NoError(t, err)
	item, err := order.NewLineItem("Tシャツ", "TS-001", 1, intPtr(weight), nil)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), "EC-1001", recipient, address,
		order.Payment{Method: payment, TotalAmount: 4200}, order.Delivery{},
		[]order.LineItem{item}, order.Fulfilment{Status: status})
	require.NoError(t, err)
	return o
}

// newShipment builds a shipment for o in status.
func newShipment(t *testing.T, o *order.Order, status shipment.Status) *shipment.Shipment {
	t.Helper()
	p, err := shipment.NewPackage(kernel.NewUUID(), 1000, kernel.Size60, nil)
	require.NoError(t, err)

	decision := routingDecision(o)
	s, err := shipment.RestoreShipment(kernel.NewUUID(), decision, []shipment.Package{p}, o.Delivery(), nil,
		shipment.Progress{Status: status})
	require.NoError(t, err)
	return s
}
