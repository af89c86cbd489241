package queries_test

import (
	"context"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipper"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockShipperProfileProvider struct{ mock.Mock }

func (m *MockShipperProfileProvider) Get(ctx context.Context) (shipper.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(shipper.Profile), args.Error(1)
}

type orderFixture struct {
	externalID string
	name       string
	prefecture string
	payment    order.PaymentMethod
	weight     int
	status     order.Status
}

func newOrder(t *testing.T, f orderFixture) *order.Order {
	t.Helper()
	if f.externalID == "" {
		f.externalID = "EC-1001"
	}
	if f.name == "" {
		f.name = "山田 太郎"
	}
	if f.prefecture == "" {
		f.prefecture = "東京都"
	}
	if f.payment == "" {
		f.payment = order.PaymentCreditCard
	}
	if f.status == order.Unknown {
		f.status = order.Confirmed
	}

	recipient, err := order.NewRecipient(f.name, "090-1234-5678", "")
	require.NoError(t, err)
	address, err := order.NewAddress("150-0001", f.prefecture, "渋谷区", "神宮前1-1-1", "")
	require.NoError(t, err)

	var weight *int
	if f.weight > 0 {
		weight = &f.weight
	}
	item, err := order.NewLineItem("Tシャツ", "TS-001", 1, weight, nil)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), f.externalID, recipient, address,
		order.Payment{Method: f.payment, TotalAmount: 3300}, order.Delivery{},
		[]order.LineItem{item}, order.Fulfilment{Status: f.status})
	require.NoError(t, err)
	return o
}

func shipperProfile(t *testing.T) shipper.Profile {
	t.Helper()
	p, err := shipper.NewProfile("株式会社サンプル物流", "03-1111-2222", "135-0061", "東京都", "江東区", "豊洲3-3-3")
	require.NoError(t, err)
	return p
}
