package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/routing"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func newOrder(t *testing.T, method order.PaymentMethod, items ...order.LineItem) *order.Order {
	t.Helper()
	recipient, err := order.NewRecipient("佐藤 花子", "080-1111-2222", "")
	require.NoError(t, err)
	address, err := order.NewAddress("530-0001", "大阪府", "大阪市北区", "梅田1-1-1", "")
	require.NoError(t, err)
	date := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	o, err := order.NewOrder(kernel.NewUUID(), "EC-3003", recipient, address,
		order.Payment{Method: method, TotalAmount: 5500},
		order.Delivery{Date: &date, TimeSlot: kernel.TimeSlot1416}, items)
	require.NoError(t, err)
	return o
}

func item(t *testing.T, sku string, qty int, weight, size *int) order.LineItem {
	t.Helper()
	i, err := order.NewLineItem("商品", sku, qty, weight, size)
	require.NoError(t, err)
	return i
}

func decisionFor(o *order.Order) routing.Decision {
	return routing.Decision{
		OrderID:     o.ID(),
		Carrier:     kernel.CarrierSagawa,
		ServiceType: kernel.ServiceSagawaHikyaku,
		Rule:        routing.RuleDefault,
		Reason:      "デフォルト → 佐川飛脚宅配便",
	}
}

func TestNewShipment(t *testing.T) {
	d := order.DefaultDefaults()

	t.Run("should build a single package from the order", func(t *testing.T) {
		o := newOrder(t, order.PaymentCreditCard,
			item(t, "A", 2, intPtr(700), intPtr(80)),
			item(t, "B", 1, nil, nil),
		)

		s, err := shipment.NewShipment(kernel.NewUUID(), o, decisionFor(o), nil, d)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.True(t, s.OrderID().IsEqual(o.ID()))
		assert.Equal(t, kernel.CarrierSagawa, s.Carrier())
		assert.Equal(t, kernel.ServiceSagawaHikyaku, s.ServiceType())
		assert.Equal(t, routing.RuleDefault, s.Rule())
		require.Len(t, s.Packages(), 1)
		assert.Equal(t, []string{"A", "B"}, s.Packages()[0].SKUs())
		assert.Equal(t, 1900, s.TotalWeight())
		assert.Equal(t, kernel.Size80, s.TotalSize())
		assert.Equal(t, kernel.TimeSlot1416, s.Delivery().TimeSlot)
		require.NotNil(t, s.Delivery().Date)
		assert.Nil(t, s.CODAmount())
	})

	t.Run("should total explicit packages", func(t *testing.T) {
		o := newOrder(t, order.PaymentCreditCard, item(t, "A", 1, nil, nil))
		p1, err := shipment.NewPackage(kernel.NewUUID(), 4000, kernel.Size100, []string{"A"})
		require.NoError(t, err)
		p2, err := shipment.NewPackage(kernel.NewUUID(), 2500, kernel.Size140, nil)
		require.NoError(t, err)

		s, err := shipment.NewShipment(kernel.NewUUID(), o, decisionFor(o), []shipment.Package{p1, p2}, d)

		require.NoError(t, err)
		assert.Equal(t, 6500, s.TotalWeight())
		assert.Equal(t, kernel.Size140, s.TotalSize())
	})

	t.Run("should carry COD amount for COD orders", func(t *testing.T) {
		o := newOrder(t, order.PaymentCOD, item(t, "A", 1, nil, nil))

		s, err := shipment.NewShipment(kernel.NewUUID(), o, decisionFor(o), nil, d)

		require.NoError(t, err)
		require.NotNil(t, s.CODAmount())
		assert.Equal(t, int64(5500), *s.CODAmount())
	})

	t.Run("should reject service of another carrier", func(t *testing.T) {
		o := newOrder(t, order.PaymentCreditCard, item(t, "A", 1, nil, nil))
		decision := decisionFor(o)
		decision.ServiceType = kernel.ServiceYamatoNekopos

		_, err := shipment.NewShipment(kernel.NewUUID(), o, decision, nil, d)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject decision for another order", func(t *testing.T) {
		o := newOrder(t, order.PaymentCreditCard, item(t, "A", 1, nil, nil))
		decision := decisionFor(o)
		decision.OrderID = kernel.NewUUID()

		_, err := shipment.NewShipment(kernel.NewUUID(), o, decision, nil, d)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require a reason", func(t *testing.T) {
		o := newOrder(t, order.PaymentCreditCard, item(t, "A", 1, nil, nil))
		decision := decisionFor(o)
		decision.Reason = " "

		_, err := shipment.NewShipment(kernel.NewUUID(), o, decision, nil, d)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an unconstructed order", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), &order.Order{}, routing.Decision{}, nil, d)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestNewPackage(t *testing.T) {
	_, err := shipment.NewPackage(kernel.NewUUID(), 0, kernel.SizeCode(70), nil)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "weightGrams")
	assert.Contains(t, err.Error(), "sizeCode")
}

func TestShipment_Lifecycle(t *testing.T) {
	o := newOrder(t, order.PaymentCreditCard, item(t, "A", 1, nil, nil))
	at := time.Date(2025, 4, 9, 15, 0, 0, 0, time.UTC)

	t.Run("should walk the happy path", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), o, decisionFor(o), nil, order.DefaultDefaults())
		require.NoError(t, err)

		require.NoError(t, s.AssignTrackingNumber(" 4000-1111-2222 ", at))
		assert.Equal(t, shipment.LabelPrinted, s.Status())
		assert.Equal(t, "4000-1111-2222", s.TrackingNumber())
		require.NotNil(t, s.ShippedAt())

		for _, next := range []shipment.Status{shipment.PickedUp, shipment.InTransit, shipment.OutForDelivery, shipment.Delivered} {
			require.NoError(t, s.Advance(next, at))
		}
		assert.True(t, s.Status().IsTerminal())
		require.NotNil(t, s.DeliveredAt())

		err = s.Advance(shipment.Returned, at)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "DELIVERED")
	})

	t.Run("should assign tracking number only once", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), o, decisionFor(o), nil, order.DefaultDefaults())
		require.NoError(t, err)
		require.NoError(t, s.AssignTrackingNumber("1", at))

		err = s.AssignTrackingNumber("2", at)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "1", s.TrackingNumber())
	})

	t.Run("should not skip states", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), o, decisionFor(o), nil, order.DefaultDefaults())
		require.NoError(t, err)

		require.ErrorIs(t, s.Advance(shipment.InTransit, at), errs.ErrInvalidState)
		require.ErrorIs(t, s.Advance(shipment.LabelPrinted, at), errs.ErrInvalidState)
		assert.Equal(t, shipment.Pending, s.Status())
	})

	t.Run("should fail delivery from in transit", func(t *testing.T) {
		s, err := shipment.RestoreShipment(kernel.NewUUID(), decisionFor(o), packages(t), order.Delivery{}, nil,
			shipment.Progress{Status: shipment.InTransit, TrackingNumber: "X"})
		require.NoError(t, err)

		require.NoError(t, s.Advance(shipment.FailedDelivery, at))
		assert.True(t, s.Status().IsTerminal())
		assert.Nil(t, s.DeliveredAt())
	})
}

func TestParseStatus(t *testing.T) {
	s, err := shipment.ParseStatus("out_for_delivery")
	require.NoError(t, err)
	assert.Equal(t, shipment.OutForDelivery, s)

	_, err = shipment.ParseStatus("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Len(t, shipment.Statuses(), 8)
}

func packages(t *testing.T) []shipment.Package {
	t.Helper()
	p, err := shipment.NewPackage(kernel.NewUUID(), 500, kernel.Size60, nil)
	require.NoError(t, err)
	return []shipment.Package{p}
}
