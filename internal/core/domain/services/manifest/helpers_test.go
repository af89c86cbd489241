package manifest_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipper"

	"github.com/stretchr/testify/require"
)

type orderOptions struct {
	externalID string
	name       string
	phone      string
	company    string
	zip        string
	line2      string
	payment    order.PaymentMethod
	total      int64
	date       *time.Time
	slot       kernel.TimeSlot
	itemNames  []string
}

func newOrder(t *testing.T, opts orderOptions) *order.Order {
	t.Helper()
	if opts.externalID == "" {
		opts.externalID = "EC-0001"
	}
	if opts.name == "" {
		opts.name = "山田 太郎"
	}
	if opts.phone == "" {
		opts.phone = "090-1234-5678"
	}
	if opts.zip == "" {
		opts.zip = "150-0001"
	}
	if opts.payment == "" {
		opts.payment = order.PaymentCreditCard
	}
	if opts.itemNames == nil {
		opts.itemNames = []string{"Tシャツ"}
	}

	recipient, err := order.NewRecipient(opts.name, opts.phone, opts.company)
	require.NoError(t, err)
	address, err := order.NewAddress(opts.zip, "東京都", "渋谷区", "神宮前1-1-1", opts.line2)
	require.NoError(t, err)

	items := make([]order.LineItem, 0, len(opts.itemNames))
	for _, name := range opts.itemNames {
		item, err := order.NewLineItem(name, "SKU", 1, nil, nil)
		require.NoError(t, err)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), opts.externalID, recipient, address,
		order.Payment{Method: opts.payment, TotalAmount: opts.total},
		order.Delivery{Date: opts.date, TimeSlot: opts.slot}, items)
	require.NoError(t, err)
	return o
}

func profile(t *testing.T) shipper.Profile {
	t.Helper()
	p, err := shipper.NewProfile("株式会社サンプル", "03-1234-5678", "100-0001", "東京都", "千代田区", "千代田1-1")
	require.NoError(t, err)
	return p
}

func date(y int, m time.Month, d int) *time.Time {
	jst := time.FixedZone("JST", 9*60*60)
	v := time.Date(y, m, d, 0, 0, 0, 0, jst)
	return &v
}
