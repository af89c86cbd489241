package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/routing"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

type orderShape struct {
	company    string
	prefecture string
	payment    order.PaymentMethod
	slot       kernel.TimeSlot
	weight     *int
	size       *int
	quantity   int
}

func buildOrder(t *testing.T, s orderShape) *order.Order {
	t.Helper()
	if s.prefecture == "" {
		s.prefecture = "東京都"
	}
	if s.payment == "" {
		s.payment = order.PaymentCreditCard
	}
	if s.quantity == 0 {
		s.quantity = 1
	}

	recipient, err := order.NewRecipient("山田 太郎", "090-1234-5678", s.company)
	require.NoError(t, err)
	address, err := order.NewAddress("900-0001", s.prefecture, "那覇市", "港町1-1", "")
	require.NoError(t, err)
	item, err := order.NewLineItem("商品", "SKU-1", s.quantity, s.weight, s.size)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "EC-1", recipient, address,
		order.Payment{Method: s.payment, TotalAmount: 3000},
		order.Delivery{TimeSlot: s.slot}, []order.LineItem{item})
	require.NoError(t, err)
	return o
}

func TestCarrierRouter_Scenarios(t *testing.T) {
	router := services.NewCarrierRouter(services.DefaultRoutingThresholds())

	tests := []struct {
		name    string
		shape   orderShape
		carrier kernel.Carrier
		service kernel.ServiceType
		rule    routing.Rule
		cost    *int
	}{
		{
			name:    "heavy B2B goes on a Fukuyama pallet",
			shape:   orderShape{company: "ACME Corp", weight: intPtr(35000)},
			carrier: kernel.CarrierFukuyama,
			service: kernel.ServiceFukuyamaPallet,
			rule:    routing.RuleB2B,
		},
		{
			name:    "small COD goes Yamato Compact",
			shape:   orderShape{payment: order.PaymentCOD, weight: intPtr(1500), size: intPtr(60)},
			carrier: kernel.CarrierYamato,
			service: kernel.ServiceYamatoCompact,
			rule:    routing.RuleCOD,
		},
		{
			name:    "Okinawa prepaid goes Yu-Pack",
			shape:   orderShape{prefecture: "沖縄県", weight: intPtr(3000)},
			carrier: kernel.CarrierJapanPost,
			service: kernel.ServiceJapanPostYuPack,
			rule:    routing.RuleRemoteArea,
		},
		{
			name:    "tiny parcel goes Click-Post",
			shape:   orderShape{weight: intPtr(400), size: intPtr(60)},
			carrier: kernel.CarrierJapanPost,
			service: kernel.ServiceJapanPostClickPost,
			rule:    routing.RuleSmallParcel,
			cost:    intPtr(185),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := router.Decide(buildOrder(t, tt.shape))

			require.NoError(t, err)
			assert.Equal(t, tt.carrier, d.Carrier)
			assert.Equal(t, tt.service, d.ServiceType)
			assert.Equal(t, tt.rule, d.Rule)
			assert.NotEmpty(t, d.Reason)
			assert.Equal(t, tt.cost, d.EstimatedCost)
		})
	}
}

func TestCarrierRouter_Rules(t *testing.T) {
	router := services.NewCarrierRouter(services.DefaultRoutingThresholds())

	tests := []struct {
		name    string
		shape   orderShape
		service kernel.ServiceType
		reason  string
	}{
		{"light B2B goes cargo", orderShape{company: "株式会社テスト", weight: intPtr(5000)}, kernel.ServiceFukuyamaCargo, "B2B注文 → 福山通運カーゴ便"},
		{"B2B at exactly 30kg stays cargo", orderShape{company: "X", weight: intPtr(30000)}, kernel.ServiceFukuyamaCargo, "B2B注文 → 福山通運カーゴ便"},
		{"B2B size 160 goes pallet", orderShape{company: "X", size: intPtr(160)}, kernel.ServiceFukuyamaPallet, "B2B大型貨物 → 福山通運パレット便"},
		{"B2B beats COD", orderShape{company: "X", payment: order.PaymentCOD}, kernel.ServiceFukuyamaCargo, "B2B注文 → 福山通運カーゴ便"},
		{"COD at exactly 2kg goes compact", orderShape{payment: order.PaymentCOD, weight: intPtr(2000)}, kernel.ServiceYamatoCompact, "代引き小型 → ヤマト宅急便コンパクト"},
		{"COD size 80 goes Sagawa", orderShape{payment: order.PaymentCOD, weight: intPtr(1000), size: intPtr(80)}, kernel.ServiceSagawaHikyaku, "代引き → 佐川飛脚宅配便"},
		{"COD heavy goes Sagawa", orderShape{payment: order.PaymentCOD, weight: intPtr(2001)}, kernel.ServiceSagawaHikyaku, "代引き → 佐川飛脚宅配便"},
		{"Kagoshima goes Yu-Pack", orderShape{prefecture: "鹿児島県"}, kernel.ServiceJapanPostYuPack, "離島・僻地 → 日本郵便ゆうパック"},
		{"Nagasaki small parcel still goes Yu-Pack", orderShape{prefecture: "長崎県", weight: intPtr(100)}, kernel.ServiceJapanPostYuPack, "離島・僻地 → 日本郵便ゆうパック"},
		{"exactly 500g goes Click-Post", orderShape{weight: intPtr(500)}, kernel.ServiceJapanPostClickPost, "超小型 → クリックポスト"},
		{"default weight item is Click-Post", orderShape{}, kernel.ServiceJapanPostClickPost, "超小型 → クリックポスト"},
		{"501g goes Nekopos", orderShape{weight: intPtr(501)}, kernel.ServiceYamatoNekopos, "小型 → ヤマトネコポス"},
		{"exactly 1kg goes Nekopos", orderShape{weight: intPtr(1000)}, kernel.ServiceYamatoNekopos, "小型 → ヤマトネコポス"},
		{"light but size 80 skips small parcel", orderShape{weight: intPtr(300), size: intPtr(80)}, kernel.ServiceSagawaHikyaku, "デフォルト → 佐川飛脚宅配便"},
		{"over 20kg goes large", orderShape{weight: intPtr(20001)}, kernel.ServiceSagawaLarge, "大型貨物 → 佐川ラージサイズ宅配便"},
		{"size 140 goes large", orderShape{weight: intPtr(3000), size: intPtr(140)}, kernel.ServiceSagawaLarge, "大型貨物 → 佐川ラージサイズ宅配便"},
		{"large beats time slot", orderShape{weight: intPtr(25000), slot: kernel.TimeSlot1820}, kernel.ServiceSagawaLarge, "大型貨物 → 佐川ラージサイズ宅配便"},
		{"time slot goes Takkyubin", orderShape{weight: intPtr(3000), slot: kernel.TimeSlotMorning}, kernel.ServiceYamatoTakkyubin, "時間指定 → ヤマト宅急便"},
		{"anytime slot is no request", orderShape{weight: intPtr(3000), slot: kernel.TimeSlotAnytime}, kernel.ServiceSagawaHikyaku, "デフォルト → 佐川飛脚宅配便"},
		{"small parcel beats time slot", orderShape{weight: intPtr(800), slot: kernel.TimeSlot1921}, kernel.ServiceYamatoNekopos, "小型 → ヤマトネコポス"},
		{"quantity multiplies weight", orderShape{weight: intPtr(400), quantity: 3}, kernel.ServiceSagawaHikyaku, "デフォルト → 佐川飛脚宅配便"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := router.Decide(buildOrder(t, tt.shape))

			require.NoError(t, err)
			assert.Equal(t, tt.service, d.ServiceType)
			assert.Equal(t, tt.service.Carrier(), d.Carrier)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}

func TestCarrierRouter_CODToRemotePrefectureUsesCODRule(t *testing.T) {
	router := services.NewCarrierRouter(services.DefaultRoutingThresholds())
	o := buildOrder(t, orderShape{prefecture: "沖縄県", payment: order.PaymentCOD, weight: intPtr(5000)})

	d, err := router.Decide(o)

	require.NoError(t, err)
	assert.Equal(t, routing.RuleCOD, d.Rule)
	assert.Equal(t, kernel.CarrierSagawa, d.Carrier)
	assert.NotEqual(t, kernel.CarrierJapanPost, d.Carrier)
}

func TestCarrierRouter_IsDeterministic(t *testing.T) {
	router := services.NewCarrierRouter(services.DefaultRoutingThresholds())
	o := buildOrder(t, orderShape{weight: intPtr(3000), slot: kernel.TimeSlot1416})

	first, err := router.Decide(o)
	require.NoError(t, err)

	for range 50 {
		next, err := router.Decide(o)
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestCarrierRouter_InjectedThresholds(t *testing.T) {
	thresholds := services.DefaultRoutingThresholds()
	thresholds.Defaults = order.Defaults{WeightGrams: 900, SizeCode: kernel.Size60}
	thresholds.ClickPostCost = 200
	thresholds.RemotePrefectures = []string{"北海道"}
	router := services.NewCarrierRouter(thresholds)

	d, err := router.Decide(buildOrder(t, orderShape{}))
	require.NoError(t, err)
	assert.Equal(t, kernel.ServiceYamatoNekopos, d.ServiceType)

	d, err = router.Decide(buildOrder(t, orderShape{weight: intPtr(100)}))
	require.NoError(t, err)
	require.NotNil(t, d.EstimatedCost)
	assert.Equal(t, 200, *d.EstimatedCost)

	d, err = router.Decide(buildOrder(t, orderShape{prefecture: "沖縄県", weight: intPtr(3000)}))
	require.NoError(t, err)
	assert.Equal(t, kernel.ServiceSagawaHikyaku, d.ServiceType)
}

func TestCarrierRouter_RejectsUnconstructedOrder(t *testing.T) {
	router := services.NewCarrierRouter(services.DefaultRoutingThresholds())

	_, err := router.Decide(&order.Order{})

	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}

func TestCarrierRouter_DecideBatch(t *testing.T) {
	router := services.NewCarrierRouter(services.DefaultRoutingThresholds())
	a := buildOrder(t, orderShape{company: "X"})
	b := buildOrder(t, orderShape{payment: order.PaymentCOD})
	c := buildOrder(t, orderShape{weight: intPtr(3000)})

	decisions, err := router.DecideBatch([]*order.Order{a, b, a, c})

	require.NoError(t, err)
	require.Len(t, decisions, 3)
	assert.True(t, decisions[0].OrderID.IsEqual(a.ID()))
	assert.True(t, decisions[1].OrderID.IsEqual(b.ID()))
	assert.True(t, decisions[2].OrderID.IsEqual(c.ID()))

	empty, err := router.DecideBatch(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCarrierRouter_GroupByCarrier(t *testing.T) {
	router := services.NewCarrierRouter(services.DefaultRoutingThresholds())
	s1 := buildOrder(t, orderShape{weight: intPtr(3000)})
	y1 := buildOrder(t, orderShape{payment: order.PaymentCOD})
	s2 := buildOrder(t, orderShape{weight: intPtr(4000)})

	groups, err := router.GroupByCarrier([]*order.Order{s1, y1, s2})

	require.NoError(t, err)
	assert.Len(t, groups, 2)
	require.Len(t, groups[kernel.CarrierSagawa], 2)
	assert.Same(t, s1, groups[kernel.CarrierSagawa][0])
	assert.Same(t, s2, groups[kernel.CarrierSagawa][1])
	assert.Equal(t, []*order.Order{y1}, groups[kernel.CarrierYamato])
	assert.NotContains(t, groups, kernel.CarrierFukuyama)
}
