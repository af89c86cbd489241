package services

import (
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/routing"
)

// RoutingThresholds are the limits the carrier router compares orders against. Weights are in
// grams, costs in yen. Comparisons are "greater than" for weight caps of large services and
// "at most" for small-parcel eligibility, exactly as documented on each field.
type RoutingThresholds struct {
	// Defaults resolve line items without catalogue weight or size.
	Defaults order.Defaults

	// RemotePrefectures are served by Japan Post only (離島・僻地).
	RemotePrefectures []string

	// B2BPalletWeight: B2B orders heavier than this go on a Fukuyama pallet.
	B2BPalletWeight int
	// B2BPalletSize: B2B orders with an item of at least this size go on a Fukuyama pallet.
	B2BPalletSize kernel.SizeCode

	// CODCompactWeight and CODCompactSize: COD orders within both go Yamato Compact.
	CODCompactWeight int
	CODCompactSize   kernel.SizeCode

	// SmallParcelWeight and SmallParcelSize: orders within both go by mail-box services.
	SmallParcelWeight int
	SmallParcelSize   kernel.SizeCode
	// ClickPostWeight: small parcels up to this weight go Click-Post, heavier ones Nekopos.
	ClickPostWeight int
	ClickPostCost   int
	NekoposCost     int

	// OversizedWeight: orders heavier than this go Sagawa large-size.
	OversizedWeight int
	// OversizedSize: orders with an item of at least this size go Sagawa large-size.
	OversizedSize kernel.SizeCode
}

// DefaultRoutingThresholds returns the production thresholds.
func DefaultRoutingThresholds() RoutingThresholds {
	return RoutingThresholds{
		Defaults:          order.DefaultDefaults(),
		RemotePrefectures: []string{"沖縄県", "鹿児島県", "長崎県"},
		B2BPalletWeight:   30000,
		B2BPalletSize:     kernel.Size160,
		CODCompactWeight:  2000,
		CODCompactSize:    kernel.Size60,
		SmallParcelWeight: 1000,
		SmallParcelSize:   kernel.Size60,
		ClickPostWeight:   500,
		ClickPostCost:     185,
		NekoposCost:       385,
		OversizedWeight:   20000,
		OversizedSize:     kernel.Size140,
	}
}

// CarrierRouter selects the carrier and service tier for an order. It is stateless apart from
// its thresholds and safe for concurrent use.
//
// Rules are evaluated in order and the first match wins:
//  1. B2B (company name present): Fukuyama pallet when heavy or large, otherwise cargo
//  2. Cash on delivery: Yamato Compact when small and light, otherwise Sagawa Hikyaku.
//     Japan Post is never chosen for COD, even for remote prefectures.
//  3. Remote prefecture: Japan Post Yu-Pack
//  4. Small parcel: Click-Post up to the Click-Post weight, otherwise Yamato Nekopos
//  5. Oversized: Sagawa large-size
//  6. Specific delivery time slot requested: Yamato Takkyubin
//  7. Otherwise Sagawa Hikyaku
//
// Example usage:
//
//	router := services.NewCarrierRouter(services.DefaultRoutingThresholds())
//	decision, err := router.Decide(o)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(decision.Carrier, decision.Reason)
type CarrierRouter struct {
	thresholds RoutingThresholds
}

// NewCarrierRouter creates a router using the given thresholds.
func NewCarrierRouter(thresholds RoutingThresholds) CarrierRouter {
	return CarrierRouter{thresholds: thresholds}
}

// Thresholds returns the thresholds the router was built with.
func (r CarrierRouter) Thresholds() RoutingThresholds {
	return r.thresholds
}

// Decide returns the routing decision for o. The only failure is an order that was not built
// by its constructor; missing weights and sizes fall back to the configured defaults.
func (r CarrierRouter) Decide(o *order.Order) (routing.Decision, error) {
	if err := o.Validate(); err != nil {
		return routing.Decision{}, err
	}

	t := r.thresholds
	weight := o.TotalWeight(t.Defaults)
	size := o.MaxSizeCode(t.Defaults)

	decide := func(rule routing.Rule, service kernel.ServiceType, reason string, cost *int) routing.Decision {
		return routing.Decision{
			OrderID:       o.ID(),
			Carrier:       service.Carrier(),
			ServiceType:   service,
			Rule:          rule,
			Reason:        reason,
			EstimatedCost: cost,
		}
	}

	if o.IsBusiness() {
		if weight > t.B2BPalletWeight || size >= t.B2BPalletSize {
			return decide(routing.RuleB2B, kernel.ServiceFukuyamaPallet, "B2B大型貨物 → 福山通運パレット便", nil), nil
		}
		return decide(routing.RuleB2B, kernel.ServiceFukuyamaCargo, "B2B注文 → 福山通運カーゴ便", nil), nil
	}

	if o.IsCOD() {
		if weight <= t.CODCompactWeight && size <= t.CODCompactSize {
			return decide(routing.RuleCOD, kernel.ServiceYamatoCompact, "代引き小型 → ヤマト宅急便コンパクト", nil), nil
		}
		return decide(routing.RuleCOD, kernel.ServiceSagawaHikyaku, "代引き → 佐川飛脚宅配便", nil), nil
	}

	if slices.Contains(t.RemotePrefectures, o.Address().Prefecture) {
		return decide(routing.RuleRemoteArea, kernel.ServiceJapanPostYuPack, "離島・僻地 → 日本郵便ゆうパック", nil), nil
	}

	if weight <= t.SmallParcelWeight && size <= t.SmallParcelSize {
		if weight <= t.ClickPostWeight {
			cost := t.ClickPostCost
			return decide(routing.RuleSmallParcel, kernel.ServiceJapanPostClickPost, "超小型 → クリックポスト", &cost), nil
		}
		cost := t.NekoposCost
		return decide(routing.RuleSmallParcel, kernel.ServiceYamatoNekopos, "小型 → ヤマトネコポス", &cost), nil
	}

	if weight > t.OversizedWeight || size >= t.OversizedSize {
		return decide(routing.RuleOversized, kernel.ServiceSagawaLarge, "大型貨物 → 佐川ラージサイズ宅配便", nil), nil
	}

	if o.Delivery().TimeSlot.IsRequested() {
		return decide(routing.RuleTimeSlot, kernel.ServiceYamatoTakkyubin, "時間指定 → ヤマト宅急便", nil), nil
	}

	return decide(routing.RuleDefault, kernel.ServiceSagawaHikyaku, "デフォルト → 佐川飛脚宅配便", nil), nil
}

// DecideBatch returns one decision per distinct order, in input order. An order id seen
// before is skipped.
func (r CarrierRouter) DecideBatch(orders []*order.Order) ([]routing.Decision, error) {
	decisions := make([]routing.Decision, 0, len(orders))
	seen := make(map[kernel.UUID]struct{}, len(orders))

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[o.ID()]; ok {
			continue
		}
		seen[o.ID()] = struct{}{}

		decision, err := r.Decide(o)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, decision)
	}

	return decisions, nil
}

// GroupByCarrier buckets orders by their decided carrier, keeping input order inside each
// bucket. Carriers with no orders are absent from the map.
func (r CarrierRouter) GroupByCarrier(orders []*order.Order) (map[kernel.Carrier][]*order.Order, error) {
	decisions, err := r.DecideBatch(orders)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		if _, ok := byID[o.ID()]; !ok {
			byID[o.ID()] = o
		}
	}

	groups := make(map[kernel.Carrier][]*order.Order)
	for _, d := range decisions {
		groups[d.Carrier] = append(groups[d.Carrier], byID[d.OrderID])
	}
	return groups, nil
}
