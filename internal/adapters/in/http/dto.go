package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/routing"
	"logistics/internal/core/domain/model/shipment"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OrderIDsRequest struct {
	OrderIDs []string `json:"orderIds"`
}

type RoutingDecision struct {
	OrderID       string `json:"orderId"`
	Carrier       string `json:"carrier"`
	ServiceType   string `json:"serviceType"`
	Rule          string `json:"rule"`
	Reason        string `json:"reason"`
	EstimatedCost *int   `json:"estimatedCost,omitempty"`
}

type RoutingDecisions struct {
	Decisions []RoutingDecision `json:"decisions"`
}

type NewPackage struct {
	WeightGrams int      `json:"weightGrams"`
	SizeCode    int      `json:"sizeCode"`
	SKUs        []string `json:"skus"`
}

type NewShipment struct {
	OrderID     string       `json:"orderId"`
	Carrier     string       `json:"carrier"`
	ServiceType string       `json:"serviceType"`
	Packages    []NewPackage `json:"packages"`
}

type Package struct {
	ID          string   `json:"id"`
	WeightGrams int      `json:"weightGrams"`
	SizeCode    int      `json:"sizeCode"`
	SKUs        []string `json:"skus"`
}

type Shipment struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"orderId"`
	Carrier          string    `json:"carrier"`
	ServiceType      string    `json:"serviceType"`
	Rule             string    `json:"rule"`
	RoutingReason    string    `json:"routingReason"`
	EstimatedCost    *int      `json:"estimatedCost,omitempty"`
	Status           string    `json:"status"`
	TrackingNumber   string    `json:"trackingNumber,omitempty"`
	TotalWeight      int       `json:"totalWeight"`
	TotalSize        int       `json:"totalSize"`
	CODAmount        *int64    `json:"codAmount,omitempty"`
	DeliveryDate     string    `json:"deliveryDate,omitempty"`
	DeliveryTimeSlot string    `json:"deliveryTimeSlot,omitempty"`
	Packages         []Package `json:"packages"`
}

type TrackingNumberRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type ManifestRequest struct {
	Carrier  string   `json:"carrier"`
	OrderIDs []string `json:"orderIds"`
}

type ShipmentSummary struct {
	ID                 string     `json:"id"`
	OrderID            string     `json:"orderId"`
	ExternalOrderID    string     `json:"externalOrderId,omitempty"`
	CustomerName       string     `json:"customerName,omitempty"`
	ShippingPrefecture string     `json:"shippingPrefecture,omitempty"`
	ShippingCity       string     `json:"shippingCity,omitempty"`
	Carrier            string     `json:"carrier"`
	ServiceType        string     `json:"serviceType"`
	Rule               string     `json:"rule,omitempty"`
	Status             string     `json:"status"`
	TrackingNumber     string     `json:"trackingNumber,omitempty"`
	TotalWeight        int        `json:"totalWeight"`
	TotalSize          int        `json:"totalSize"`
	CODAmount          *int64     `json:"codAmount,omitempty"`
	ShippedAt          *time.Time `json:"shippedAt,omitempty"`
	DeliveredAt        *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type Pagination struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

type ShipmentList struct {
	Items      []ShipmentSummary `json:"items"`
	Pagination Pagination        `json:"pagination"`
}

type CarrierCount struct {
	Carrier string `json:"carrier"`
	Count   int64  `json:"count"`
}

type CarrierStatusCount struct {
	Carrier string `json:"carrier"`
	Status  string `json:"status"`
	Count   int64  `json:"count"`
}

type CarrierStats struct {
	Total              int64                `json:"total"`
	ByCarrier          []CarrierCount       `json:"byCarrier"`
	ByCarrierAndStatus []CarrierStatusCount `json:"byCarrierAndStatus"`
}

func toRoutingDecision(d routing.Decision) RoutingDecision {
	return RoutingDecision{
		OrderID:       d.OrderID.String(),
		Carrier:       d.Carrier.String(),
		ServiceType:   d.ServiceType.String(),
		Rule:          string(d.Rule),
		Reason:        d.Reason,
		EstimatedCost: d.EstimatedCost,
	}
}

func toShipment(s *shipment.Shipment) Shipment {
	packages := make([]Package, 0, len(s.Packages()))
	for _, p := range s.Packages() {
		skus := p.SKUs()
		if skus == nil {
			skus = []string{}
		}
		packages = append(packages, Package{
			ID:          p.ID().String(),
			WeightGrams: p.WeightGrams(),
			SizeCode:    p.SizeCode().Int(),
			SKUs:        skus,
		})
	}

	response := Shipment{
		ID:               s.ID().String(),
		OrderID:          s.OrderID().String(),
		Carrier:          s.Carrier().String(),
		ServiceType:      s.ServiceType().String(),
		Rule:             string(s.Rule()),
		RoutingReason:    s.RoutingReason(),
		EstimatedCost:    s.EstimatedCost(),
		Status:           s.Status().String(),
		TrackingNumber:   s.TrackingNumber(),
		TotalWeight:      s.TotalWeight(),
		TotalSize:        s.TotalSize().Int(),
		CODAmount:        s.CODAmount(),
		DeliveryTimeSlot: string(s.Delivery().TimeSlot),
		Packages:         packages,
	}
	if date := s.Delivery().Date; date != nil {
		response.DeliveryDate = date.Format(time.DateOnly)
	}
	return response
}

func toShipmentList(r queries.GetShipmentsQueryResponse) ShipmentList {
	items := make([]ShipmentSummary, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, ShipmentSummary{
			ID:                 item.ID.String(),
			OrderID:            item.OrderID.String(),
			ExternalOrderID:    item.ExternalOrderID,
			CustomerName:       item.CustomerName,
			ShippingPrefecture: item.ShippingPrefecture,
			ShippingCity:       item.ShippingCity,
			Carrier:            item.Carrier.String(),
			ServiceType:        item.ServiceType.String(),
			Rule:               item.Rule,
			Status:             item.Status.String(),
			TrackingNumber:     item.TrackingNumber,
			TotalWeight:        item.TotalWeight,
			TotalSize:          item.TotalSize,
			CODAmount:          item.CODAmount,
			ShippedAt:          item.ShippedAt,
			DeliveredAt:        item.DeliveredAt,
			CreatedAt:          item.CreatedAt,
		})
	}

	p := r.Pagination
	return ShipmentList{
		Items: items,
		Pagination: Pagination{
			Page:            p.Page,
			Limit:           p.Limit,
			TotalItems:      p.TotalItems,
			TotalPages:      p.TotalPages,
			HasNextPage:     p.HasNextPage,
			HasPreviousPage: p.HasPreviousPage,
		},
	}
}

func toCarrierStats(r queries.GetCarrierStatsQueryResponse) CarrierStats {
	stats := CarrierStats{
		Total:              r.Total,
		ByCarrier:          make([]CarrierCount, 0, len(r.ByCarrier)),
		ByCarrierAndStatus: make([]CarrierStatusCount, 0, len(r.ByCarrierAndStatus)),
	}
	for _, c := range r.ByCarrier {
		stats.ByCarrier = append(stats.ByCarrier, CarrierCount{Carrier: c.Carrier.String(), Count: c.Count})
	}
	for _, c := range r.ByCarrierAndStatus {
		stats.ByCarrierAndStatus = append(stats.ByCarrierAndStatus, CarrierStatusCount{
			Carrier: c.Carrier.String(),
			Status:  c.Status.String(),
			Count:   c.Count,
		})
	}
	return stats
}
