package queries

import (
	"errors"
	"math"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	DefaultShipmentsPageSize = 20
	MaxShipmentsPageSize     = 100
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery lists shipments, newest first. Empty filters match everything; several
// values in one filter are alternatives.
type GetShipmentsQuery struct {
	statuses []shipment.Status
	carriers []kernel.Carrier
	page     int
	limit    int
	guard    guard.ConstructorGuard
}

// NewGetShipmentsQuery parses the filters. A zero page means the first page, a zero limit
// means DefaultShipmentsPageSize.
func NewGetShipmentsQuery(statuses, carriers []string, page, limit int) (GetShipmentsQuery, error) {
	var errList []error

	parsedStatuses := make([]shipment.Status, 0, len(statuses))
	for _, s := range statuses {
		status, err := shipment.ParseStatus(s)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		parsedStatuses = append(parsedStatuses, status)
	}

	parsedCarriers := make([]kernel.Carrier, 0, len(carriers))
	for _, c := range carriers {
		carrier, err := kernel.ParseCarrier(c)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		parsedCarriers = append(parsedCarriers, carrier)
	}

	if page == 0 {
		page = 1
	}
	if page < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt))
	}

	if limit == 0 {
		limit = DefaultShipmentsPageSize
	}
	if limit < 0 || limit > MaxShipmentsPageSize {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxShipmentsPageSize))
	}

	if err := errors.Join(errList...); err != nil {
		return GetShipmentsQuery{}, err
	}

	return GetShipmentsQuery{
		statuses: parsedStatuses,
		carriers: parsedCarriers,
		page:     page,
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentsQuery) Statuses() []shipment.Status {
	return append([]shipment.Status(nil), q.statuses...)
}

func (q GetShipmentsQuery) Carriers() []kernel.Carrier {
	return append([]kernel.Carrier(nil), q.carriers...)
}

func (q GetShipmentsQuery) Page() int {
	return q.page
}

func (q GetShipmentsQuery) Limit() int {
	return q.limit
}

func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// ShipmentSummary is one listed shipment with the order fields operators scan for.
type ShipmentSummary struct {
	ID                 kernel.UUID
	OrderID            kernel.UUID
	ExternalOrderID    string
	CustomerName       string
	ShippingPrefecture string
	ShippingCity       string
	Carrier            kernel.Carrier
	ServiceType        kernel.ServiceType
	Rule               string
	Status             shipment.Status
	TrackingNumber     string
	TotalWeight        int
	TotalSize          int
	CODAmount          *int64
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	CreatedAt          time.Time
}

// Pagination describes the returned page.
type Pagination struct {
	Page            int
	Limit           int
	TotalItems      int64
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

func newPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:            page,
		Limit:           limit,
		TotalItems:      total,
		TotalPages:      totalPages,
		HasNextPage:     int64(page*limit) < total,
		HasPreviousPage: page > 1,
	}
}

type GetShipmentsQueryResponse struct {
	Items      []ShipmentSummary
	Pagination Pagination
}
