package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrGetCarrierStatsQueryIsNotConstructed = errors.New(
	"GetCarrierStatsQuery must be created via NewGetCarrierStatsQuery constructor",
)

// GetCarrierStatsQuery counts shipments per carrier and per carrier and status.
type GetCarrierStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCarrierStatsQuery() GetCarrierStatsQuery {
	return GetCarrierStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCarrierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierStatsQueryIsNotConstructed)
}

// CarrierStatusCount is the number of shipments of one carrier in one status.
type CarrierStatusCount struct {
	Carrier kernel.Carrier
	Status  shipment.Status
	Count   int64
}

// CarrierCount is the number of shipments of one carrier.
type CarrierCount struct {
	Carrier kernel.Carrier
	Count   int64
}

// GetCarrierStatsQueryResponse lists carriers alphabetically and, within a carrier, statuses
// in workflow order. Carriers without shipments are omitted.
type GetCarrierStatsQueryResponse struct {
	ByCarrier          []CarrierCount
	ByCarrierAndStatus []CarrierStatusCount
	Total              int64
}
