package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

type GetCarrierStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetCarrierStatsQueryHandler(db *gorm.DB) GetCarrierStatsQueryHandler {
	return GetCarrierStatsQueryHandler{db: db}
}

// Handle groups shipments by carrier and status in one pass; the per-carrier totals are
// summed from those groups.
func (h GetCarrierStatsQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierStatsQuery,
) (GetCarrierStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCarrierStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			carrier,
			status,
			COUNT(*)
		FROM shipments
		GROUP BY carrier, status
		ORDER BY carrier, status
	`).Rows()
	if err != nil {
		return GetCarrierStatsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetCarrierStatsQueryResponse{
		ByCarrier:          make([]CarrierCount, 0),
		ByCarrierAndStatus: make([]CarrierStatusCount, 0),
	}
	for rows.Next() {
		var carrier string
		var status int
		var count int64
		if err = rows.Scan(&carrier, &status, &count); err != nil {
			return GetCarrierStatsQueryResponse{}, err
		}

		c := kernel.Carrier(carrier)
		response.ByCarrierAndStatus = append(response.ByCarrierAndStatus, CarrierStatusCount{
			Carrier: c,
			Status:  shipment.Status(status),
			Count:   count,
		})

		last := len(response.ByCarrier) - 1
		if last < 0 || response.ByCarrier[last].Carrier != c {
			response.ByCarrier = append(response.ByCarrier, CarrierCount{Carrier: c})
			last++
		}
		response.ByCarrier[last].Count += count
		response.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetCarrierStatsQueryResponse{}, err
	}

	return response, nil
}
