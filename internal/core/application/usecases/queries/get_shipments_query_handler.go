package queries

import (
	"context"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentsQueryHandler reads the shipment list straight from the database.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

func (h GetShipmentsQueryHandler) Handle(ctx context.Context, query GetShipmentsQuery) (GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	where, args := shipmentFilter(query)

	var total int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM shipments s`+where, args...).
		Scan(&total).Error
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.order_id,
			o.external_order_id,
			o.customer_name,
			o.shipping_prefecture,
			o.shipping_city,
			s.carrier,
			s.service_type,
			s.rule,
			s.status,
			s.tracking_number,
			s.total_weight,
			s.total_size,
			s.cod_amount,
			s.shipped_at,
			s.delivered_at,
			s.created_at
		FROM shipments s
		LEFT JOIN orders o ON o.id = s.order_id`+where+`
		ORDER BY s.created_at DESC, s.id
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset)...).Rows()
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]ShipmentSummary, 0, query.Limit())
	for rows.Next() {
		var item ShipmentSummary
		var id, orderID uuid.UUID
		var externalOrderID, customerName, prefecture, city *string
		var carrier, serviceType string
		var status int

		err = rows.Scan(
			&id,
			&orderID,
			&externalOrderID,
			&customerName,
			&prefecture,
			&city,
			&carrier,
			&serviceType,
			&item.Rule,
			&status,
			&item.TrackingNumber,
			&item.TotalWeight,
			&item.TotalSize,
			&item.CODAmount,
			&item.ShippedAt,
			&item.DeliveredAt,
			&item.CreatedAt,
		)
		if err != nil {
			return GetShipmentsQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetShipmentsQueryResponse{}, err
		}
		if item.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return GetShipmentsQueryResponse{}, err
		}
		item.ExternalOrderID = deref(externalOrderID)
		item.CustomerName = deref(customerName)
		item.ShippingPrefecture = deref(prefecture)
		item.ShippingCity = deref(city)
		item.Carrier = kernel.Carrier(carrier)
		item.ServiceType = kernel.ServiceType(serviceType)
		item.Status = shipment.Status(status)

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	return GetShipmentsQueryResponse{
		Items:      items,
		Pagination: newPagination(query.Page(), query.Limit(), total),
	}, nil
}

func shipmentFilter(query GetShipmentsQuery) (string, []any) {
	var conditions []string
	var args []any

	if statuses := query.Statuses(); len(statuses) > 0 {
		values := make([]int, len(statuses))
		for i, s := range statuses {
			values[i] = int(s)
		}
		conditions = append(conditions, "s.status IN ?")
		args = append(args, values)
	}

	if carriers := query.Carriers(); len(carriers) > 0 {
		values := make([]string, len(carriers))
		for i, c := range carriers {
			values[i] = string(c)
		}
		conditions = append(conditions, "s.carrier IN ?")
		args = append(args, values)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
