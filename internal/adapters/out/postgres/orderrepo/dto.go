// Package orderrepo persists order snapshots: the order header in "orders" and its line items
// in "order_items".
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the "orders" row. Status is stored as the order.Status ordinal.
type OrderDTO struct {
	ID              uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ExternalOrderID string       `gorm:"not null;index"`
	Recipient       RecipientDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Address         AddressDTO   `gorm:"embedded;embeddedPrefix:shipping_"`
	DeliveryDate    *time.Time   `gorm:"type:date"`
	DeliveryTime    string       `gorm:"column:delivery_time_slot"`
	PaymentMethod   string       `gorm:"not null"`
	TotalAmount     int64        `gorm:"not null"`
	Status          int          `gorm:"not null;index"`
	AssignedCarrier string       `gorm:"index"`
	TrackingNumber  string
	ShippedAt       *time.Time
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// RecipientDTO is embedded with the customer_ prefix.
type RecipientDTO struct {
	Name        string `gorm:"not null"`
	Phone       string `gorm:"not null"`
	CompanyName string
}

// AddressDTO is embedded with the shipping_ prefix.
type AddressDTO struct {
	ZipCode    string `gorm:"not null"`
	Prefecture string `gorm:"not null"`
	City       string `gorm:"not null"`
	Address1   string `gorm:"not null"`
	Address2   string
}

// OrderItemDTO is an "order_items" row. Position keeps the line order.
type OrderItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	Name        string
	SKU         string `gorm:"column:sku"`
	Quantity    int    `gorm:"not null"`
	WeightGrams *int
	SizeCode    *int
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	itemDTOs := make([]OrderItemDTO, len(items))
	for i, item := range items {
		var size *int
		if s := item.SizeCode(); s != nil {
			v := s.Int()
			size = &v
		}
		itemDTOs[i] = OrderItemDTO{
			ID:          uuid.New(),
			OrderID:     o.ID().Bytes(),
			Position:    i,
			Name:        item.Name(),
			SKU:         item.SKU(),
			Quantity:    item.Quantity(),
			WeightGrams: item.WeightGrams(),
			SizeCode:    size,
		}
	}

	recipient := o.Recipient()
	address := o.Address()
	return OrderDTO{
		ID:              o.ID().Bytes(),
		ExternalOrderID: o.ExternalOrderID(),
		Recipient: RecipientDTO{
			Name:        recipient.Name,
			Phone:       recipient.Phone,
			CompanyName: recipient.CompanyName,
		},
		Address: AddressDTO{
			ZipCode:    address.ZipCode,
			Prefecture: address.Prefecture,
			City:       address.City,
			Address1:   address.Line1,
			Address2:   address.Line2,
		},
		DeliveryDate:    o.Delivery().Date,
		DeliveryTime:    string(o.Delivery().TimeSlot),
		PaymentMethod:   string(o.Payment().Method),
		TotalAmount:     o.Payment().TotalAmount,
		Status:          int(o.Status()),
		AssignedCarrier: string(o.AssignedCarrier()),
		TrackingNumber:  o.TrackingNumber(),
		ShippedAt:       o.ShippedAt(),
		Items:           itemDTOs,
	}
}

// fulfilmentColumns are the only columns Update writes.
func fulfilmentColumns(o *order.Order) map[string]any {
	return map[string]any{
		"status":           int(o.Status()),
		"assigned_carrier": string(o.AssignedCarrier()),
		"tracking_number":  o.TrackingNumber(),
		"shipped_at":       o.ShippedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipient, err := order.NewRecipient(dto.Recipient.Name, dto.Recipient.Phone, dto.Recipient.CompanyName)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(
		dto.Address.ZipCode, dto.Address.Prefecture, dto.Address.City, dto.Address.Address1, dto.Address.Address2)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.Name, itemDTO.SKU, itemDTO.Quantity, itemDTO.WeightGrams, itemDTO.SizeCode)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.ExternalOrderID,
		recipient,
		address,
		order.Payment{Method: order.PaymentMethod(dto.PaymentMethod), TotalAmount: dto.TotalAmount},
		order.Delivery{Date: dto.DeliveryDate, TimeSlot: kernel.TimeSlot(dto.DeliveryTime)},
		items,
		order.Fulfilment{
			Status:          order.Status(dto.Status),
			AssignedCarrier: kernel.Carrier(dto.AssignedCarrier),
			TrackingNumber:  dto.TrackingNumber,
			ShippedAt:       dto.ShippedAt,
		},
	)
}
