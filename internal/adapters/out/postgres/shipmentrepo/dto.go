// Package shipmentrepo persists shipments in "shipments" and their packages in
// "shipment_packages". An order owns at most one shipment, enforced by a unique index.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/routing"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ShipmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Carrier          string    `gorm:"not null;index"`
	ServiceType      string    `gorm:"not null"`
	Rule             string    `gorm:"not null"`
	RoutingReason    string    `gorm:"not null"`
	EstimatedCost    *int
	TotalWeight      int        `gorm:"not null"`
	TotalSize        int        `gorm:"not null"`
	DeliveryDate     *time.Time `gorm:"type:date"`
	DeliveryTimeSlot string
	CODAmount        *int64 `gorm:"column:cod_amount"`
	Status           int    `gorm:"not null;index"`
	TrackingNumber   string
	ShippedAt        *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time    `gorm:"autoCreateTime"`
	UpdatedAt        time.Time    `gorm:"autoUpdateTime"`
	Packages         []PackageDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PackageDTO is a "shipment_packages" row.
type PackageDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position    int            `gorm:"not null"`
	WeightGrams int            `gorm:"not null"`
	SizeCode    int            `gorm:"not null"`
	SKUs        pq.StringArray `gorm:"column:skus;type:text[]"`
}

func (PackageDTO) TableName() string {
	return "shipment_packages"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	packages := s.Packages()
	packageDTOs := make([]PackageDTO, len(packages))
	for i, p := range packages {
		packageDTOs[i] = PackageDTO{
			ID:          p.ID().Bytes(),
			ShipmentID:  s.ID().Bytes(),
			Position:    i,
			WeightGrams: p.WeightGrams(),
			SizeCode:    p.SizeCode().Int(),
			SKUs:        pq.StringArray(p.SKUs()),
		}
	}

	return ShipmentDTO{
		ID:               s.ID().Bytes(),
		OrderID:          s.OrderID().Bytes(),
		Carrier:          string(s.Carrier()),
		ServiceType:      string(s.ServiceType()),
		Rule:             string(s.Rule()),
		RoutingReason:    s.RoutingReason(),
		EstimatedCost:    s.EstimatedCost(),
		TotalWeight:      s.TotalWeight(),
		TotalSize:        s.TotalSize().Int(),
		DeliveryDate:     s.Delivery().Date,
		DeliveryTimeSlot: string(s.Delivery().TimeSlot),
		CODAmount:        s.CODAmount(),
		Status:           int(s.Status()),
		TrackingNumber:   s.TrackingNumber(),
		ShippedAt:        s.ShippedAt(),
		DeliveredAt:      s.DeliveredAt(),
		Packages:         packageDTOs,
	}
}

// progressColumns are the only columns Update writes; carrier and packages never change.
func progressColumns(s *shipment.Shipment) map[string]any {
	return map[string]any{
		"status":          int(s.Status()),
		"tracking_number": s.TrackingNumber(),
		"shipped_at":      s.ShippedAt(),
		"delivered_at":    s.DeliveredAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	packages := make([]shipment.Package, 0, len(dto.Packages))
	for _, packageDTO := range dto.Packages {
		packageID, idErr := kernel.UUIDFromBytes(packageDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		size, sizeErr := kernel.NewSizeCode(packageDTO.SizeCode)
		if sizeErr != nil {
			return nil, sizeErr
		}
		p, pkgErr := shipment.NewPackage(packageID, packageDTO.WeightGrams, size, packageDTO.SKUs)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, p)
	}

	decision := routing.Decision{
		OrderID:       orderID,
		Carrier:       kernel.Carrier(dto.Carrier),
		ServiceType:   kernel.ServiceType(dto.ServiceType),
		Rule:          routing.Rule(dto.Rule),
		Reason:        dto.RoutingReason,
		EstimatedCost: dto.EstimatedCost,
	}

	return shipment.RestoreShipment(
		id,
		decision,
		packages,
		order.Delivery{Date: dto.DeliveryDate, TimeSlot: kernel.TimeSlot(dto.DeliveryTimeSlot)},
		dto.CODAmount,
		shipment.Progress{
			Status:         shipment.Status(dto.Status),
			TrackingNumber: dto.TrackingNumber,
			ShippedAt:      dto.ShippedAt,
			DeliveredAt:    dto.DeliveredAt,
		},
	)
}
