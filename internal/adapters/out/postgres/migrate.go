package postgres

import (
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Tables lists the schema tables, children after their parents.
var Tables = []string{"orders", "order_items", "shipments", "shipment_packages"}

// Migrate creates or updates every table the adapter uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.PackageDTO{},
	)
}
