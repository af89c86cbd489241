package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates and their
// packages.
type ShipmentRepository interface {
	// Add stores a new shipment with its packages. An order has at most one shipment;
	// a second one is rejected with an InvalidStateError.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update writes back status, tracking number and timestamps.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get returns the shipment with its packages or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
