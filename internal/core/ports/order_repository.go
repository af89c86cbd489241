// Package ports defines the contracts between the shipping core and its infrastructure:
// repositories, the unit of work and the shipper profile source.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository gives access to the order snapshots owned by the order management
// collaborator.
type OrderRepository interface {
	// Add stores a new order. Used to seed orders handed over by the order management side.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes back the fulfilment fields only: status, assigned carrier, tracking number
	// and shipped timestamp. Every other column is left untouched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with the given id or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany returns the orders in the order of ids, with duplicates removed (first
	// occurrence wins). If any id is unknown it returns an ObjectNotFoundError listing every
	// missing id and no orders.
	//
	// Example:
	//   orders, err := repo.GetMany(ctx, []kernel.UUID{b, a, b})
	//   // orders == [b, a]
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// GetAllAwaitingShipment returns up to limit PACKED orders without an assigned carrier,
	// oldest first.
	GetAllAwaitingShipment(ctx context.Context, limit int) ([]*order.Order, error)
}
