package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderReader loads stored orders for read-only use cases.
type OrderReader interface {
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)
}
