package ports

import (
	"context"

	"logistics/internal/core/domain/model/shipper"
)

// ShipperProfileProvider supplies the sender printed on labels.
type ShipperProfileProvider interface {
	Get(ctx context.Context) (shipper.Profile, error)
}
