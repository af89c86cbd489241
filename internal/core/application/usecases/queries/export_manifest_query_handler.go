package queries

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/services/manifest"
	"logistics/internal/core/ports"
)

// ExportManifestQueryHandler loads orders and the shipper profile and renders the manifest.
// Rows with substituted characters are logged as a warning; they never fail the export.
type ExportManifestQueryHandler struct {
	orders    OrderReader
	shippers  ports.ShipperProfileProvider
	generator *manifest.Generator
	logger    *slog.Logger
}

func NewExportManifestQueryHandler(
	orders OrderReader,
	shippers ports.ShipperProfileProvider,
	generator *manifest.Generator,
	logger *slog.Logger,
) ExportManifestQueryHandler {
	return ExportManifestQueryHandler{
		orders:    orders,
		shippers:  shippers,
		generator: generator,
		logger:    logger.With("component", "ExportManifestQueryHandler"),
	}
}

func (h ExportManifestQueryHandler) Handle(ctx context.Context, query ExportManifestQuery) (manifest.Manifest, error) {
	if err := query.Validate(); err != nil {
		return manifest.Manifest{}, err
	}

	orders, err := h.orders.GetMany(ctx, query.OrderIDs())
	if err != nil {
		return manifest.Manifest{}, err
	}

	profile, err := h.shippers.Get(ctx)
	if err != nil {
		return manifest.Manifest{}, err
	}

	m, err := h.generator.Generate(ctx, query.Carrier(), orders, profile)
	if err != nil {
		return manifest.Manifest{}, err
	}

	if m.DegradedRows > 0 {
		h.logger.WarnContext(ctx, "manifest contains characters without a Shift_JIS equivalent",
			"carrier", m.Carrier,
			"filename", m.Filename,
			"degraded_rows", m.DegradedRows,
			"rows", m.RowCount)
	}

	return m, nil
}
