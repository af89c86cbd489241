package manifest

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipper"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/sjis"

	"golang.org/x/sync/errgroup"
)

// ContentType is the media type of every manifest.
const ContentType = "text/csv; charset=" + sjis.Charset

// DefaultWorkers bounds row mapping concurrency when no limit is configured.
const DefaultWorkers = 4

// Manifest is a rendered import file.
type Manifest struct {
	Carrier     kernel.Carrier
	Filename    string
	ContentType string
	Content     []byte
	// RowCount excludes the header.
	RowCount int
	// DegradedRows counts rows in which at least one character had no Shift_JIS equivalent
	// and was substituted.
	DegradedRows int
}

// Generator renders orders into carrier manifests. It is safe for concurrent use.
//
// Example usage:
//
//	g := manifest.NewGenerator(manifest.DefaultRegistry(), sjis.NewEncoder(), time.Now, 8)
//	m, err := g.Generate(ctx, kernel.CarrierYamato, orders, profile)
//	if err != nil {
//	    return err
//	}
//	if m.DegradedRows > 0 {
//	    logger.Warn("manifest contains substituted characters", "rows", m.DegradedRows)
//	}
type Generator struct {
	registry *Registry
	encoder  sjis.Encoder
	now      func() time.Time
	workers  int
}

// NewGenerator creates a Generator. now supplies the file name date; workers bounds the number
// of rows mapped concurrently (DefaultWorkers when not positive).
func NewGenerator(registry *Registry, encoder sjis.Encoder, now func() time.Time, workers int) *Generator {
	if now == nil {
		now = time.Now
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Generator{registry: registry, encoder: encoder, now: now, workers: workers}
}

type encodedRow struct {
	content  []byte
	degraded bool
}

// Generate renders orders, in the given order, into the manifest of carrier.
//
// Returns:
//   - ObjectNotFoundError when orders is empty
//   - UnsupportedCarrierError when no mapper is registered for carrier
//   - a validation error for an incomplete shipper profile or an unconstructed order
//   - ctx.Err() when the context is cancelled while rows are being mapped
//
// Unmappable characters never fail the export; they are counted in Manifest.DegradedRows.
func (g *Generator) Generate(
	ctx context.Context,
	carrier kernel.Carrier,
	orders []*order.Order,
	from shipper.Profile,
) (Manifest, error) {
	if len(orders) == 0 {
		return Manifest{}, errs.NewObjectNotFoundErrorWithCause("orders", "[]",
			fmt.Errorf("no orders to export for %s", carrier))
	}

	mapper, err := g.registry.Get(carrier)
	if err != nil {
		return Manifest{}, err
	}

	if err = from.Validate(); err != nil {
		return Manifest{}, err
	}
	for _, o := range orders {
		if err = o.Validate(); err != nil {
			return Manifest{}, err
		}
	}

	rows := make([]encodedRow, len(orders))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(g.workers)
	for i, o := range orders {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result := g.encoder.Encode(formatRecord(mapper.MapRow(o, from).Values()))
			rows[i] = encodedRow{content: result.Bytes, degraded: result.Degraded()}
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return Manifest{}, err
	}

	var buf bytes.Buffer
	buf.Write(g.encoder.Encode(formatRecord(mapper.Columns())).Bytes)

	degraded := 0
	for _, row := range rows {
		buf.Write(row.content)
		if row.degraded {
			degraded++
		}
	}

	return Manifest{
		Carrier:      carrier,
		Filename:     Filename(carrier, g.now()),
		ContentType:  ContentType,
		Content:      buf.Bytes(),
		RowCount:     len(rows),
		DegradedRows: degraded,
	}, nil
}

// Filename is "{carrier slug}_{YYYY-MM-DD}.csv", dated in UTC.
func Filename(carrier kernel.Carrier, at time.Time) string {
	return fmt.Sprintf("%s_%s.csv", carrier.Slug(), at.UTC().Format(time.DateOnly))
}
