package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrExportManifestQueryIsNotConstructed = errors.New(
	"ExportManifestQuery must be created via NewExportManifestQuery constructor",
)

// ExportManifestQuery renders stored orders into one carrier's import file.
type ExportManifestQuery struct {
	carrier  kernel.Carrier
	orderIDs []kernel.UUID
	guard    guard.ConstructorGuard
}

// NewExportManifestQuery parses carrier and requires at least one order id.
func NewExportManifestQuery(carrier string, orderIDs []kernel.UUID) (ExportManifestQuery, error) {
	var errList []error

	c, err := kernel.ParseCarrier(carrier)
	if err != nil {
		errList = append(errList, err)
	}
	if len(orderIDs) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("orderIds"))
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			errList = append(errList, err)
			break
		}
	}
	if err := errors.Join(errList...); err != nil {
		return ExportManifestQuery{}, err
	}

	return ExportManifestQuery{
		carrier:  c,
		orderIDs: append([]kernel.UUID(nil), orderIDs...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ExportManifestQuery) Carrier() kernel.Carrier {
	return q.carrier
}

func (q ExportManifestQuery) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), q.orderIDs...)
}

func (q ExportManifestQuery) Validate() error {
	return q.guard.Validate(ErrExportManifestQueryIsNotConstructed)
}
