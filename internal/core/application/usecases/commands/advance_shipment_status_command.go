package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrAdvanceShipmentStatusCommandIsNotConstructed = errors.New(
	"AdvanceShipmentStatusCommand must be created via NewAdvanceShipmentStatusCommand constructor",
)

// AdvanceShipmentStatusCommand reports carrier progress for a shipment, e.g. from a tracking
// feed or an operator.
type AdvanceShipmentStatusCommand struct {
	shipmentID kernel.UUID
	status     shipment.Status

	guard guard.ConstructorGuard
}

// NewAdvanceShipmentStatusCommand parses the target status name, e.g. "IN_TRANSIT".
func NewAdvanceShipmentStatusCommand(shipmentID kernel.UUID, status string) (AdvanceShipmentStatusCommand, error) {
	var errList []error
	if err := shipmentID.Validate(); err != nil {
		errList = append(errList, err)
	}
	next, err := shipment.ParseStatus(status)
	if err != nil {
		errList = append(errList, err)
	}
	if err = errors.Join(errList...); err != nil {
		return AdvanceShipmentStatusCommand{}, err
	}

	return AdvanceShipmentStatusCommand{
		shipmentID: shipmentID,
		status:     next,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentStatusCommandIsNotConstructed)
}

func (c AdvanceShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c AdvanceShipmentStatusCommand) Status() shipment.Status {
	return c.status
}
