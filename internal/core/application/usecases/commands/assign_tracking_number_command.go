package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAssignTrackingNumberCommandIsNotConstructed = errors.New(
	"AssignTrackingNumberCommand must be created via NewAssignTrackingNumberCommand constructor",
)

// AssignTrackingNumberCommand records the tracking number printed on a shipment's label.
type AssignTrackingNumberCommand struct {
	shipmentID     kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewAssignTrackingNumberCommand(shipmentID kernel.UUID, trackingNumber string) (AssignTrackingNumberCommand, error) {
	var errList []error
	if err := shipmentID.Validate(); err != nil {
		errList = append(errList, err)
	}
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("trackingNumber"))
	}
	if err := errors.Join(errList...); err != nil {
		return AssignTrackingNumberCommand{}, err
	}

	return AssignTrackingNumberCommand{
		shipmentID:     shipmentID,
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AssignTrackingNumberCommand) Validate() error {
	return c.guard.Validate(ErrAssignTrackingNumberCommandIsNotConstructed)
}

func (c AssignTrackingNumberCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c AssignTrackingNumberCommand) TrackingNumber() string {
	return c.trackingNumber
}
