package commands

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// PackageInput describes one box when the operator splits an order into several packages.
type PackageInput struct {
	WeightGrams int
	SizeCode    int
	SKUs        []string
}

// CreateShipmentCommand creates the shipment for a stored order. Carrier and service type are
// optional: without them the carrier router decides. A service type alone implies its carrier,
// a carrier alone uses the carrier's standard service.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(kernel.NewUUID(), orderID, "YAMATO", "", nil)
//	if err != nil {
//	    return err
//	}
//	s, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct {
	shipmentID  kernel.UUID
	orderID     kernel.UUID
	carrier     kernel.Carrier
	serviceType kernel.ServiceType
	packages    []PackageInput

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates identifiers and the optional manual carrier selection.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	orderID kernel.UUID,
	carrier string,
	serviceType string,
	packages []PackageInput,
) (CreateShipmentCommand, error) {
	var errList []error
	if err := shipmentID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := orderID.Validate(); err != nil {
		errList = append(errList, err)
	}

	var c kernel.Carrier
	if strings.TrimSpace(carrier) != "" {
		parsed, err := kernel.ParseCarrier(carrier)
		if err != nil {
			errList = append(errList, err)
		}
		c = parsed
	}

	var st kernel.ServiceType
	if strings.TrimSpace(serviceType) != "" {
		parsed, err := kernel.ParseServiceType(serviceType)
		if err != nil {
			errList = append(errList, err)
		}
		st = parsed
	}

	if err := errors.Join(errList...); err != nil {
		return CreateShipmentCommand{}, err
	}

	switch {
	case c == "" && st != "":
		c = st.Carrier()
	case c != "" && st == "":
		st, _ = kernel.StandardService(c)
	case c != "" && st != "":
		if err := st.ValidateFor(c); err != nil {
			return CreateShipmentCommand{}, err
		}
	}

	for i, p := range packages {
		if p.WeightGrams <= 0 {
			return CreateShipmentCommand{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("packages[%d].weightGrams", i), fmt.Errorf("%d is not greater than 0", p.WeightGrams))
		}
		if _, err := kernel.NewSizeCode(p.SizeCode); err != nil {
			return CreateShipmentCommand{}, err
		}
	}

	return CreateShipmentCommand{
		shipmentID:  shipmentID,
		orderID:     orderID,
		carrier:     c,
		serviceType: st,
		packages:    packages,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Carrier is empty when the router should decide.
func (c CreateShipmentCommand) Carrier() kernel.Carrier {
	return c.carrier
}

func (c CreateShipmentCommand) ServiceType() kernel.ServiceType {
	return c.serviceType
}

// IsManual reports whether the operator chose the carrier.
func (c CreateShipmentCommand) IsManual() bool {
	return c.carrier != ""
}

func (c CreateShipmentCommand) Packages() []PackageInput {
	return c.packages
}
