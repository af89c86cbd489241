package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/routing"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// CreateShipmentCommandHandler creates a shipment for an order and moves the order into
// processing.
//
// The order must be CONFIRMED, PROCESSING or PACKED. The shipment insert and the order update
// are committed together; if either fails neither is stored.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	router     services.CarrierRouter
}

// NewCreateShipmentCommandHandler creates the handler. The router also supplies the default
// weight and size for packages built from the order.
func NewCreateShipmentCommandHandler(uowFactory UoWFactory, router services.CarrierRouter) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		router:     router,
	}
}

// Handle returns the created shipment.
//
// Errors:
//   - ObjectNotFoundError when the order does not exist
//   - InvalidStateError naming the order status when the order cannot be shipped, or when
//     the order already has a shipment
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, command CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ValidateShippable(); err != nil {
		return nil, err
	}

	decision := routing.Manual(o.ID(), command.Carrier(), command.ServiceType())
	if !command.IsManual() {
		decision, err = h.router.Decide(o)
		if err != nil {
			return nil, err
		}
	}

	packages := make([]shipment.Package, 0, len(command.Packages()))
	for _, input := range command.Packages() {
		p, err := shipment.NewPackage(kernel.NewUUID(), input.WeightGrams, kernel.SizeCode(input.SizeCode), input.SKUs)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}

	s, err := shipment.NewShipment(command.ShipmentID(), o, decision, packages, h.router.Thresholds().Defaults)
	if err != nil {
		return nil, err
	}

	if err = o.StartProcessing(s.Carrier()); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Add(ctx, s); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
