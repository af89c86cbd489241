package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
)

// AdvanceShipmentStatusCommandHandler moves a shipment one step along its lifecycle.
// DELIVERED and RETURNED are mirrored on the order in the same transaction.
type AdvanceShipmentStatusCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewAdvanceShipmentStatusCommandHandler(uowFactory UoWFactory, now func() time.Time) AdvanceShipmentStatusCommandHandler {
	if now == nil {
		now = time.Now
	}
	return AdvanceShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h AdvanceShipmentStatusCommandHandler) Handle(ctx context.Context, command AdvanceShipmentStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	s, err := shipmentRepo.Get(ctx, command.ShipmentID())
	if err != nil {
		return err
	}

	if err = s.Advance(command.Status(), h.now().UTC()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	if s.Status() == shipment.Delivered || s.Status() == shipment.Returned {
		orderRepo := uow.OrderRepository()
		o, err := orderRepo.Get(ctx, s.OrderID())
		if err != nil {
			return err
		}

		if s.Status() == shipment.Delivered {
			err = o.Deliver()
		} else {
			err = o.Return()
		}
		if err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
