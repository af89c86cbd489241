package commands

import (
	"context"
	"time"
)

// AssignTrackingNumberCommandHandler moves a PENDING shipment to LABEL_PRINTED and marks its
// order SHIPPED with the same tracking number, in one transaction.
type AssignTrackingNumberCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewAssignTrackingNumberCommandHandler creates the handler. now stamps the shipped time.
func NewAssignTrackingNumberCommandHandler(uowFactory UoWFactory, now func() time.Time) AssignTrackingNumberCommandHandler {
	if now == nil {
		now = time.Now
	}
	return AssignTrackingNumberCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h AssignTrackingNumberCommandHandler) Handle(ctx context.Context, command AssignTrackingNumberCommand) error {
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

	orderRepo := uow.OrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	s, err := shipmentRepo.Get(ctx, command.ShipmentID())
	if err != nil {
		return err
	}

	o, err := orderRepo.Get(ctx, s.OrderID())
	if err != nil {
		return err
	}

	at := h.now().UTC()
	if err = s.AssignTrackingNumber(command.TrackingNumber(), at); err != nil {
		return err
	}
	if err = o.Ship(command.TrackingNumber(), at); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
