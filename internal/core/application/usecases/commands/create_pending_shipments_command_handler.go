package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
)

// CreatePendingShipmentsCommandHandler routes and creates shipments for every packed order
// still waiting for one. Each order gets its own transaction, so one failing order does not
// block the others.
type CreatePendingShipmentsCommandHandler struct {
	uowFactory    UoWFactory
	createHandler CreateShipmentCommandHandler
}

func NewCreatePendingShipmentsCommandHandler(
	uowFactory UoWFactory,
	createHandler CreateShipmentCommandHandler,
) CreatePendingShipmentsCommandHandler {
	return CreatePendingShipmentsCommandHandler{
		uowFactory:    uowFactory,
		createHandler: createHandler,
	}
}

// Handle returns the number of shipments created. Per-order failures are joined into the
// returned error after every order was attempted.
func (h CreatePendingShipmentsCommandHandler) Handle(ctx context.Context, command CreatePendingShipmentsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	orders, err := h.uowFactory.Create().OrderRepository().GetAllAwaitingShipment(ctx, command.Limit())
	if err != nil {
		return 0, err
	}

	created := 0
	var errList []error
	for _, o := range orders {
		if err = ctx.Err(); err != nil {
			errList = append(errList, err)
			break
		}

		cmd, err := NewCreateShipmentCommand(kernel.NewUUID(), o.ID(), "", "", nil)
		if err != nil {
			errList = append(errList, err)
			continue
		}

		if _, err = h.createHandler.Handle(ctx, cmd); err != nil {
			errList = append(errList, fmt.Errorf("order %s: %w", o.ID(), err))
			continue
		}
		created++
	}

	return created, errors.Join(errList...)
}
