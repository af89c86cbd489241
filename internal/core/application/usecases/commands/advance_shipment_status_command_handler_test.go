package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceShipmentStatusCommand(t *testing.T) {
	cmd, err := commands.NewAdvanceShipmentStatusCommand(kernel.NewUUID(), "in_transit")
	require.NoError(t, err)
	assert.Equal(t, shipment.InTransit, cmd.Status())

	_, err = commands.NewAdvanceShipmentStatusCommand(kernel.NewUUID(), "LOST")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAdvanceShipmentStatusCommandHandler_Handle_IntermediateStep(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, order.Shipped, order.PaymentCreditCard, 3000)
	s := newShipment(t, o, shipment.LabelPrinted)
	cmd, err := commands.NewAdvanceShipmentStatusCommand(s.ID(), "PICKED_UP")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err = commands.NewAdvanceShipmentStatusCommandHandler(factory, clock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.PickedUp, s.Status())
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
}

func TestAdvanceShipmentStatusCommandHandler_Handle_PropagatesToOrder(t *testing.T) {
	tests := []struct {
		name      string
		from      shipment.Status
		to        string
		wantOrder order.Status
	}{
		{"delivered", shipment.OutForDelivery, "DELIVERED", order.Delivered},
		{"returned", shipment.InTransit, "RETURNED", order.Returned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := newOrder(t, order.Shipped, order.PaymentCreditCard, 3000)
			s := newShipment(t, o, tt.from)
			cmd, err := commands.NewAdvanceShipmentStatusCommand(s.ID(), tt.to)
			require.NoError(t, err)

			orderRepo := new(MockOrderRepository)
			shipmentRepo := new(MockShipmentRepository)
			uow := new(MockUoW)
			factory := new(MockUoWFactory)

			mock.InOrder(
				factory.On("Create").Return(uow).Once(),
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
				shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
				shipmentRepo.On("Update", ctx, s).Return(nil).Once(),
				uow.On("OrderRepository").Return(orderRepo).Once(),
				orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
				orderRepo.On("Update", ctx, o).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			err = commands.NewAdvanceShipmentStatusCommandHandler(factory, clock).Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, o.Status())
			uow.AssertExpectations(t)
			orderRepo.AssertExpectations(t)
		})
	}
}

func TestAdvanceShipmentStatusCommandHandler_Handle_SkippedStep(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, order.Processing, order.PaymentCreditCard, 3000)
	s := newShipment(t, o, shipment.Pending)
	cmd, err := commands.NewAdvanceShipmentStatusCommand(s.ID(), "DELIVERED")
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Get", ctx, s.ID()).Return(s, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	err = commands.NewAdvanceShipmentStatusCommandHandler(factory, clock).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Contains(t, err.Error(), "PENDING")
	assert.Equal(t, shipment.Pending, s.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
