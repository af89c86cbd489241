package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePendingShipmentsCommand(t *testing.T) {
	_, err := commands.NewCreatePendingShipmentsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreatePendingShipmentsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	first := newOrder(t, order.Packed, order.PaymentCreditCard, 3000)
	second := newOrder(t, order.Packed, order.PaymentCreditCard, 3000)
	cmd, err := commands.NewCreatePendingShipmentsCommand(10)
	require.NoError(t, err)

	listRepo := new(MockOrderRepository)
	listUoW := new(MockUoW)
	listRepo.On("GetAllAwaitingShipment", ctx, 10).Return([]*order.Order{first, second}, nil).Once()
	listUoW.On("OrderRepository").Return(listRepo).Once()

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(orderRepo).Twice()
	uow.On("ShipmentRepository").Return(shipmentRepo).Twice()
	orderRepo.On("Get", ctx, first.ID()).Return(first, nil).Once()
	orderRepo.On("Get", ctx, second.ID()).Return(second, nil).Once()
	shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()
	shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(errors.New("duplicate")).Once()
	orderRepo.On("Update", ctx, first).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(listUoW).Once(),
		factory.On("Create").Return(uow).Twice(),
	)

	handler := commands.NewCreatePendingShipmentsCommandHandler(factory, newCreateHandler(factory))
	created, err := handler.Handle(ctx, cmd)

	assert.Equal(t, 1, created)
	require.Error(t, err)
	assert.Contains(t, err.Error(), second.ID().String())
	assert.Contains(t, err.Error(), "duplicate")
	listUoW.AssertNotCalled(t, "Begin", mock.Anything)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePendingShipmentsCommandHandler_Handle_NothingWaiting(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePendingShipmentsCommand(5)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	repo.On("GetAllAwaitingShipment", ctx, 5).Return([]*order.Order{}, nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	factory.On("Create").Return(uow).Once()

	created, err := commands.NewCreatePendingShipmentsCommandHandler(factory, newCreateHandler(factory)).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, created)
}
