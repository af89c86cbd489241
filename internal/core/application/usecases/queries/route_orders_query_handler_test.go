package queries_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/routing"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouteHandler(reader *MockOrderReader) queries.RouteOrdersQueryHandler {
	return queries.NewRouteOrdersQueryHandler(reader, services.NewCarrierRouter(services.DefaultRoutingThresholds()))
}

func TestRouteOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	light := newOrder(t, orderFixture{externalID: "EC-1", weight: 300})
	cod := newOrder(t, orderFixture{externalID: "EC-2", weight: 1500, payment: order.PaymentCOD, prefecture: "沖縄県"})

	reader := new(MockOrderReader)
	ids := []kernel.UUID{light.ID(), cod.ID()}
	reader.On("GetMany", ctx, ids).Return([]*order.Order{light, cod}, nil).Once()

	query, err := queries.NewRouteOrdersQuery(ids)
	require.NoError(t, err)

	decisions, err := newRouteHandler(reader).Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, decisions, 2)
	assert.Equal(t, kernel.CarrierJapanPost, decisions[0].Carrier)
	assert.Equal(t, kernel.ServiceJapanPostClickPost, decisions[0].ServiceType)
	assert.Equal(t, routing.RuleSmallParcel, decisions[0].Rule)
	assert.Equal(t, kernel.CarrierYamato, decisions[1].Carrier)
	assert.Equal(t, kernel.ServiceYamatoCompact, decisions[1].ServiceType)
	assert.Equal(t, routing.RuleCOD, decisions[1].Rule)
	reader.AssertExpectations(t)
}

func TestRouteOrdersQueryHandler_Handle_ReaderError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	notFound := errs.NewObjectNotFoundError("orders", []string{id.String()})

	reader := new(MockOrderReader)
	reader.On("GetMany", ctx, []kernel.UUID{id}).Return(nil, notFound).Once()

	query, err := queries.NewRouteOrdersQuery([]kernel.UUID{id})
	require.NoError(t, err)

	decisions, err := newRouteHandler(reader).Handle(ctx, query)

	assert.Nil(t, decisions)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRouteOrdersQueryHandler_Handle_InvalidQuery(t *testing.T) {
	reader := new(MockOrderReader)

	_, err := newRouteHandler(reader).Handle(t.Context(), queries.RouteOrdersQuery{})

	assert.True(t, errors.Is(err, queries.ErrRouteOrdersQueryIsNotConstructed))
	reader.AssertNotCalled(t, "GetMany", mock.Anything, mock.Anything)
}
