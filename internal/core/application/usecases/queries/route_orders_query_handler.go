package queries

import (
	"context"

	"logistics/internal/core/domain/model/routing"
	"logistics/internal/core/domain/services"
)

// RouteOrdersQueryHandler loads orders and runs them through the carrier router.
type RouteOrdersQueryHandler struct {
	orders OrderReader
	router services.CarrierRouter
}

func NewRouteOrdersQueryHandler(orders OrderReader, router services.CarrierRouter) RouteOrdersQueryHandler {
	return RouteOrdersQueryHandler{orders: orders, router: router}
}

// Handle returns one decision per distinct order id, in request order. An unknown id fails
// the whole query with an ObjectNotFoundError.
func (h RouteOrdersQueryHandler) Handle(ctx context.Context, query RouteOrdersQuery) ([]routing.Decision, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetMany(ctx, query.OrderIDs())
	if err != nil {
		return nil, err
	}

	return h.router.DecideBatch(orders)
}
