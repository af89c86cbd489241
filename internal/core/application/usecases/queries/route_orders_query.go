package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRouteOrdersQueryIsNotConstructed = errors.New(
	"RouteOrdersQuery must be created via NewRouteOrdersQuery constructor",
)

// RouteOrdersQuery asks which carrier each order would ship with. Nothing is persisted.
type RouteOrdersQuery struct {
	orderIDs []kernel.UUID
	guard    guard.ConstructorGuard
}

// NewRouteOrdersQuery requires at least one order id.
func NewRouteOrdersQuery(orderIDs []kernel.UUID) (RouteOrdersQuery, error) {
	if len(orderIDs) == 0 {
		return RouteOrdersQuery{}, errs.NewValueIsRequiredError("orderIds")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return RouteOrdersQuery{}, err
		}
	}

	return RouteOrdersQuery{
		orderIDs: append([]kernel.UUID(nil), orderIDs...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q RouteOrdersQuery) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), q.orderIDs...)
}

func (q RouteOrdersQuery) Validate() error {
	return q.guard.Validate(ErrRouteOrdersQueryIsNotConstructed)
}
