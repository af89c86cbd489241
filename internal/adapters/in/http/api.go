package http

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetShipmentsParams are the query parameters of GET /api/v1/shipments. Nil means absent.
type GetShipmentsParams struct {
	Status  *[]string `form:"status,omitempty" json:"status,omitempty"`
	Carrier *[]string `form:"carrier,omitempty" json:"carrier,omitempty"`
	Page    *int      `form:"page,omitempty" json:"page,omitempty"`
	Limit   *int      `form:"limit,omitempty" json:"limit,omitempty"`
}

// ServerInterface lists one method per operation of openapi.json.
type ServerInterface interface {
	// (POST /api/v1/manifests)
	ExportManifest(ctx echo.Context) error
	// (POST /api/v1/routing/batch)
	RouteOrders(ctx echo.Context) error
	// (POST /api/v1/routing/orders/{orderId})
	RouteOrder(ctx echo.Context, orderID string) error
	// (GET /api/v1/shipments)
	GetShipments(ctx echo.Context, params GetShipmentsParams) error
	// (POST /api/v1/shipments)
	CreateShipment(ctx echo.Context) error
	// (GET /api/v1/shipments/stats)
	GetCarrierStats(ctx echo.Context) error
	// (PATCH /api/v1/shipments/{shipmentId}/status)
	AdvanceShipmentStatus(ctx echo.Context, shipmentID string) error
	// (PATCH /api/v1/shipments/{shipmentId}/tracking)
	AssignTrackingNumber(ctx echo.Context, shipmentID string) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ExportManifest(ctx echo.Context) error {
	return w.Handler.ExportManifest(ctx)
}

func (w *ServerInterfaceWrapper) RouteOrders(ctx echo.Context) error {
	return w.Handler.RouteOrders(ctx)
}

func (w *ServerInterfaceWrapper) RouteOrder(ctx echo.Context) error {
	var orderID string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.RouteOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetShipments(ctx echo.Context) error {
	var params GetShipmentsParams
	query := ctx.QueryParams()

	if err := runtime.BindQueryParameter("form", false, false, "status", query, &params.Status); err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	if err := runtime.BindQueryParameter("form", false, false, "carrier", query, &params.Carrier); err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter carrier: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", query, &params.Page); err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetShipments(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateShipment(ctx echo.Context) error {
	return w.Handler.CreateShipment(ctx)
}

func (w *ServerInterfaceWrapper) GetCarrierStats(ctx echo.Context) error {
	return w.Handler.GetCarrierStats(ctx)
}

func (w *ServerInterfaceWrapper) AdvanceShipmentStatus(ctx echo.Context) error {
	shipmentID, err := bindShipmentID(ctx)
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter shipmentId: %s", err))
	}

	return w.Handler.AdvanceShipmentStatus(ctx, shipmentID)
}

func (w *ServerInterfaceWrapper) AssignTrackingNumber(ctx echo.Context) error {
	shipmentID, err := bindShipmentID(ctx)
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("Invalid format for parameter shipmentId: %s", err))
	}

	return w.Handler.AssignTrackingNumber(ctx, shipmentID)
}

func bindShipmentID(ctx echo.Context) (string, error) {
	var shipmentID string
	err := runtime.BindStyledParameterWithOptions("simple", "shipmentId", ctx.Param("shipmentId"), &shipmentID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", err
	}
	return shipmentID, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of si on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/manifests", wrapper.ExportManifest)
	router.POST(baseURL+"/api/v1/routing/batch", wrapper.RouteOrders)
	router.POST(baseURL+"/api/v1/routing/orders/:orderId", wrapper.RouteOrder)
	router.GET(baseURL+"/api/v1/shipments", wrapper.GetShipments)
	router.POST(baseURL+"/api/v1/shipments", wrapper.CreateShipment)
	router.GET(baseURL+"/api/v1/shipments/stats", wrapper.GetCarrierStats)
	router.PATCH(baseURL+"/api/v1/shipments/:shipmentId/status", wrapper.AdvanceShipmentStatus)
	router.PATCH(baseURL+"/api/v1/shipments/:shipmentId/tracking", wrapper.AssignTrackingNumber)
}
