package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/routing"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services/manifest"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// DegradedRowsHeader carries Manifest.DegradedRows on manifest downloads.
const DegradedRowsHeader = "X-Manifest-Degraded-Rows"

type (
	RouteOrdersHandler interface {
		Handle(ctx context.Context, query queries.RouteOrdersQuery) ([]routing.Decision, error)
	}

	CreateShipmentHandler interface {
		Handle(ctx context.Context, command commands.CreateShipmentCommand) (*shipment.Shipment, error)
	}

	AssignTrackingNumberHandler interface {
		Handle(ctx context.Context, command commands.AssignTrackingNumberCommand) error
	}

	AdvanceShipmentStatusHandler interface {
		Handle(ctx context.Context, command commands.AdvanceShipmentStatusCommand) error
	}

	GetShipmentsHandler interface {
		Handle(ctx context.Context, query queries.GetShipmentsQuery) (queries.GetShipmentsQueryResponse, error)
	}

	GetCarrierStatsHandler interface {
		Handle(ctx context.Context, query queries.GetCarrierStatsQuery) (queries.GetCarrierStatsQueryResponse, error)
	}

	ExportManifestHandler interface {
		Handle(ctx context.Context, query queries.ExportManifestQuery) (manifest.Manifest, error)
	}
)

// Handlers groups the use cases the server exposes.
type Handlers struct {
	RouteOrders           RouteOrdersHandler
	CreateShipment        CreateShipmentHandler
	AssignTrackingNumber  AssignTrackingNumberHandler
	AdvanceShipmentStatus AdvanceShipmentStatusHandler
	GetShipments          GetShipmentsHandler
	GetCarrierStats       GetCarrierStatsHandler
	ExportManifest        ExportManifestHandler
}

// Server implements ServerInterface by translating requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// RouteOrder handles POST /api/v1/routing/orders/{orderId}.
func (s *Server) RouteOrder(c echo.Context, rawOrderID string) error {
	orderID, err := kernel.UUIDFromString(rawOrderID)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewRouteOrdersQuery([]kernel.UUID{orderID})
	if err != nil {
		return respondError(c, s.logger, err)
	}

	decisions, err := s.handlers.RouteOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}
	if len(decisions) == 0 {
		return respondError(c, s.logger, errs.NewObjectNotFoundError("order", orderID.String()))
	}

	return c.JSON(http.StatusOK, toRoutingDecision(decisions[0]))
}

// RouteOrders handles POST /api/v1/routing/batch.
func (s *Server) RouteOrders(c echo.Context) error {
	var body OrderIDsRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ids, err := parseUUIDs(body.OrderIDs)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewRouteOrdersQuery(ids)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	decisions, err := s.handlers.RouteOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	response := RoutingDecisions{Decisions: make([]RoutingDecision, 0, len(decisions))}
	for _, d := range decisions {
		response.Decisions = append(response.Decisions, toRoutingDecision(d))
	}
	return c.JSON(http.StatusOK, response)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var body NewShipment
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	packages := make([]commands.PackageInput, 0, len(body.Packages))
	for _, p := range body.Packages {
		packages = append(packages, commands.PackageInput{
			WeightGrams: p.WeightGrams,
			SizeCode:    p.SizeCode,
			SKUs:        p.SKUs,
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), orderID, body.Carrier, body.ServiceType, packages)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	created, err := s.handlers.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, toShipment(created))
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(c echo.Context, params GetShipmentsParams) error {
	var statuses, carriers []string
	var page, limit int
	if params.Status != nil {
		statuses = *params.Status
	}
	if params.Carrier != nil {
		carriers = *params.Carrier
	}
	if params.Page != nil {
		page = *params.Page
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetShipmentsQuery(statuses, carriers, page, limit)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	response, err := s.handlers.GetShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, toShipmentList(response))
}

// GetCarrierStats handles GET /api/v1/shipments/stats.
func (s *Server) GetCarrierStats(c echo.Context) error {
	response, err := s.handlers.GetCarrierStats.Handle(c.Request().Context(), queries.NewGetCarrierStatsQuery())
	if err != nil {
		return respondError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, toCarrierStats(response))
}

// AssignTrackingNumber handles PATCH /api/v1/shipments/{shipmentId}/tracking.
func (s *Server) AssignTrackingNumber(c echo.Context, rawShipmentID string) error {
	shipmentID, err := kernel.UUIDFromString(rawShipmentID)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	var body TrackingNumberRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewAssignTrackingNumberCommand(shipmentID, body.TrackingNumber)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.handlers.AssignTrackingNumber.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdvanceShipmentStatus handles PATCH /api/v1/shipments/{shipmentId}/status.
func (s *Server) AdvanceShipmentStatus(c echo.Context, rawShipmentID string) error {
	shipmentID, err := kernel.UUIDFromString(rawShipmentID)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	var body StatusRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewAdvanceShipmentStatusCommand(shipmentID, body.Status)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	if err = s.handlers.AdvanceShipmentStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, s.logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ExportManifest handles POST /api/v1/manifests. The file is sent as an attachment.
func (s *Server) ExportManifest(c echo.Context) error {
	var body ManifestRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ids, err := parseUUIDs(body.OrderIDs)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	query, err := queries.NewExportManifestQuery(body.Carrier, ids)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	m, err := s.handlers.ExportManifest.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, s.logger, err)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, `attachment; filename="`+m.Filename+`"`)
	header.Set(DegradedRowsHeader, strconv.Itoa(m.DegradedRows))
	return c.Blob(http.StatusOK, m.ContentType, m.Content)
}

func parseUUIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromString(r)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
