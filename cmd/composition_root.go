package cmd

import (
	"log/slog"
	"time"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/shipperprofile"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/domain/services/manifest"
	"logistics/internal/jobs"
	"logistics/internal/pkg/sjis"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	router     services.CarrierRouter
	generator  *manifest.Generator
	shippers   *shipperprofile.StaticProvider
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	profile, err := config.ShipperProfile()
	if err != nil {
		return CompositionRoot{}, err
	}
	shippers, err := shipperprofile.NewStaticProvider(profile)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		router:     services.NewCarrierRouter(config.RoutingThresholds()),
		generator:  manifest.NewGenerator(manifest.DefaultRegistry(), sjis.NewEncoder(), time.Now, config.ManifestWorkers),
		shippers:   shippers,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.unitOfWorkFactory(), c.router)
}

func (c *CompositionRoot) CreateCreatePendingShipmentsCommandHandler() commands.CreatePendingShipmentsCommandHandler {
	return commands.NewCreatePendingShipmentsCommandHandler(c.unitOfWorkFactory(), c.CreateCreateShipmentCommandHandler())
}

func (c *CompositionRoot) CreateAssignTrackingNumberCommandHandler() commands.AssignTrackingNumberCommandHandler {
	return commands.NewAssignTrackingNumberCommandHandler(c.unitOfWorkFactory(), time.Now)
}

func (c *CompositionRoot) CreateAdvanceShipmentStatusCommandHandler() commands.AdvanceShipmentStatusCommandHandler {
	return commands.NewAdvanceShipmentStatusCommandHandler(c.unitOfWorkFactory(), time.Now)
}

func (c *CompositionRoot) CreateRouteOrdersQueryHandler() queries.RouteOrdersQueryHandler {
	return queries.NewRouteOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, nil), c.router)
}

func (c *CompositionRoot) CreateExportManifestQueryHandler() queries.ExportManifestQueryHandler {
	return queries.NewExportManifestQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB, nil), c.shippers, c.generator, c.logger)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCarrierStatsQueryHandler() queries.GetCarrierStatsQueryHandler {
	return queries.NewGetCarrierStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		RouteOrders:           c.CreateRouteOrdersQueryHandler(),
		CreateShipment:        c.CreateCreateShipmentCommandHandler(),
		AssignTrackingNumber:  c.CreateAssignTrackingNumberCommandHandler(),
		AdvanceShipmentStatus: c.CreateAdvanceShipmentStatusCommandHandler(),
		GetShipments:          c.CreateGetShipmentsQueryHandler(),
		GetCarrierStats:       c.CreateGetCarrierStatsQueryHandler(),
		ExportManifest:        c.CreateExportManifestQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var creation *jobs.ShipmentCreationJob
	if scheduleEnabled(c.config.ShipmentCreationSchedule) {
		creation = jobs.NewShipmentCreationJob(
			c.CreateCreatePendingShipmentsCommandHandler(),
			c.config.ShipmentCreationSchedule,
			c.config.ShipmentCreationBatchSize,
			c.logger,
		)
	}

	var stats *jobs.CarrierStatsReportJob
	if scheduleEnabled(c.config.CarrierStatsSchedule) {
		stats = jobs.NewCarrierStatsReportJob(c.CreateGetCarrierStatsQueryHandler(), c.config.CarrierStatsSchedule, c.logger)
	}

	return jobs.NewJobManager(creation, stats)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
