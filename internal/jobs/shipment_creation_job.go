package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingShipmentsCreator is satisfied by commands.CreatePendingShipmentsCommandHandler.
type PendingShipmentsCreator interface {
	Handle(ctx context.Context, command commands.CreatePendingShipmentsCommand) (int, error)
}

// ShipmentCreationJob periodically creates shipments for packed orders that have none.
type ShipmentCreationJob struct {
	handler   PendingShipmentsCreator
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewShipmentCreationJob builds the job. schedule is a six-field cron expression
// (seconds first); batchSize caps the orders handled per run.
func NewShipmentCreationJob(
	handler PendingShipmentsCreator,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *ShipmentCreationJob {
	return &ShipmentCreationJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "shipment_creation_job"),
	}
}

// Run performs one pass and reports how many shipments were created.
func (j *ShipmentCreationJob) Run(ctx context.Context) (int, error) {
	cmd, err := commands.NewCreatePendingShipmentsCommand(j.batchSize)
	if err != nil {
		return 0, err
	}

	created, err := j.handler.Handle(ctx, cmd)
	if created > 0 {
		j.logger.InfoContext(ctx, "Shipments created for packed orders", "count", created)
	}
	return created, err
}

func (j *ShipmentCreationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Shipment creation job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Shipment creation job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

// Stop waits for a running pass to finish.
func (j *ShipmentCreationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Shipment creation job stopped")
}
