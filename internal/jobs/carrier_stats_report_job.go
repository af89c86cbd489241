package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type CarrierStatsReader interface {
	Handle(ctx context.Context, query queries.GetCarrierStatsQuery) (queries.GetCarrierStatsQueryResponse, error)
}

// CarrierStatsReportJob logs shipment counts per carrier on a schedule.
type CarrierStatsReportJob struct {
	handler  CarrierStatsReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewCarrierStatsReportJob(handler CarrierStatsReader, schedule string, logger *slog.Logger) *CarrierStatsReportJob {
	return &CarrierStatsReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "carrier_stats_report_job"),
	}
}

// Run logs one report line per carrier plus a total.
func (j *CarrierStatsReportJob) Run(ctx context.Context) error {
	stats, err := j.handler.Handle(ctx, queries.NewGetCarrierStatsQuery())
	if err != nil {
		return err
	}

	for _, c := range stats.ByCarrier {
		attrs := []any{"carrier", c.Carrier.String(), "count", c.Count}
		for _, s := range stats.ByCarrierAndStatus {
			if s.Carrier == c.Carrier {
				attrs = append(attrs, s.Status.String(), s.Count)
			}
		}
		j.logger.InfoContext(ctx, "Carrier shipments", attrs...)
	}
	j.logger.InfoContext(ctx, "Carrier stats report", "total", stats.Total, "carriers", len(stats.ByCarrier))
	return nil
}

func (j *CarrierStatsReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Carrier stats report job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Carrier stats report job started", "schedule", j.schedule)
	return nil
}

func (j *CarrierStatsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Carrier stats report job stopped")
}
