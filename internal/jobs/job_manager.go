package jobs

import (
	"fmt"
)

// JobManager starts and stops the background jobs together.
type JobManager struct {
	shipmentCreationJob   *ShipmentCreationJob
	carrierStatsReportJob *CarrierStatsReportJob
}

// NewJobManager takes already built jobs. A nil job is skipped, which is how a job is disabled.
func NewJobManager(shipmentCreationJob *ShipmentCreationJob, carrierStatsReportJob *CarrierStatsReportJob) *JobManager {
	return &JobManager{
		shipmentCreationJob:   shipmentCreationJob,
		carrierStatsReportJob: carrierStatsReportJob,
	}
}

// StartAll starts every configured job. If one fails, those already started are stopped.
func (jm *JobManager) StartAll() error {
	if jm.shipmentCreationJob != nil {
		if err := jm.shipmentCreationJob.Start(); err != nil {
			return fmt.Errorf("failed to start shipment creation job: %w", err)
		}
	}

	if jm.carrierStatsReportJob != nil {
		if err := jm.carrierStatsReportJob.Start(); err != nil {
			if jm.shipmentCreationJob != nil {
				jm.shipmentCreationJob.Stop()
			}
			return fmt.Errorf("failed to start carrier stats report job: %w", err)
		}
	}

	return nil
}

func (jm *JobManager) StopAll() {
	if jm.carrierStatsReportJob != nil {
		jm.carrierStatsReportJob.Stop()
	}
	if jm.shipmentCreationJob != nil {
		jm.shipmentCreationJob.Stop()
	}
}
