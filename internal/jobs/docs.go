// Package jobs runs the scheduled background work of the logistics service on
// github.com/robfig/cron/v3.
//
// # Jobs
//
//   - ShipmentCreationJob creates PENDING shipments for PACKED orders that have no carrier yet,
//     routing each one with the carrier router. Each order is committed on its own.
//   - CarrierStatsReportJob logs shipment counts per carrier and status.
//
// Schedules are six-field cron expressions with a leading seconds field, e.g. "0 */5 * * * *".
//
// # Usage
//
//	manager := jobs.NewJobManager(
//		jobs.NewShipmentCreationJob(createPendingHandler, "0 * * * * *", 50, logger),
//		jobs.NewCarrierStatsReportJob(statsHandler, "0 0 * * * *", logger),
//	)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer manager.StopAll()
package jobs
