// Package jobs runs the back office's cron-driven background checks.
//
// OverdueDeliveriesJob asks the overdue deliveries query for pending or in-transit
// deliveries whose expected time has passed and logs one warning per delivery. It never
// writes. A failed check is logged and the next tick tries again.
//
// Schedules are standard five-field cron expressions, or descriptors such as "@every 30s".
// JobManager starts and stops every job together:
//
//	manager := jobs.NewJobManager(overdueHandler, cfg.OverdueCron, logger)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
package jobs
