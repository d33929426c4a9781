// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order store.
//
// # Available Jobs
//
// 1. ActiveOrdersReportJob - Periodically logs the active-order count per hub
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(activeOrderCountsHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (with seconds), taken from
// configuration so operators can tune report frequency per environment.
//
// # Error Handling
//
// Report failures are logged and the job keeps its schedule; a transient
// database outage never stops the job.
package jobs
