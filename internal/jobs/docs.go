// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Drains the transactional outbox to the message broker
// on a configurable interval.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the relay job
//	jobManager := jobs.NewJobManager(relayJob, cfg.OutboxRelayEnabled)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed relay run is logged and the records stay unpublished, so the next
// tick retries them. Job errors never stop the scheduler.
package jobs
