// Package jobs provides scheduled background tasks for the restaurant service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Jobs only read; they never change order state.
//
// # Available Jobs
//
// 1. OrderBacklogJob - logs the number of orders in every non-terminal status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(backlogHandler, cfg.BacklogReportSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions including seconds. The backlog
// report defaults to "0 * * * * *", once a minute.
//
// # Error Handling
//
// A failed report is logged and retried on the next tick. An invalid
// schedule makes StartAll return an error.
package jobs
