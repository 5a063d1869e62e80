// Package jobs provides scheduled background tasks for the marketplace.
//
// The package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SettlementJob - Runs every minute to release seller payouts for
// delivered orders that were not settled yet.
//
// 2. DepositAuditJob - Runs hourly to flag cash deposits that back office
// has left unreviewed past the deadline.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(orderUoWFactory, agentUoWFactory, settleHandler, notifier, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The settlement sweep treats conflicts and failed settlement guards as
// expected: they mean another writer settled the order first. Everything else
// is logged and the sweep continues with the next candidate.
package jobs
