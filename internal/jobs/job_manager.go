package jobs

import (
	"fmt"
	"log/slog"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/application/usecases/commands"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/ports"
)

// JobManager coordinates the scheduled jobs in the application.
type JobManager struct {
	settlementJob   *SettlementJob
	depositAuditJob *DepositAuditJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	orderUoWFactory commands.OrderUoWFactory,
	agentUoWFactory commands.AgentUoWFactory,
	settleHandler commands.SettleOrderCommandHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementJob:   NewSettlementJob(orderUoWFactory, settleHandler, logger),
		depositAuditJob: NewDepositAuditJob(agentUoWFactory, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement job: %w", err)
	}
	if err := jm.depositAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start deposit audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementJob.Stop()
	jm.depositAuditJob.Stop()
}
