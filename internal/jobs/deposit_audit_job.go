package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/application/usecases/commands"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// depositReviewDeadline is how long a recorded deposit may sit unreviewed
// before the audit flags it to back office.
const depositReviewDeadline = 24 * time.Hour

// DepositAuditJob flags cash deposits that back office has left unreviewed
// past the deadline. The agent's balance was already credited optimistically
// when the deposit was recorded, so a stalled review is real money at risk.
type DepositAuditJob struct {
	uowFactory commands.AgentUoWFactory
	notifier   ports.Notifier
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDepositAuditJob creates the deposit audit sweep.
func NewDepositAuditJob(
	uowFactory commands.AgentUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) *DepositAuditJob {
	return &DepositAuditJob{
		uowFactory: uowFactory,
		notifier:   notifier,
		cron:       cron.New(),
		logger:     logger.With("component", "deposit_audit_job"),
	}
}

// Start schedules the audit to run at the top of every hour.
func (j *DepositAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Deposit audit job started (running hourly)")
	return nil
}

// Stop stops the deposit audit sweep.
func (j *DepositAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Deposit audit job stopped")
}

func (j *DepositAuditJob) sweep(ctx context.Context) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Deposit audit failed to begin", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agents, err := uow.AgentRepository().GetAllWithPendingDeposits(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Deposit audit failed to list agents", "error", err)
		return
	}

	cutoff := time.Now().UTC().Add(-depositReviewDeadline)

	for _, aggregate := range agents {
		for _, deposit := range aggregate.Deposits() {
			if deposit.Status().IsFinal() || deposit.RecordedAt().After(cutoff) {
				continue
			}

			event := fmt.Sprintf("deposit %s from agent %s (%d, evidence %s) awaits review since %s",
				deposit.ID().String(), aggregate.ID().String(), deposit.Amount(),
				deposit.Evidence(), deposit.RecordedAt().Format(time.RFC3339))
			_ = j.notifier.Notify(ctx, "back-office", event)

			j.logger.WarnContext(ctx, "Deposit review overdue",
				"agent_id", aggregate.ID().String(),
				"deposit_id", deposit.ID().String(),
				"amount", deposit.Amount(),
				"recorded_at", deposit.RecordedAt())
		}
	}
}
