package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/application/usecases/commands"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// SettlementJob sweeps delivered orders and releases seller payouts. Runs
// every minute; each candidate settles independently so one failure never
// blocks the rest of the sweep.
type SettlementJob struct {
	uowFactory commands.OrderUoWFactory
	handler    commands.SettleOrderCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewSettlementJob creates the settlement sweep.
func NewSettlementJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.SettleOrderCommandHandler,
	logger *slog.Logger,
) *SettlementJob {
	return &SettlementJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(),
		logger:     logger.With("component", "settlement_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *SettlementJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement job started (running every minute)")
	return nil
}

// Stop stops the settlement sweep.
func (j *SettlementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement job stopped")
}

func (j *SettlementJob) sweep(ctx context.Context) {
	candidates, err := j.listCandidates(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Settlement sweep failed to list candidates", "error", err)
		return
	}

	for _, orderID := range candidates {
		cmd, err := commands.NewSettleOrderCommand(orderID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Settlement sweep built an invalid command",
				"order_id", orderID.String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A conflict or a failed guard means someone settled the
			// order between listing and handling; the sweep moves on.
			if errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrIllegalTransition) {
				continue
			}
			j.logger.ErrorContext(ctx, "Settlement failed",
				"order_id", orderID.String(), "error", err)
		}
	}
}

func (j *SettlementJob) listCandidates(ctx context.Context) ([]kernel.UUID, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllUnsettledDelivered(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, aggregate := range orders {
		ids = append(ids, aggregate.ID())
	}

	return ids, nil
}
