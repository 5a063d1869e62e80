package commands

import (
	"context"
)

// ReviewDepositCommandHandler finalizes a pending deposit. A rejection
// reverses the optimistic credit; either way the deposit record itself is
// never edited after recording.
type ReviewDepositCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewReviewDepositCommandHandler creates a handler for deposit review.
func NewReviewDepositCommandHandler(uowFactory AgentUoWFactory) ReviewDepositCommandHandler {
	return ReviewDepositCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deposit review command.
func (h ReviewDepositCommandHandler) Handle(ctx context.Context, cmd ReviewDepositCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AgentRepository()
	rider, err := repo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	switch cmd.Verdict() {
	case VerdictApprove:
		err = rider.VerifyDeposit(cmd.DepositID(), cmd.Verifier())
	case VerdictReject:
		err = rider.RejectDeposit(cmd.DepositID(), cmd.Verifier())
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, rider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
