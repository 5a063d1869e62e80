package commands

import (
	"context"
)

// RecordDepositCommandHandler records a cash hand-in on the agent's ledger,
// applying the optimistic balance credit.
type RecordDepositCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRecordDepositCommandHandler creates a handler for deposit recording.
func NewRecordDepositCommandHandler(uowFactory AgentUoWFactory) RecordDepositCommandHandler {
	return RecordDepositCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deposit recording command.
func (h RecordDepositCommandHandler) Handle(ctx context.Context, cmd RecordDepositCommand) error {
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

	if err = rider.RecordDeposit(cmd.DepositID(), cmd.Amount(), cmd.Evidence()); err != nil {
		return err
	}

	if err = repo.Update(ctx, rider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
