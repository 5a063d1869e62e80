package commands

import (
	"context"
)

// StartTransitCommandHandler advances the agent's delivery stage to InTransit.
type StartTransitCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewStartTransitCommandHandler creates a handler for transit reports.
func NewStartTransitCommandHandler(uowFactory AgentUoWFactory) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transit report.
func (h StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) error {
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

	if err = rider.StartTransit(cmd.OrderID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, rider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
