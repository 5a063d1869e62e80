package commands

import (
	"context"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/agent"
)

// CreateAgentCommandHandler onboards a delivery agent. Onboarding through
// this command is a back-office action, so the agent is created already
// verified and ready to take deliveries.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCreateAgentCommandHandler creates a handler for agent onboarding.
func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the onboarding command.
func (h CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rider, err := agent.NewDeliveryAgent(cmd.AgentID(), cmd.Name(), cmd.CashLimit())
	if err != nil {
		return err
	}
	rider.Verify()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AgentRepository().Add(ctx, rider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
