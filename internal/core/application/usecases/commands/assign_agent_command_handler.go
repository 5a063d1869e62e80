package commands

import (
	"context"
)

// AssignAgentCommandHandler assigns a delivery agent to a confirmed order.
// The order's assignment and the agent's ledger entry are written in one
// transaction; concurrent assignments of the same order race on the order
// row's version, so exactly one wins and the loser gets a conflict.
type AssignAgentCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
// Requires a UoWFactory because the command spans both aggregates.
func NewAssignAgentCommandHandler(uowFactory UoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
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

	orderRepo := uow.OrderRepository()
	agentRepo := uow.AgentRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	rider, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = aggregate.AssignAgent(rider.ID()); err != nil {
		return err
	}
	if err = rider.AcceptDelivery(aggregate.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = agentRepo.Update(ctx, rider); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
