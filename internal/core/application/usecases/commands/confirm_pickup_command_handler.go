package commands

import (
	"context"
)

// ConfirmPickupCommandHandler records the physical handoff of goods to the
// assigned agent. The order is located by the number encoded in the token;
// the order transition and the agent's ledger stage advance in one
// transaction.
type ConfirmPickupCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation.
func NewConfirmPickupCommandHandler(uowFactory UoWFactory) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup confirmation command.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
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

	aggregate, err := orderRepo.GetByNumber(ctx, cmd.Token().OrderNumber())
	if err != nil {
		return err
	}
	rider, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = aggregate.ConfirmPickup(cmd.Token(), rider.ID()); err != nil {
		return err
	}
	if err = rider.ConfirmPickup(aggregate.ID()); err != nil {
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
