package commands

import (
	"context"
)

// ConfirmDeliveryCommandHandler records a completed delivery. The order
// transition, the cash collection (for cash-on-delivery) and the closing of
// the agent's ledger entry commit atomically: a custody ceiling breach rolls
// the whole delivery back, leaving the order in transit and the balance
// untouched.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	isCash := aggregate.Channel().IsCashOnDelivery()

	if err = aggregate.ConfirmDelivery(rider.ID()); err != nil {
		return err
	}
	if isCash {
		if err = rider.Collect(aggregate.ID(), aggregate.TotalAmount()); err != nil {
			return err
		}
	}
	if err = rider.CompleteDelivery(aggregate.ID()); err != nil {
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
