package commands

import (
	"context"
)

// RefundOrderCommandHandler reverses a delivered order. Only the order state
// changes here; returning the buyer's money is a provider-side operation
// reconciled from the refunded payment status.
type RefundOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRefundOrderCommandHandler creates a handler for order refunds.
func NewRefundOrderCommandHandler(uowFactory OrderUoWFactory) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund command.
func (h RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
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

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Refund(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
