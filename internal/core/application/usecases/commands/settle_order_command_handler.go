package commands

import (
	"context"
	"fmt"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/ports"
)

// SettleOrderCommandHandler coordinates the payout for a delivered order.
//
// The payout call is not idempotent on the provider side, so the handler
// works in three steps:
//
//  1. Read the order and check the settlement guard (Delivered, payment
//     captured and not yet released). No payout leaves for an ineligible order.
//  2. Call the payout provider outside any transaction; no locks are held
//     over provider latency.
//  3. Re-read the order, re-run the guard, transition to Settled and commit
//     under the optimistic version check.
//
// Two concurrent settles of the same order cannot both succeed: the loser
// either fails the re-run guard or loses the version race with a conflict
// error. A payout provider failure leaves the order Delivered and the
// settlement retriable. The settlement notification is fire-and-forget.
type SettleOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	payouts    ports.Payout
	notifier   ports.Notifier
}

// NewSettleOrderCommandHandler creates a handler for order settlement.
func NewSettleOrderCommandHandler(
	uowFactory OrderUoWFactory,
	payouts ports.Payout,
	notifier ports.Notifier,
) SettleOrderCommandHandler {
	return SettleOrderCommandHandler{
		uowFactory: uowFactory,
		payouts:    payouts,
		notifier:   notifier,
	}
}

// Handle processes the settlement command.
func (h SettleOrderCommandHandler) Handle(ctx context.Context, cmd SettleOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.readOrder(ctx, cmd)
	if err != nil {
		return err
	}
	if err = aggregate.CanSettle(); err != nil {
		return err
	}

	transactionID, err := h.payouts.Release(ctx, payoutDestination(aggregate), aggregate.Settlement().NetAmount())
	if err != nil {
		return err
	}

	if err = h.commitSettlement(ctx, cmd, transactionID); err != nil {
		return err
	}

	// Fire-and-forget: a failed notification never unwinds a settlement.
	_ = h.notifier.Notify(ctx, payoutDestination(aggregate),
		fmt.Sprintf("order %s settled, payout %s", aggregate.Number(), transactionID))

	return nil
}

func (h SettleOrderCommandHandler) readOrder(ctx context.Context, cmd SettleOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().Get(ctx, cmd.OrderID())
}

func (h SettleOrderCommandHandler) commitSettlement(ctx context.Context, cmd SettleOrderCommand, transactionID string) error {
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

	if err = aggregate.Settle(transactionID); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// payoutDestination derives the provider account reference for the order's
// seller side. Multi-seller orders settle to the first line item's seller;
// splitting a payout across sellers is the provider's concern, not ours.
func payoutDestination(aggregate *order.Order) string {
	items := aggregate.Items()
	return fmt.Sprintf("seller:%s", items[0].SellerID())
}
