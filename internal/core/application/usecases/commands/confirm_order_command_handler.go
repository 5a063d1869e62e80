package commands

import (
	"context"
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/ports"
)

// ErrPaymentDeclined is returned when the payment provider declines the
// capture. The order stays Pending and the buyer may retry.
var ErrPaymentDeclined = errors.New("payment was declined by the provider")

// ConfirmOrderCommandHandler confirms a pending order. For prepaid channels it
// captures the buyer's payment first; cash-on-delivery orders confirm without
// capture and the money is collected at the doorstep.
//
// The capture call runs outside any database transaction: the handler reads
// the order, releases the read, talks to the provider, then re-reads the order
// and re-applies the domain guards before committing. A racing confirmation
// loses on the guard re-check or the repository's version predicate.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	payments   ports.PaymentCapture
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory, payments ports.PaymentCapture) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle processes the confirmation command.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.readOrder(ctx, cmd)
	if err != nil {
		return err
	}

	if aggregate.Channel().IsCashOnDelivery() {
		return h.confirm(ctx, cmd, "")
	}

	// Capture outside any transaction; no locks are held over provider latency.
	result, err := h.payments.Authorize(ctx, aggregate.ID(), aggregate.TotalAmount(), aggregate.Channel())
	if err != nil {
		return err
	}
	if result.Status != ports.CaptureCompleted {
		return ErrPaymentDeclined
	}

	return h.confirm(ctx, cmd, result.Reference)
}

// readOrder loads the order in a short-lived read transaction.
func (h ConfirmOrderCommandHandler) readOrder(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().Get(ctx, cmd.OrderID())
}

// confirm re-reads the order and applies the transitions under the optimistic
// version check. reference is empty for cash-on-delivery.
func (h ConfirmOrderCommandHandler) confirm(ctx context.Context, cmd ConfirmOrderCommand, reference string) error {
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

	if reference != "" {
		if err = aggregate.ConfirmPayment(reference); err != nil {
			return err
		}
	}
	if err = aggregate.Confirm(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
