package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Builds the line items, derives the order total and settlement estimate, and
// persists the new order in Pending status together with its created event.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command. The order number is generated
// here; the settlement breakdown is computed by the aggregate from the items
// and channel.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		item, err := order.NewLineItem(spec.SellerID, spec.ProductID, spec.Quantity, spec.UnitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	destination, err := kernel.NewAddress(cmd.Street(), cmd.City(), cmd.Geopoint())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		generateOrderNumber(),
		cmd.BuyerID(),
		items,
		destination,
		cmd.Channel(),
		nil,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// generateOrderNumber builds a human-facing order number: a timestamp for
// rough ordering plus a short random suffix for uniqueness. The number ends
// up inside handoff tokens, so it stays short and URL-safe.
func generateOrderNumber() string {
	suffix := strings.SplitN(kernel.NewUUID().String(), "-", 2)[0]
	return fmt.Sprintf("ORD-%d-%s", time.Now().Unix(), suffix)
}
