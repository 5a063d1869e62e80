package commands_test

import (
	"testing"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/application/usecases/commands"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/agent"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func itemSpecs(t *testing.T) []commands.LineItemSpec {
	t.Helper()
	return []commands.LineItemSpec{
		{SellerID: kernel.NewUUID(), ProductID: kernel.NewUUID(), Quantity: 2, UnitPrice: 3000},
		{SellerID: kernel.NewUUID(), ProductID: kernel.NewUUID(), Quantity: 1, UnitPrice: 4000},
	}
}

func pendingOrder(t *testing.T, channel kernel.PaymentChannel) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, 10000)
	require.NoError(t, err)
	address, err := kernel.NewAddress("12 Market Street", "Kampala", nil)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), "ORD-42", kernel.NewUUID(),
		[]order.LineItem{item}, address, channel, nil,
	)
	require.NoError(t, err)
	aggregate.ClearEvents()
	return aggregate
}

func confirmedOrder(t *testing.T, channel kernel.PaymentChannel) *order.Order {
	t.Helper()
	aggregate := pendingOrder(t, channel)
	if !channel.IsCashOnDelivery() {
		require.NoError(t, aggregate.ConfirmPayment("PAY-1"))
	}
	require.NoError(t, aggregate.Confirm())
	return aggregate
}

func inTransitOrder(t *testing.T, channel kernel.PaymentChannel, agentID kernel.UUID) *order.Order {
	t.Helper()
	aggregate := confirmedOrder(t, channel)
	require.NoError(t, aggregate.AssignAgent(agentID))
	token, err := aggregate.IssueHandoff()
	require.NoError(t, err)
	require.NoError(t, aggregate.ConfirmPickup(token, agentID))
	return aggregate
}

func deliveredOrder(t *testing.T, channel kernel.PaymentChannel) *order.Order {
	t.Helper()
	agentID := kernel.NewUUID()
	aggregate := inTransitOrder(t, channel, agentID)
	require.NoError(t, aggregate.ConfirmDelivery(agentID))
	return aggregate
}

func verifiedAgent(t *testing.T, cashLimit int64) *agent.DeliveryAgent {
	t.Helper()
	rider, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Okello Ronald", cashLimit)
	require.NoError(t, err)
	rider.Verify()
	return rider
}

// agentCarrying returns a verified agent with an InTransit ledger entry for
// the order and the given held balance.
func agentCarrying(t *testing.T, orderID kernel.UUID, cashLimit, balance int64) *agent.DeliveryAgent {
	t.Helper()
	rider := verifiedAgent(t, cashLimit)
	require.NoError(t, rider.AcceptDelivery(orderID))
	require.NoError(t, rider.ConfirmPickup(orderID))
	require.NoError(t, rider.StartTransit(orderID))
	if balance > 0 {
		require.NoError(t, rider.Collect(orderID, balance))
	}
	return rider
}
