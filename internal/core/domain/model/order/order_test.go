package order_test

import (
	"testing"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/services"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("12 Market Street", "Kampala", nil)
	require.NoError(t, err)
	return address
}

func validItems(t *testing.T) []order.LineItem {
	t.Helper()
	first, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 2, 3000)
	require.NoError(t, err)
	second, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, 4000)
	require.NoError(t, err)
	return []order.LineItem{first, second}
}

func placedOrder(t *testing.T, channel kernel.PaymentChannel) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-42", kernel.NewUUID(),
		validItems(t), validAddress(t), channel, nil,
	)
	require.NoError(t, err)
	return o
}

func deliveredOrder(t *testing.T, channel kernel.PaymentChannel) (*order.Order, kernel.UUID) {
	t.Helper()
	o := placedOrder(t, channel)
	if !channel.IsCashOnDelivery() {
		require.NoError(t, o.ConfirmPayment("PAY-1"))
	}
	require.NoError(t, o.Confirm())

	agentID := kernel.NewUUID()
	require.NoError(t, o.AssignAgent(agentID))

	token, err := o.IssueHandoff()
	require.NoError(t, err)
	require.NoError(t, o.ConfirmPickup(token, agentID))
	require.NoError(t, o.ConfirmDelivery(agentID))
	return o, agentID
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a pending order and derive totals", func(t *testing.T) {
		id := kernel.NewUUID()
		buyerID := kernel.NewUUID()
		items := validItems(t)

		o, err := order.NewOrder(id, "ORD-42", buyerID, items, validAddress(t), kernel.ChannelCard, nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "ORD-42", o.Number())
		assert.True(t, o.BuyerID().IsEqual(buyerID))
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, order.CommissionPending, o.CommissionStatus())
		assert.Nil(t, o.Agent())
		assert.Equal(t, int64(10000), o.TotalAmount())

		// 3% commission on a card order, no mobile money fee.
		assert.Equal(t, int64(300), o.Settlement().CommissionAmount())
		assert.Equal(t, int64(0), o.Settlement().EstimatedFee())
		assert.Equal(t, int64(9700), o.Settlement().NetAmount())
	})

	t.Run("should price cash on delivery at the higher commission", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)

		assert.Equal(t, int64(10000), o.TotalAmount())
		assert.Equal(t, 4, o.Settlement().CommissionPercent())
		assert.Equal(t, int64(400), o.Settlement().CommissionAmount())
		assert.Equal(t, int64(9600), o.Settlement().NetAmount())
	})

	t.Run("should append a created event", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)

		events := o.Events()
		require.Len(t, events, 1)
		assert.Equal(t, order.EventCreated, events[0].Type)
		assert.True(t, events[0].OrderID.IsEqual(o.ID()))
		assert.Equal(t, o.BuyerID().String(), events[0].Actor)
		assert.False(t, events[0].OccurredAt.IsZero())
	})

	t.Run("should fail without line items", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "ORD-42", kernel.NewUUID(),
			nil, validAddress(t), kernel.ChannelCard, nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty order number", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), "", kernel.NewUUID(),
			validItems(t), validAddress(t), kernel.ChannelCard, nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "number")
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidAddress kernel.Address

		o, err := order.NewOrder(
			invalidID, "", kernel.NewUUID(),
			validItems(t), invalidAddress, kernel.PaymentChannel("wire"), nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "number")
		assert.Contains(t, err.Error(), "address must be created")
	})
}

func TestOrder_ConfirmPayment(t *testing.T) {
	t.Run("should record capture while pending", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)

		err := o.ConfirmPayment("PAY-123")

		require.NoError(t, err)
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		assert.Equal(t, "PAY-123", o.PaymentReference())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, order.StatusPending, o.Status())

		events := o.Events()
		assert.Equal(t, order.EventPaymentCaptured, events[len(events)-1].Type)
	})

	t.Run("should require a reference", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)

		err := o.ConfirmPayment("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a second capture", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)
		require.NoError(t, o.ConfirmPayment("PAY-1"))

		err := o.ConfirmPayment("PAY-2")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, "PAY-1", o.PaymentReference())
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should confirm after capture", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)
		require.NoError(t, o.ConfirmPayment("PAY-1"))

		err := o.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("should confirm cash on delivery without capture", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)

		err := o.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("should reject prepaid confirmation without capture", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)

		err := o.Confirm()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrPaymentNotCaptured)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_AssignAgent(t *testing.T) {
	t.Run("should assign an agent to a confirmed order", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())
		agentID := kernel.NewUUID()

		err := o.AssignAgent(agentID)

		require.NoError(t, err)
		require.NotNil(t, o.Agent())
		assert.True(t, o.Agent().IsEqual(agentID))

		events := o.Events()
		assert.Equal(t, order.EventAgentAssigned, events[len(events)-1].Type)
		assert.Equal(t, agentID.String(), events[len(events)-1].Actor)
	})

	t.Run("should reject a second assignment", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())
		first := kernel.NewUUID()
		require.NoError(t, o.AssignAgent(first))

		err := o.AssignAgent(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAgentAlreadyAssigned)
		assert.True(t, o.Agent().IsEqual(first))
	})

	t.Run("should reject assignment before confirmation", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)

		err := o.AssignAgent(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestOrder_Handoff(t *testing.T) {
	t.Run("should verify an issued token while confirmed", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())

		token, err := o.IssueHandoff()

		require.NoError(t, err)
		assert.True(t, o.VerifyHandoff(token))
	})

	t.Run("should not issue before confirmation", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)

		_, err := o.IssueHandoff()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("should reject another order's token", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())

		foreign, err := order.IssueHandoffToken("ORD-999", o.BuyerID())
		require.NoError(t, err)

		assert.False(t, o.VerifyHandoff(foreign))
	})

	t.Run("should reject a token for another buyer", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())

		foreign, err := order.IssueHandoffToken(o.Number(), kernel.NewUUID())
		require.NoError(t, err)

		assert.False(t, o.VerifyHandoff(foreign))
	})

	t.Run("should reject a stale token after delivery", func(t *testing.T) {
		o, _ := deliveredOrder(t, kernel.ChannelCard)

		stale, err := order.IssueHandoffToken(o.Number(), o.BuyerID())
		require.NoError(t, err)

		assert.False(t, o.VerifyHandoff(stale))
	})

	t.Run("should reject a zero-value token", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())

		assert.False(t, o.VerifyHandoff(order.HandoffToken{}))
	})
}

func TestOrder_ConfirmPickup(t *testing.T) {
	confirmedWithAgent := func(t *testing.T) (*order.Order, kernel.UUID) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())
		agentID := kernel.NewUUID()
		require.NoError(t, o.AssignAgent(agentID))
		return o, agentID
	}

	t.Run("should move the order into transit", func(t *testing.T) {
		o, agentID := confirmedWithAgent(t)
		token, err := o.IssueHandoff()
		require.NoError(t, err)

		err = o.ConfirmPickup(token, agentID)

		require.NoError(t, err)
		assert.Equal(t, order.StatusInTransit, o.Status())

		events := o.Events()
		assert.Equal(t, order.EventPickupConfirmed, events[len(events)-1].Type)
	})

	t.Run("should reject pickup by an unassigned agent", func(t *testing.T) {
		o, _ := confirmedWithAgent(t)
		token, err := o.IssueHandoff()
		require.NoError(t, err)

		err = o.ConfirmPickup(token, kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAgentMismatch)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})

	t.Run("should reject pickup without an assigned agent", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())
		token, err := o.IssueHandoff()
		require.NoError(t, err)

		err = o.ConfirmPickup(token, kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAgentNotAssigned)
	})

	t.Run("should reject pickup with a foreign token", func(t *testing.T) {
		o, agentID := confirmedWithAgent(t)
		foreign, err := order.IssueHandoffToken("ORD-999", o.BuyerID())
		require.NoError(t, err)

		err = o.ConfirmPickup(foreign, agentID)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrHandoffVerificationFailed)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})
}

func TestOrder_ConfirmDelivery(t *testing.T) {
	t.Run("should deliver and set the timestamp", func(t *testing.T) {
		o, _ := deliveredOrder(t, kernel.ChannelCard)

		assert.Equal(t, order.StatusDelivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
	})

	t.Run("should complete cash payment at the doorstep", func(t *testing.T) {
		o, _ := deliveredOrder(t, kernel.ChannelCashOnDelivery)

		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		require.NotNil(t, o.PaidAt())
	})

	t.Run("should reject delivery by another agent", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())
		agentID := kernel.NewUUID()
		require.NoError(t, o.AssignAgent(agentID))
		token, err := o.IssueHandoff()
		require.NoError(t, err)
		require.NoError(t, o.ConfirmPickup(token, agentID))

		err = o.ConfirmDelivery(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAgentMismatch)
		assert.Equal(t, order.StatusInTransit, o.Status())
	})

	t.Run("should reject delivery before transit", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())
		agentID := kernel.NewUUID()
		require.NoError(t, o.AssignAgent(agentID))

		err := o.ConfirmDelivery(agentID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestOrder_Settle(t *testing.T) {
	t.Run("should settle a delivered order", func(t *testing.T) {
		o, _ := deliveredOrder(t, kernel.ChannelCard)

		err := o.Settle("TXN-1")

		require.NoError(t, err)
		assert.Equal(t, order.StatusSettled, o.Status())
		assert.Equal(t, order.PaymentReleased, o.PaymentStatus())
		assert.Equal(t, order.CommissionCollected, o.CommissionStatus())
		assert.Equal(t, "TXN-1", o.PayoutReference())
		require.NotNil(t, o.PaymentReleasedAt())

		events := o.Events()
		assert.Equal(t, order.EventSettled, events[len(events)-1].Type)
	})

	t.Run("should never settle twice", func(t *testing.T) {
		o, _ := deliveredOrder(t, kernel.ChannelCard)
		require.NoError(t, o.Settle("TXN-1"))

		err := o.Settle("TXN-2")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, "TXN-1", o.PayoutReference())
	})

	t.Run("should reject settlement before delivery", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)

		err := o.Settle("TXN-1")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("should require a payout reference", func(t *testing.T) {
		o, _ := deliveredOrder(t, kernel.ChannelCard)

		err := o.Settle("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a pending order", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should cancel a confirmed unassigned cash order", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should block cancellation after capture", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)
		require.NoError(t, o.ConfirmPayment("PAY-1"))

		err := o.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCancelAfterCapture)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("should block cancellation after assignment", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCashOnDelivery)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.AssignAgent(kernel.NewUUID()))

		err := o.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCancelAfterAssignment)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})
}

func TestOrder_Refund(t *testing.T) {
	t.Run("should refund a delivered order", func(t *testing.T) {
		o, _ := deliveredOrder(t, kernel.ChannelCard)

		err := o.Refund()

		require.NoError(t, err)
		assert.Equal(t, order.StatusRefunded, o.Status())
		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
	})

	t.Run("should reject refund before delivery", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)

		err := o.Refund()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("should reject refund after settlement", func(t *testing.T) {
		o, _ := deliveredOrder(t, kernel.ChannelCard)
		require.NoError(t, o.Settle("TXN-1"))

		err := o.Refund()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestOrder_Events(t *testing.T) {
	t.Run("should record the full timeline in order", func(t *testing.T) {
		o, agentID := deliveredOrder(t, kernel.ChannelCard)
		require.NoError(t, o.Settle("TXN-1"))

		var types []order.EventType
		for _, event := range o.Events() {
			types = append(types, event.Type)
		}

		assert.Equal(t, []order.EventType{
			order.EventCreated,
			order.EventPaymentCaptured,
			order.EventConfirmed,
			order.EventAgentAssigned,
			order.EventPickupConfirmed,
			order.EventDelivered,
			order.EventSettled,
		}, types)

		for _, event := range o.Events() {
			assert.True(t, event.OrderID.IsEqual(o.ID()))
		}
		_ = agentID
	})

	t.Run("should drain events after clearing", func(t *testing.T) {
		o := placedOrder(t, kernel.ChannelCard)
		require.NotEmpty(t, o.Events())

		o.ClearEvents()

		assert.Empty(t, o.Events())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a persisted order without events", func(t *testing.T) {
		settlement, err := services.RestoreSettlement(3, 300, 0, 9700)
		require.NoError(t, err)
		agentID := kernel.NewUUID()

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:               kernel.NewUUID(),
			Number:           "ORD-42",
			BuyerID:          kernel.NewUUID(),
			Items:            validItems(t),
			Destination:      validAddress(t),
			Channel:          kernel.ChannelCard,
			Settlement:       settlement,
			Status:           order.StatusConfirmed,
			PaymentStatus:    order.PaymentCompleted,
			CommissionStatus: order.CommissionPending,
			AgentID:          &agentID,
			PaymentReference: "PAY-1",
			Version:          3,
		})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		assert.True(t, o.Agent().IsEqual(agentID))
		assert.Equal(t, 3, o.Version())
		assert.Empty(t, o.Events())
	})

	t.Run("should continue transitions after restore", func(t *testing.T) {
		settlement, err := services.RestoreSettlement(3, 300, 0, 9700)
		require.NoError(t, err)
		agentID := kernel.NewUUID()

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:               kernel.NewUUID(),
			Number:           "ORD-42",
			BuyerID:          kernel.NewUUID(),
			Items:            validItems(t),
			Destination:      validAddress(t),
			Channel:          kernel.ChannelCard,
			Settlement:       settlement,
			Status:           order.StatusConfirmed,
			PaymentStatus:    order.PaymentCompleted,
			CommissionStatus: order.CommissionPending,
			AgentID:          &agentID,
			Version:          1,
		})
		require.NoError(t, err)

		token, err := o.IssueHandoff()
		require.NoError(t, err)
		require.NoError(t, o.ConfirmPickup(token, agentID))

		assert.Equal(t, order.StatusInTransit, o.Status())
	})

	t.Run("should reject an invalid persisted status", func(t *testing.T) {
		settlement, err := services.RestoreSettlement(3, 300, 0, 9700)
		require.NoError(t, err)

		_, err = order.RestoreOrder(order.RestoreOrderParams{
			ID:            kernel.NewUUID(),
			Number:        "ORD-42",
			BuyerID:       kernel.NewUUID(),
			Items:         validItems(t),
			Destination:   validAddress(t),
			Channel:       kernel.ChannelCard,
			Settlement:    settlement,
			Status:        order.Status(99),
			PaymentStatus: order.PaymentCompleted,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject a zero-value order", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject a nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
