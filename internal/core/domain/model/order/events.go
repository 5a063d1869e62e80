package order

import (
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
)

// EventType names a fact recorded on the order's timeline.
type EventType string

// Order lifecycle event types. The string values are stored as-is in the
// event log and must stay stable.
const (
	EventCreated         EventType = "order.created"
	EventPaymentCaptured EventType = "order.payment_captured"
	EventConfirmed       EventType = "order.confirmed"
	EventAgentAssigned   EventType = "order.agent_assigned"
	EventPickupConfirmed EventType = "order.pickup_confirmed"
	EventDelivered       EventType = "order.delivered"
	EventSettled         EventType = "order.settled"
	EventCancelled       EventType = "order.cancelled"
	EventRefunded        EventType = "order.refunded"
)

// Event is an append-only record of a state change on an order. Events are
// accumulated on the aggregate during a transition and flushed to storage in
// the same transaction that persists the new order state.
type Event struct {
	ID         kernel.UUID
	Type       EventType
	OrderID    kernel.UUID
	Actor      string
	OccurredAt time.Time
}

func newEvent(eventType EventType, orderID kernel.UUID, actor string) Event {
	return Event{
		ID:         kernel.NewUUID(),
		Type:       eventType,
		OrderID:    orderID,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}
}
