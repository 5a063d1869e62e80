package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the JSON envelope returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one position of a new order.
type LineItemRequest struct {
	SellerID  uuid.UUID `json:"seller_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
}

// CreateOrderRequest is the payload for placing a new order. Latitude and
// longitude are an optional navigation pin; provide both or neither.
type CreateOrderRequest struct {
	BuyerID   uuid.UUID         `json:"buyer_id"`
	Items     []LineItemRequest `json:"items"`
	Street    string            `json:"street"`
	City      string            `json:"city"`
	Latitude  *float64          `json:"latitude,omitempty"`
	Longitude *float64          `json:"longitude,omitempty"`
	Channel   string            `json:"channel"`
}

// CreateOrderResponse returns the identifier the order was created under.
type CreateOrderResponse struct {
	ID uuid.UUID `json:"id"`
}

// CreateAgentRequest is the payload for registering a delivery agent.
type CreateAgentRequest struct {
	Name      string `json:"name"`
	CashLimit int64  `json:"cash_limit"`
}

// CreateAgentResponse returns the identifier the agent was created under.
type CreateAgentResponse struct {
	ID uuid.UUID `json:"id"`
}

// AssignAgentRequest names the delivery agent for an order.
type AssignAgentRequest struct {
	AgentID uuid.UUID `json:"agent_id"`
}

// ConfirmPickupRequest carries the handoff token scanned at pickup.
type ConfirmPickupRequest struct {
	Token   string    `json:"token"`
	AgentID uuid.UUID `json:"agent_id"`
}

// StartTransitRequest identifies the agent starting the leg.
type StartTransitRequest struct {
	AgentID uuid.UUID `json:"agent_id"`
}

// ConfirmDeliveryRequest identifies the agent confirming physical delivery.
type ConfirmDeliveryRequest struct {
	AgentID uuid.UUID `json:"agent_id"`
}

// RecordDepositRequest is the payload for an agent's cash remittance.
type RecordDepositRequest struct {
	Amount   int64  `json:"amount"`
	Evidence string `json:"evidence"`
}

// RecordDepositResponse returns the identifier of the recorded deposit.
type RecordDepositResponse struct {
	ID uuid.UUID `json:"id"`
}

// ReviewDepositRequest carries the back-office verdict on a deposit.
type ReviewDepositRequest struct {
	Verifier string `json:"verifier"`
	Verdict  string `json:"verdict"`
}

// OrderItem is one line of an order read model.
type OrderItem struct {
	SellerID  uuid.UUID `json:"seller_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	Subtotal  int64     `json:"subtotal"`
}

// OrderEvent is one entry of an order's audit timeline.
type OrderEvent struct {
	Type       string    `json:"type"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Order is the full order read model, including the settlement breakdown
// and the event timeline.
type Order struct {
	ID                uuid.UUID    `json:"id"`
	Number            string       `json:"number"`
	BuyerID           uuid.UUID    `json:"buyer_id"`
	AgentID           *uuid.UUID   `json:"agent_id,omitempty"`
	Street            string       `json:"street"`
	City              string       `json:"city"`
	Channel           string       `json:"channel"`
	TotalAmount       int64        `json:"total_amount"`
	CommissionPercent int          `json:"commission_percent"`
	CommissionAmount  int64        `json:"commission_amount"`
	EstimatedFee      int64        `json:"estimated_fee"`
	NetAmount         int64        `json:"net_amount"`
	Status            string       `json:"status"`
	PaymentStatus     string       `json:"payment_status"`
	CommissionStatus  string       `json:"commission_status"`
	PaymentReference  string       `json:"payment_reference,omitempty"`
	PayoutReference   string       `json:"payout_reference,omitempty"`
	Items             []OrderItem  `json:"items"`
	Events            []OrderEvent `json:"events"`
}

// OrderSummary is the compact order listing row.
type OrderSummary struct {
	ID          uuid.UUID `json:"id"`
	Number      string    `json:"number"`
	Channel     string    `json:"channel"`
	TotalAmount int64     `json:"total_amount"`
	NetAmount   int64     `json:"net_amount"`
	Status      string    `json:"status"`
}

// LedgerDelivery is one delivery entry of the agent ledger view.
type LedgerDelivery struct {
	OrderID         uuid.UUID  `json:"order_id"`
	Stage           string     `json:"stage"`
	CollectedAmount int64      `json:"collected_amount"`
	AssignedAt      time.Time  `json:"assigned_at"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
}

// LedgerDeposit is one deposit record of the agent ledger view.
type LedgerDeposit struct {
	DepositID   uuid.UUID  `json:"deposit_id"`
	Amount      int64      `json:"amount"`
	Evidence    string     `json:"evidence"`
	Status      string     `json:"status"`
	VerifiedBy  string     `json:"verified_by,omitempty"`
	RecordedAt  time.Time  `json:"recorded_at"`
	FinalizedAt *time.Time `json:"finalized_at,omitempty"`
}

// AgentLedger is the delivery agent's cash accounting view.
type AgentLedger struct {
	AgentID        uuid.UUID        `json:"agent_id"`
	Name           string           `json:"name"`
	Verified       bool             `json:"verified"`
	CashLimit      int64            `json:"cash_limit"`
	CashBalance    int64            `json:"cash_balance"`
	Headroom       int64            `json:"headroom"`
	TotalCollected int64            `json:"total_collected"`
	TotalDeposited int64            `json:"total_deposited"`
	Deliveries     []LedgerDelivery `json:"deliveries"`
	Deposits       []LedgerDeposit  `json:"deposits"`
}
