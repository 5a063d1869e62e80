package order

import (
	"errors"
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/services"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an Order that was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrLineItemsAreRequired is returned when attempting to create an order without line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrAgentAlreadyAssigned is returned when assigning an agent to an order that already has one.
	ErrAgentAlreadyAssigned = errors.New("order already has an assigned delivery agent")
	// ErrAgentNotAssigned is returned when a handoff operation requires an assigned agent.
	ErrAgentNotAssigned = errors.New("order has no assigned delivery agent")
	// ErrAgentMismatch is returned when a handoff operation is attempted by an agent
	// other than the one assigned to the order.
	ErrAgentMismatch = errors.New("delivery agent is not assigned to this order")
	// ErrHandoffVerificationFailed is returned when a presented handoff token does not
	// verify against the order's live state.
	ErrHandoffVerificationFailed = errors.New("handoff token does not verify against the order")
	// ErrPaymentNotCaptured is returned when confirming a prepaid order whose payment
	// has not been captured yet.
	ErrPaymentNotCaptured = errors.New("payment must be captured before the order can be confirmed")
	// ErrCancelAfterCapture is returned when cancelling an order whose payment was already captured.
	ErrCancelAfterCapture = errors.New("order cannot be cancelled after payment capture")
	// ErrCancelAfterAssignment is returned when cancelling an order that already has an agent.
	ErrCancelAfterAssignment = errors.New("order cannot be cancelled after agent assignment")
)

// Order is the aggregate root for a marketplace purchase moving through
// fulfillment and settlement. It owns the order lifecycle from placement
// through payment capture, physical handoff, delivery and final value
// settlement.
//
// Order maintains these invariants:
//   - At least one valid line item; the total is the sum of line subtotals
//     and never drifts from them.
//   - The settlement breakdown (commission, fee, net) is recomputed whenever
//     the inputs change, so net = total - commission - fee always holds.
//   - Status, payment status and commission status only move along their
//     defined state machines; illegal moves are rejected, never coerced.
//   - At most one delivery agent; handoff operations require the assigned
//     agent and a token that verifies against live order state.
//   - Every state change appends a domain Event; persistence flushes the
//     events in the same transaction as the new order state.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID
	// number is the human-facing order number (e.g. printed on the handoff QR)
	number string
	// buyerID references the purchasing business
	buyerID kernel.UUID
	// items are the purchased line items (at least one)
	items []LineItem
	// destination is the delivery address
	destination kernel.Address
	// channel is the payment channel chosen at placement
	channel kernel.PaymentChannel
	// totalAmount is the order total in minor currency units
	totalAmount int64
	// settlement is the commission/fee/net breakdown for the current total and channel
	settlement services.Settlement
	// status is the fulfillment state
	status Status
	// paymentStatus tracks capture and release of the buyer's money
	paymentStatus PaymentStatus
	// commissionStatus tracks whether the platform commission was collected
	commissionStatus CommissionStatus
	// agentID is the assigned delivery agent (nil if unassigned)
	agentID *kernel.UUID
	// paymentReference is the capture reference from the payment provider
	paymentReference string
	// payoutReference is the release transaction id from the payout provider
	payoutReference string

	paidAt            *time.Time
	deliveredAt       *time.Time
	paymentReleasedAt *time.Time

	// version is the optimistic concurrency token managed by the repository
	version int

	// events are the uncommitted domain events appended by transitions
	events []Event

	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with the given line items and computes its
// totals and settlement breakdown. This is the only way to place a valid
// order; all business invariants are established here.
//
// Parameters:
//   - id: Unique identifier for the order
//   - number: Human-facing order number (non-empty; generated by the caller)
//   - buyerID: Identifier of the purchasing business
//   - items: Line items (at least one, each validated)
//   - destination: Delivery address
//   - channel: Payment channel chosen at placement
//   - fees: Fee schedule used for the settlement estimate (nil selects the default)
//
// Returns:
//   - *Order: The placed order in Pending status with an order.created event appended
//   - error: Aggregated validation error if any parameter is invalid
//
// The order total is the sum of line item subtotals; the settlement breakdown
// is computed immediately so commission and net are never stale.
func NewOrder(
	id kernel.UUID,
	number string,
	buyerID kernel.UUID,
	items []LineItem,
	destination kernel.Address,
	channel kernel.PaymentChannel,
	fees services.FeeSchedule,
) (*Order, error) {
	order := &Order{
		status:           StatusPending,
		paymentStatus:    PaymentPending,
		commissionStatus: CommissionPending,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setBuyerID(buyerID),
		order.setItems(items),
		order.setDestination(destination),
		order.setChannel(channel),
	); err != nil {
		return nil, err
	}

	if err := order.Reprice(fees); err != nil {
		return nil, err
	}

	order.raise(EventCreated, order.buyerID.String())
	return order, nil
}

// RestoreOrderParams carries the persisted state needed to reconstruct an
// Order aggregate. Fields mirror the orders table row plus its line items.
type RestoreOrderParams struct {
	ID                kernel.UUID
	Number            string
	BuyerID           kernel.UUID
	Items             []LineItem
	Destination       kernel.Address
	Channel           kernel.PaymentChannel
	Settlement        services.Settlement
	Status            Status
	PaymentStatus     PaymentStatus
	CommissionStatus  CommissionStatus
	AgentID           *kernel.UUID
	PaymentReference  string
	PayoutReference   string
	PaidAt            *time.Time
	DeliveredAt       *time.Time
	PaymentReleasedAt *time.Time
	Version           int
}

// RestoreOrder reconstructs an Order from persistent storage. Unlike NewOrder
// it does not recompute the settlement or append events; the restored order
// behaves identically to one that lived through the same transitions.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setNumber(params.Number),
		order.setBuyerID(params.BuyerID),
		order.setItems(params.Items),
		order.setDestination(params.Destination),
		order.setChannel(params.Channel),
		order.setSettlement(params.Settlement),
		order.setStatus(params.Status),
		order.setPaymentStatus(params.PaymentStatus),
		order.setCommissionStatus(params.CommissionStatus),
		order.setAgentID(params.AgentID),
	); err != nil {
		return nil, err
	}

	order.paymentReference = params.PaymentReference
	order.payoutReference = params.PayoutReference
	order.paidAt = params.PaidAt
	order.deliveredAt = params.DeliveredAt
	order.paymentReleasedAt = params.PaymentReleasedAt
	order.version = params.Version

	return order, nil
}

// Validate ensures the Order was properly constructed through one of its
// constructors. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order number.
func (o *Order) Number() string {
	return o.number
}

// BuyerID returns the purchasing business identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Destination returns the delivery address.
func (o *Order) Destination() kernel.Address {
	return o.destination
}

// Channel returns the payment channel chosen at placement.
func (o *Order) Channel() kernel.PaymentChannel {
	return o.channel
}

// TotalAmount returns the order total in minor currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// Settlement returns the commission/fee/net breakdown for the current total.
func (o *Order) Settlement() services.Settlement {
	return o.settlement
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CommissionStatus returns the current commission status.
func (o *Order) CommissionStatus() CommissionStatus {
	return o.commissionStatus
}

// Agent returns the assigned delivery agent's ID, or nil if unassigned.
func (o *Order) Agent() *kernel.UUID {
	return o.agentID
}

// PaymentReference returns the capture reference from the payment provider.
func (o *Order) PaymentReference() string {
	return o.paymentReference
}

// PayoutReference returns the release transaction id from the payout provider.
func (o *Order) PayoutReference() string {
	return o.payoutReference
}

// PaidAt returns when the payment was captured, or nil.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// PaymentReleasedAt returns when the seller payout was released, or nil.
func (o *Order) PaymentReleasedAt() *time.Time {
	return o.paymentReleasedAt
}

// Version returns the optimistic concurrency token loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// Reprice recomputes the settlement breakdown from the current total and
// payment channel. It is invoked at placement and must be invoked again by
// any operation that changes the settlement inputs, keeping the invariant
// net = total - commission - fee.
func (o *Order) Reprice(fees services.FeeSchedule) error {
	settlement, err := services.ComputeSettlement(o.totalAmount, o.channel, fees)
	if err != nil {
		return err
	}

	o.settlement = settlement
	return nil
}

// ConfirmPayment records a successful payment capture for a prepaid order.
//
// Business rules:
//   - The order must still be Pending (capture happens before confirmation).
//   - The payment status must move Pending → Completed.
//   - The capture reference and timestamp are recorded for reconciliation.
func (o *Order) ConfirmPayment(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	if o.status != StatusPending {
		return errs.NewIllegalTransitionError("order status", o.status.String(), StatusPending.String())
	}

	newPayment, err := o.paymentStatus.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.paymentStatus = newPayment
	o.paymentReference = reference
	o.paidAt = &now

	o.raise(EventPaymentCaptured, "payment-provider")
	return nil
}

// Confirm moves the order from Pending to Confirmed, making it eligible for
// agent assignment.
//
// Business rules:
//   - Prepaid orders require a captured payment first.
//   - Cash-on-delivery orders confirm without capture; the money is collected
//     at the doorstep.
func (o *Order) Confirm() error {
	if o.paymentStatus != PaymentCompleted && !o.channel.IsCashOnDelivery() {
		return ErrPaymentNotCaptured
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.raise(EventConfirmed, "system")
	return nil
}

// AssignAgent assigns a delivery agent to a confirmed order. An order carries
// at most one agent; racing assignments are resolved by the repository's
// optimistic version check, so the first commit wins and the loser retries.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if o.agentID != nil {
		return ErrAgentAlreadyAssigned
	}
	if o.status != StatusConfirmed {
		return errs.NewIllegalTransitionError("order status", o.status.String(), StatusConfirmed.String())
	}

	o.agentID = &agentID
	o.raise(EventAgentAssigned, agentID.String())
	return nil
}

// IssueHandoff derives the handoff token for this order. The token is a
// deterministic function of the order number and buyer; re-issuing yields
// the same token. Issuance is only meaningful while a physical exchange can
// still happen (Confirmed or InTransit).
func (o *Order) IssueHandoff() (HandoffToken, error) {
	if !o.status.PermitsHandoff() {
		return HandoffToken{}, errs.NewIllegalTransitionError("order status", o.status.String(), StatusConfirmed.String())
	}
	return IssueHandoffToken(o.number, o.buyerID)
}

// VerifyHandoff reports whether a presented token verifies against the
// order's live state: it must encode this order's number/buyer pair and the
// order must currently permit a handoff. Tokens are never accepted from a
// cache; a changed pair implicitly invalidates previously issued tokens.
func (o *Order) VerifyHandoff(token HandoffToken) bool {
	if err := token.Validate(); err != nil {
		return false
	}
	return token.Matches(o.number, o.buyerID) && o.status.PermitsHandoff()
}

// ConfirmPickup records the physical handoff of the goods to the assigned
// delivery agent and moves the order into transit.
//
// Business rules:
//   - The order must have an assigned agent, and the confirming agent must be it.
//   - The presented handoff token must verify against live order state.
//   - The status must move Confirmed → InTransit.
func (o *Order) ConfirmPickup(token HandoffToken, agentID kernel.UUID) error {
	if err := o.requireAgent(agentID); err != nil {
		return err
	}
	if !o.VerifyHandoff(token) {
		return ErrHandoffVerificationFailed
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.raise(EventPickupConfirmed, agentID.String())
	return nil
}

// ConfirmDelivery records delivery of the goods by the assigned agent.
//
// Business rules:
//   - Only the assigned agent can confirm delivery.
//   - The status must move InTransit → Delivered and the delivery timestamp is set.
//   - For cash-on-delivery the payment is considered captured at the doorstep,
//     so the payment status completes here. The agent's custody ledger entry is
//     recorded by the caller in the same transaction; a ledger rejection must
//     abort the whole transition.
func (o *Order) ConfirmDelivery(agentID kernel.UUID) error {
	if err := o.requireAgent(agentID); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	if o.channel.IsCashOnDelivery() {
		newPayment, err := o.paymentStatus.Complete()
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		o.paymentStatus = newPayment
		o.paidAt = &now
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.deliveredAt = &now

	o.raise(EventDelivered, agentID.String())
	return nil
}

// CanSettle checks the settlement preconditions without transitioning:
// the order must be Delivered with a captured, unreleased payment. Handlers
// call this before the payout request so money never leaves for an order
// that cannot settle.
func (o *Order) CanSettle() error {
	if _, err := o.status.Settle(); err != nil {
		return err
	}
	if _, err := o.paymentStatus.Release(); err != nil {
		return err
	}
	return nil
}

// Settle releases the seller's net amount and closes the order.
//
// Business rules:
//   - The status must move Delivered → Settled.
//   - The payment status must move Completed → Released; a payment that was
//     already released fails this guard, so a payout is never recorded twice.
//   - The commission is collected in the same transition.
//
// The actual payout call happens outside any transaction; callers re-read the
// order and re-run this guard before committing.
func (o *Order) Settle(payoutReference string) error {
	if payoutReference == "" {
		return errs.NewValueIsRequiredError("payoutReference")
	}

	newStatus, err := o.status.Settle()
	if err != nil {
		return err
	}
	newPayment, err := o.paymentStatus.Release()
	if err != nil {
		return err
	}
	newCommission, err := o.commissionStatus.Collect()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.paymentStatus = newPayment
	o.commissionStatus = newCommission
	o.payoutReference = payoutReference
	o.paymentReleasedAt = &now

	o.raise(EventSettled, "settlement")
	return nil
}

// Cancel voids the order before fulfillment started.
//
// Business rules:
//   - Only Pending or Confirmed orders can be cancelled.
//   - A captured payment blocks cancellation (refund is the escape hatch after delivery).
//   - An assigned agent blocks cancellation (the goods may already be moving).
func (o *Order) Cancel() error {
	if o.paymentStatus != PaymentPending {
		return ErrCancelAfterCapture
	}
	if o.agentID != nil {
		return ErrCancelAfterAssignment
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.raise(EventCancelled, o.buyerID.String())
	return nil
}

// Refund reverses a delivered order. The status moves Delivered → Refunded
// and the captured payment is marked refunded. Refund after settlement is not
// supported; the released payout cannot be clawed back here.
func (o *Order) Refund() error {
	newStatus, err := o.status.Refund()
	if err != nil {
		return err
	}
	newPayment, err := o.paymentStatus.Refund()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = newPayment
	o.raise(EventRefunded, "system")
	return nil
}

// Events returns the uncommitted domain events appended by transitions since
// the order was constructed or last cleared.
func (o *Order) Events() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

// ClearEvents drops the uncommitted events. Called by the repository after
// the events were persisted in the same transaction as the order state.
func (o *Order) ClearEvents() {
	o.events = nil
}

func (o *Order) raise(eventType EventType, actor string) {
	o.events = append(o.events, newEvent(eventType, o.id, actor))
}

func (o *Order) requireAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	if o.agentID == nil {
		return ErrAgentNotAssigned
	}
	if !o.agentID.IsEqual(agentID) {
		return ErrAgentMismatch
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerId", err)
	}
	o.buyerID = buyerID
	return nil
}

// setItems validates the line items and derives the order total from them.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrLineItemsAreRequired
	}

	var total int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Subtotal()
	}

	o.items = items
	o.totalAmount = total
	return nil
}

func (o *Order) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setChannel(channel kernel.PaymentChannel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	o.channel = channel
	return nil
}

func (o *Order) setSettlement(settlement services.Settlement) error {
	if err := settlement.Validate(); err != nil {
		return err
	}
	o.settlement = settlement
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setCommissionStatus(status CommissionStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.commissionStatus = status
	return nil
}

func (o *Order) setAgentID(agentID *kernel.UUID) error {
	if agentID == nil {
		return nil
	}
	if err := agentID.Validate(); err != nil {
		return err
	}
	o.agentID = agentID
	return nil
}
