package order

import (
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a state machine with defined transitions so orders follow the
// correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> InTransit ──> Delivered ──> Settled
//	   │            │                           │
//	   └────────────┴──> Cancelled              └──> Refunded
//
// Cancellation is only reachable before payment capture and agent assignment;
// refund is the exceptional branch out of Delivered. Settled, Cancelled, and
// Refunded are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status after buyer checkout, awaiting
	// payment capture (or confirmation for cash-on-delivery orders).
	StatusPending

	// StatusConfirmed indicates payment is captured (or deferred for cash on
	// delivery) and the order awaits a delivery agent.
	StatusConfirmed

	// StatusInTransit indicates the assigned agent confirmed pickup with a
	// valid handoff token and is carrying the order.
	StatusInTransit

	// StatusDelivered indicates the assigned agent confirmed physical
	// delivery; the order awaits settlement.
	StatusDelivered

	// StatusSettled indicates the seller payout was released and commission
	// collected. Terminal.
	StatusSettled

	// StatusCancelled indicates the order was cancelled before payment capture
	// and agent assignment. Terminal.
	StatusCancelled

	// StatusRefunded indicates a delivered order was refunded. Terminal.
	StatusRefunded
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusConfirmed: "Confirmed",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusSettled:   "Settled",
		StatusCancelled: "Cancelled",
		StatusRefunded:  "Refunded",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusConfirmed: "Confirmed",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusSettled:   "Settled",
		StatusCancelled: "Cancelled",
		StatusRefunded:  "Refunded",
	}
}

// Validate checks the Status value is one of the defined order states.
// Used when reconstructing orders from persistence or transport.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(StatusPending), int(StatusRefunded)))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its wire name ("Pending", "Confirmed",
// ...). Used when a status arrives as a transport filter parameter.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusSettled || s == StatusCancelled || s == StatusRefunded
}

// PermitsHandoff reports whether a handoff token may be issued or verified in
// this state. Handoff is only meaningful between confirmation and delivery.
func (s Status) PermitsHandoff() bool {
	return s == StatusConfirmed || s == StatusInTransit
}

// Confirm transitions Pending -> Confirmed.
// The payment guard (captured payment or cash-on-delivery channel) lives on
// the aggregate, which knows the payment status and channel.
func (s Status) Confirm() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewIllegalTransitionError("order status", s.String(), StatusConfirmed.String())
	}
	return StatusConfirmed, nil
}

// StartTransit transitions Confirmed -> InTransit. Requires an assigned agent
// and a verified handoff token, both enforced by the aggregate.
func (s Status) StartTransit() (Status, error) {
	if s != StatusConfirmed {
		return 0, errs.NewIllegalTransitionError("order status", s.String(), StatusInTransit.String())
	}
	return StatusInTransit, nil
}

// Deliver transitions InTransit -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewIllegalTransitionError("order status", s.String(), StatusDelivered.String())
	}
	return StatusDelivered, nil
}

// Settle transitions Delivered -> Settled.
func (s Status) Settle() (Status, error) {
	if s != StatusDelivered {
		return 0, errs.NewIllegalTransitionError("order status", s.String(), StatusSettled.String())
	}
	return StatusSettled, nil
}

// Cancel transitions Pending|Confirmed -> Cancelled. The aggregate additionally
// blocks cancellation after payment capture or agent assignment.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusConfirmed {
		return 0, errs.NewIllegalTransitionError("order status", s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}

// Refund transitions Delivered -> Refunded (exceptional branch).
func (s Status) Refund() (Status, error) {
	if s != StatusDelivered {
		return 0, errs.NewIllegalTransitionError("order status", s.String(), StatusRefunded.String())
	}
	return StatusRefunded, nil
}
