package order

import (
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
)

// PaymentStatus tracks the money side of an order independently of its
// fulfillment status: whether the buyer's payment was captured, whether the
// seller's payout was released, and whether the capture was refunded.
//
// Transitions:
//
//	PaymentPending ──> PaymentCompleted ──> PaymentReleased
//	                        │
//	                        └──> PaymentRefunded
//
// For gateway channels capture happens before order confirmation; for cash on
// delivery it happens at the physical handoff when cash changes hands.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means no payment has been captured yet.
	PaymentPending

	// PaymentCompleted means the buyer's payment was captured (gateway
	// confirmation or cash collected at delivery).
	PaymentCompleted

	// PaymentReleased means the seller payout went out. Terminal; the
	// settlement guard makes this unrepeatable.
	PaymentReleased

	// PaymentRefunded means a captured payment was returned to the buyer.
	PaymentRefunded
)

// getPaymentStatusStrings returns a map of PaymentStatus values to their names.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "Unknown",
		PaymentPending:   "Pending",
		PaymentCompleted: "Completed",
		PaymentReleased:  "Released",
		PaymentRefunded:  "Refunded",
	}
}

// Validate checks the PaymentStatus is one of the defined values.
func (p PaymentStatus) Validate() error {
	if p < PaymentPending || p > PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			errs.NewValueIsOutOfRangeError("paymentStatus", int(p), int(PaymentPending), int(PaymentRefunded)))
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions Pending -> Completed.
func (p PaymentStatus) Complete() (PaymentStatus, error) {
	if p != PaymentPending {
		return 0, errs.NewIllegalTransitionError("payment status", p.String(), PaymentCompleted.String())
	}
	return PaymentCompleted, nil
}

// Release transitions Completed -> Released. Releasing an already released
// payment fails, which is the double-payout guard.
func (p PaymentStatus) Release() (PaymentStatus, error) {
	if p != PaymentCompleted {
		return 0, errs.NewIllegalTransitionError("payment status", p.String(), PaymentReleased.String())
	}
	return PaymentReleased, nil
}

// Refund transitions Completed -> Refunded.
func (p PaymentStatus) Refund() (PaymentStatus, error) {
	if p != PaymentCompleted {
		return 0, errs.NewIllegalTransitionError("payment status", p.String(), PaymentRefunded.String())
	}
	return PaymentRefunded, nil
}

// CommissionStatus tracks whether the platform's commission on an order has
// been collected. Commission is collected as part of settlement: the payout
// releases the net amount and retains the commission.
type CommissionStatus int

const (
	// CommissionUnknown represents an invalid or undefined commission status.
	CommissionUnknown CommissionStatus = iota

	// CommissionPending means the commission has not been collected yet.
	CommissionPending

	// CommissionCollected means settlement retained the commission. Terminal.
	CommissionCollected
)

// Validate checks the CommissionStatus is one of the defined values.
func (c CommissionStatus) Validate() error {
	if c != CommissionPending && c != CommissionCollected {
		return errs.NewValueIsInvalidErrorWithCause("commissionStatus",
			errs.NewValueIsOutOfRangeError("commissionStatus", int(c), int(CommissionPending), int(CommissionCollected)))
	}
	return nil
}

// String returns the human-readable name of the commission status.
func (c CommissionStatus) String() string {
	switch c {
	case CommissionPending:
		return "Pending"
	case CommissionCollected:
		return "Collected"
	default:
		return "Unknown"
	}
}

// Collect transitions Pending -> Collected.
func (c CommissionStatus) Collect() (CommissionStatus, error) {
	if c != CommissionPending {
		return 0, errs.NewIllegalTransitionError("commission status", c.String(), CommissionCollected.String())
	}
	return CommissionCollected, nil
}
