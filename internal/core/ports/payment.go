package ports

import (
	"context"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
)

// CaptureStatus is the outcome of a payment capture attempt.
type CaptureStatus string

const (
	// CaptureCompleted means the provider holds the buyer's money.
	CaptureCompleted CaptureStatus = "completed"
	// CaptureFailed means the capture was declined; the order stays Pending.
	CaptureFailed CaptureStatus = "failed"
)

// PaymentCaptureResult is the provider's answer to a capture request.
type PaymentCaptureResult struct {
	Status    CaptureStatus
	Reference string
}

// PaymentCapture is the outbound capability for capturing a buyer's payment
// on prepaid channels. Implementations talk to an external provider; calls
// must never run inside a database transaction.
type PaymentCapture interface {
	// Authorize attempts to capture the order amount on the given channel.
	// A declined capture returns CaptureFailed with a nil error; errors are
	// reserved for transport/provider failures.
	Authorize(ctx context.Context, orderID kernel.UUID, amount int64, channel kernel.PaymentChannel) (PaymentCaptureResult, error)
}

// Payout is the outbound capability for releasing a seller's net amount.
// Payouts are not idempotent on the provider side; callers guard against
// double release with the order's payment state machine and re-verify the
// guard before committing.
type Payout interface {
	// Release transfers the amount to the destination account and returns the
	// provider's transaction identifier.
	Release(ctx context.Context, destination string, amount int64) (string, error)
}
