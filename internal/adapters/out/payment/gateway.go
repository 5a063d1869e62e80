// Package payment provides the sandbox payment gateway adapter. The sandbox
// is deterministic: whether a capture succeeds depends only on the request,
// never on randomness, so every test run and every retry sees the same
// outcome.
package payment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/ports"
)

// declineMarker is the amount suffix the sandbox treats as a declined card.
// Charging an amount ending in 99 minor units simulates a gateway decline.
const declineMarker = 99

// SandboxGateway implements ports.PaymentCapture and ports.Payout against no
// real provider. References are derived from the request so a replayed call
// produces the same reference instead of a second charge.
type SandboxGateway struct {
	logger *slog.Logger
}

// NewSandboxGateway creates the sandbox payment gateway.
func NewSandboxGateway(logger *slog.Logger) *SandboxGateway {
	return &SandboxGateway{
		logger: logger.With("component", "payment_gateway"),
	}
}

// Authorize captures the buyer's payment. A declined charge is reported in
// the result with a nil error; errors are reserved for transport failures.
func (g *SandboxGateway) Authorize(
	ctx context.Context,
	orderID kernel.UUID,
	amount int64,
	channel kernel.PaymentChannel,
) (ports.PaymentCaptureResult, error) {
	if amount%100 == declineMarker {
		g.logger.WarnContext(ctx, "payment declined",
			"order_id", orderID.String(), "amount", amount, "channel", channel.String())
		return ports.PaymentCaptureResult{Status: ports.CaptureFailed}, nil
	}

	reference := fmt.Sprintf("PAY-%s", fingerprint(orderID.String(), amount))
	g.logger.InfoContext(ctx, "payment captured",
		"order_id", orderID.String(), "amount", amount,
		"channel", channel.String(), "reference", reference)

	return ports.PaymentCaptureResult{
		Status:    ports.CaptureCompleted,
		Reference: reference,
	}, nil
}

// Release pays the destination account and returns the transaction id.
func (g *SandboxGateway) Release(ctx context.Context, destination string, amount int64) (string, error) {
	transactionID := fmt.Sprintf("TXN-%s", fingerprint(destination, amount))
	g.logger.InfoContext(ctx, "payout released",
		"destination", destination, "amount", amount, "transaction_id", transactionID)
	return transactionID, nil
}

func fingerprint(key string, amount int64) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%d", key, amount))
	return hex.EncodeToString(sum[:6])
}
