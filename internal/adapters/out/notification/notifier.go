// Package notification provides the outbound notification adapter. The log
// notifier writes settlement and lifecycle notices to structured logs; a real
// deployment would swap in an email or SMS provider behind the same port.
package notification

import (
	"context"
	"log/slog"
)

// LogNotifier implements ports.Notifier by emitting structured log records.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Notify records the event for the recipient. Never fails.
func (n *LogNotifier) Notify(ctx context.Context, recipient, event string) error {
	n.logger.InfoContext(ctx, "notification sent", "recipient", recipient, "event", event)
	return nil
}
