package ports

import (
	"context"
)

// Notifier is the outbound capability for telling a party about an order
// event. Notification is fire-and-forget: failures are logged by the
// implementation and never block or fail the operation that triggered them.
type Notifier interface {
	Notify(ctx context.Context, recipient string, event string) error
}
