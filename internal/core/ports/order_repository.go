// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, and external capabilities
// (payment capture, payout, notification). These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update enforces optimistic concurrency: the write carries the version the
// aggregate was loaded with, and a concurrent modification since then fails
// with errs.ConflictError. Callers treat the conflict as retriable: re-read
// the aggregate, re-check the guard, try again.
//
// Both Add and Update persist the aggregate's uncommitted domain events to the
// event log within the same transaction, then clear them from the aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate and its events.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate under the
	// optimistic version check.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its human-facing number,
	// as encoded in handoff tokens.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// GetAllUnsettledDelivered retrieves delivered orders whose payout was not
	// released yet. Used by the settlement sweep.
	GetAllUnsettledDelivered(ctx context.Context) ([]*order.Order, error)
}
