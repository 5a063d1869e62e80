package ports

import (
	"context"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/agent"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent
// aggregates, including their custody ledger (active deliveries and deposits).
//
// Update follows the same optimistic concurrency protocol as the order
// repository: a stale version fails with errs.ConflictError and is retriable.
type AgentRepository interface {
	// Add persists a new agent aggregate with an empty ledger.
	Add(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Update persists changes to an existing agent aggregate under the
	// optimistic version check. Ledger entries and deposits are written in the
	// same transaction as the agent row.
	Update(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Get retrieves an agent aggregate with its complete ledger.
	Get(ctx context.Context, id kernel.UUID) (*agent.DeliveryAgent, error)

	// GetAllWithPendingDeposits retrieves agents holding at least one deposit
	// that awaits back-office review. Used by the deposit audit sweep.
	GetAllWithPendingDeposits(ctx context.Context) ([]*agent.DeliveryAgent, error)
}
