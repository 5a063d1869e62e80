package queries

import (
	"errors"
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var ErrGetAgentLedgerQueryIsNotConstructed = errors.New(
	"GetAgentLedgerQuery must be created via NewGetAgentLedgerQuery constructor",
)

// GetAgentLedgerQuery retrieves an agent's custody ledger: the running
// balance against the limit, the delivery entries and the deposit history.
type GetAgentLedgerQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentLedgerQuery creates a query for one agent's ledger view.
func NewGetAgentLedgerQuery(agentID kernel.UUID) (GetAgentLedgerQuery, error) {
	query := GetAgentLedgerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := agentID.Validate(); err != nil {
		return GetAgentLedgerQuery{}, err
	}
	query.agentID = agentID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentLedgerQueryIsNotConstructed)
}

// AgentID returns the agent whose ledger is requested.
func (q GetAgentLedgerQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAgentLedgerQueryResponse is the read model for an agent's custody
// ledger. Headroom is the cash the agent can still accept before hitting the
// limit.
type GetAgentLedgerQueryResponse struct {
	AgentID        kernel.UUID
	Name           string
	Verified       bool
	CashLimit      int64
	CashBalance    int64
	Headroom       int64
	TotalCollected int64
	TotalDeposited int64
	Deliveries     []LedgerDeliveryResponse
	Deposits       []LedgerDepositResponse
}

// LedgerDeliveryResponse is one delivery entry in the ledger view.
type LedgerDeliveryResponse struct {
	OrderID         kernel.UUID
	Stage           string
	CollectedAmount int64
	AssignedAt      time.Time
	DeliveredAt     *time.Time
}

// LedgerDepositResponse is one deposit record in the ledger view.
type LedgerDepositResponse struct {
	DepositID   kernel.UUID
	Amount      int64
	Evidence    string
	Status      string
	VerifiedBy  string
	RecordedAt  time.Time
	FinalizedAt *time.Time
}
