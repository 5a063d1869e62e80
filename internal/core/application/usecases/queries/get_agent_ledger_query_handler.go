package queries

import (
	"context"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/agent"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentLedgerQueryHandler reads an agent's custody ledger from the
// database for the back-office reconciliation view.
type GetAgentLedgerQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentLedgerQueryHandler creates a handler for agent ledger reads.
func NewGetAgentLedgerQueryHandler(db *gorm.DB) GetAgentLedgerQueryHandler {
	return GetAgentLedgerQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the agent
// does not exist.
func (h GetAgentLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetAgentLedgerQuery,
) (GetAgentLedgerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAgentLedgerQueryResponse{}, err
	}

	var row struct {
		ID             uuid.UUID
		Name           string
		Verified       bool
		CashLimit      int64
		CashBalance    int64
		TotalCollected int64
		TotalDeposited int64
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			verified,
			cash_limit,
			cash_balance,
			total_collected,
			total_deposited
		FROM agents
		WHERE id = ?
	`, query.AgentID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetAgentLedgerQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetAgentLedgerQueryResponse{}, errs.NewObjectNotFoundError("agent", query.AgentID().String())
	}

	agentID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetAgentLedgerQueryResponse{}, err
	}

	deliveries, err := h.loadDeliveries(ctx, query.AgentID())
	if err != nil {
		return GetAgentLedgerQueryResponse{}, err
	}
	deposits, err := h.loadDeposits(ctx, query.AgentID())
	if err != nil {
		return GetAgentLedgerQueryResponse{}, err
	}

	return GetAgentLedgerQueryResponse{
		AgentID:        agentID,
		Name:           row.Name,
		Verified:       row.Verified,
		CashLimit:      row.CashLimit,
		CashBalance:    row.CashBalance,
		Headroom:       row.CashLimit - row.CashBalance,
		TotalCollected: row.TotalCollected,
		TotalDeposited: row.TotalDeposited,
		Deliveries:     deliveries,
		Deposits:       deposits,
	}, nil
}

func (h GetAgentLedgerQueryHandler) loadDeliveries(
	ctx context.Context,
	agentID kernel.UUID,
) ([]LedgerDeliveryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			stage,
			collected_amount,
			assigned_at,
			delivered_at
		FROM active_deliveries
		WHERE agent_id = ?
		ORDER BY assigned_at
	`, agentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]LedgerDeliveryResponse, 0)
	for rows.Next() {
		var orderID uuid.UUID
		var stage int
		var resp LedgerDeliveryResponse

		err = rows.Scan(&orderID, &stage, &resp.CollectedAmount, &resp.AssignedAt, &resp.DeliveredAt)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = id
		resp.Stage = agent.DeliveryStage(stage).String()
		deliveries = append(deliveries, resp)
	}

	return deliveries, rows.Err()
}

func (h GetAgentLedgerQueryHandler) loadDeposits(
	ctx context.Context,
	agentID kernel.UUID,
) ([]LedgerDepositResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			amount,
			evidence,
			status,
			verified_by,
			recorded_at,
			finalized_at
		FROM deposits
		WHERE agent_id = ?
		ORDER BY recorded_at
	`, agentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deposits := make([]LedgerDepositResponse, 0)
	for rows.Next() {
		var depositID uuid.UUID
		var status int
		var resp LedgerDepositResponse

		err = rows.Scan(&depositID, &resp.Amount, &resp.Evidence, &status,
			&resp.VerifiedBy, &resp.RecordedAt, &resp.FinalizedAt)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(depositID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.DepositID = id
		resp.Status = agent.DepositStatus(status).String()
		deposits = append(deposits, resp)
	}

	return deposits, rows.Err()
}
