// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent persistence. The package implements the repository pattern
// for the agent aggregate, converting between the domain model and the
// agents, active_deliveries and deposits tables.
package agentrepo

import (
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/agent"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database row for a delivery agent aggregate. The
// running custody totals are stored alongside the balance so the ledger
// invariant (balance = collected - deposited) is auditable from the row
// itself; the version column backs the optimistic concurrency check.
type AgentDTO struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name             string              `gorm:"type:varchar(255);not null"`
	Verified         bool                `gorm:"not null"`
	CashLimit        int64               `gorm:"not null"`
	CashBalance      int64               `gorm:"not null"`
	TotalCollected   int64               `gorm:"not null"`
	TotalDeposited   int64               `gorm:"not null"`
	Version          int                 `gorm:"not null"`
	ActiveDeliveries []ActiveDeliveryDTO `gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE"`
	Deposits         []DepositDTO        `gorm:"foreignKey:AgentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for agent rows.
func (AgentDTO) TableName() string {
	return "agents"
}

// ActiveDeliveryDTO represents one entry on the agent's delivery ledger.
type ActiveDeliveryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentID         uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Stage           int       `gorm:"not null"`
	CollectedAmount int64     `gorm:"not null"`
	AssignedAt      time.Time `gorm:"not null"`
	DeliveredAt     *time.Time
}

// TableName specifies the database table name for delivery ledger entries.
func (ActiveDeliveryDTO) TableName() string {
	return "active_deliveries"
}

// DepositDTO represents one recorded cash hand-in. Rows are inserted when the
// agent records the deposit and touched once more when back office issues the
// verdict.
type DepositDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgentID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount      int64     `gorm:"not null"`
	Evidence    string    `gorm:"type:varchar(255);not null"`
	Status      int       `gorm:"not null"`
	VerifiedBy  string    `gorm:"type:varchar(128)"`
	RecordedAt  time.Time `gorm:"not null"`
	FinalizedAt *time.Time
}

// TableName specifies the database table name for deposits.
func (DepositDTO) TableName() string {
	return "deposits"
}

// fromDomain converts an agent aggregate to its database representation.
func fromDomain(aggregate *agent.DeliveryAgent) AgentDTO {
	agentID := aggregate.ID().Bytes()

	deliveries := make([]ActiveDeliveryDTO, 0, len(aggregate.ActiveDeliveries()))
	for _, delivery := range aggregate.ActiveDeliveries() {
		deliveries = append(deliveries, ActiveDeliveryDTO{
			ID:              delivery.ID().Bytes(),
			AgentID:         agentID,
			OrderID:         delivery.OrderID().Bytes(),
			Stage:           int(delivery.Stage()),
			CollectedAmount: delivery.CollectedAmount(),
			AssignedAt:      delivery.AssignedAt(),
			DeliveredAt:     delivery.DeliveredAt(),
		})
	}

	deposits := make([]DepositDTO, 0, len(aggregate.Deposits()))
	for _, deposit := range aggregate.Deposits() {
		deposits = append(deposits, DepositDTO{
			ID:          deposit.ID().Bytes(),
			AgentID:     agentID,
			Amount:      deposit.Amount(),
			Evidence:    deposit.Evidence(),
			Status:      int(deposit.Status()),
			VerifiedBy:  deposit.VerifiedBy(),
			RecordedAt:  deposit.RecordedAt(),
			FinalizedAt: deposit.FinalizedAt(),
		})
	}

	return AgentDTO{
		ID:               agentID,
		Name:             aggregate.Name(),
		Verified:         aggregate.IsVerified(),
		CashLimit:        aggregate.CashLimit(),
		CashBalance:      aggregate.CashBalance(),
		TotalCollected:   aggregate.TotalCollected(),
		TotalDeposited:   aggregate.TotalDeposited(),
		Version:          aggregate.Version(),
		ActiveDeliveries: deliveries,
		Deposits:         deposits,
	}
}

// toDomain converts a database row to an agent aggregate using
// RestoreDeliveryAgent.
func toDomain(dto AgentDTO) (*agent.DeliveryAgent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveries := make([]*agent.ActiveDelivery, 0, len(dto.ActiveDeliveries))
	for _, deliveryDTO := range dto.ActiveDeliveries {
		deliveryID, dErr := kernel.UUIDFromBytes(deliveryDTO.ID[:])
		if dErr != nil {
			return nil, dErr
		}
		orderID, dErr := kernel.UUIDFromBytes(deliveryDTO.OrderID[:])
		if dErr != nil {
			return nil, dErr
		}
		delivery, dErr := agent.RestoreActiveDelivery(
			deliveryID, orderID,
			agent.DeliveryStage(deliveryDTO.Stage),
			deliveryDTO.CollectedAmount,
			deliveryDTO.AssignedAt,
			deliveryDTO.DeliveredAt,
		)
		if dErr != nil {
			return nil, dErr
		}
		deliveries = append(deliveries, delivery)
	}

	deposits := make([]*agent.Deposit, 0, len(dto.Deposits))
	for _, depositDTO := range dto.Deposits {
		depositID, dErr := kernel.UUIDFromBytes(depositDTO.ID[:])
		if dErr != nil {
			return nil, dErr
		}
		deposit, dErr := agent.RestoreDeposit(
			depositID,
			depositDTO.Amount,
			depositDTO.Evidence,
			agent.DepositStatus(depositDTO.Status),
			depositDTO.VerifiedBy,
			depositDTO.RecordedAt,
			depositDTO.FinalizedAt,
		)
		if dErr != nil {
			return nil, dErr
		}
		deposits = append(deposits, deposit)
	}

	return agent.RestoreDeliveryAgent(agent.RestoreDeliveryAgentParams{
		ID:               id,
		Name:             dto.Name,
		Verified:         dto.Verified,
		CashLimit:        dto.CashLimit,
		CashBalance:      dto.CashBalance,
		TotalCollected:   dto.TotalCollected,
		TotalDeposited:   dto.TotalDeposited,
		ActiveDeliveries: deliveries,
		Deposits:         deposits,
		Version:          dto.Version,
	})
}
