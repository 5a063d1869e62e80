package agentrepo

import (
	"context"
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/agent"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAgentRepository implements AgentRepository using GORM.
//
// Updates carry an optimistic version predicate on the agent row; ledger
// entries and deposits are upserted by primary key. A lost version race
// surfaces as errs.ConflictError.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agent to the database.
func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.DeliveryAgent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing agent under the optimistic version check. Child
// rows are upserted because a single operation may both advance a ledger
// entry and open a new one.
func (r *GormAgentRepository) Update(ctx context.Context, aggregate *agent.DeliveryAgent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	deliveries := dto.ActiveDeliveries
	deposits := dto.Deposits
	dto.ActiveDeliveries = nil
	dto.Deposits = nil

	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).Model(&AgentDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").Omit("ActiveDeliveries", "Deposits").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("agent", aggregate.ID().String())
	}

	if len(deliveries) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&deliveries).Error
		if err != nil {
			return err
		}
	}
	if len(deposits) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&deposits).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an agent by ID with the full ledger.
func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.DeliveryAgent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	err := r.db.WithContext(ctx).
		Preload("ActiveDeliveries").Preload("Deposits").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllWithPendingDeposits retrieves agents holding deposits that await
// back-office review.
func (r *GormAgentRepository) GetAllWithPendingDeposits(ctx context.Context) ([]*agent.DeliveryAgent, error) {
	pending := r.db.Model(&DepositDTO{}).
		Select("agent_id").
		Where("status = ?", int(agent.DepositPending))

	var dtos []AgentDTO
	err := r.db.WithContext(ctx).
		Preload("ActiveDeliveries").Preload("Deposits").
		Where("id IN (?)", pending).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*agent.DeliveryAgent, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}
