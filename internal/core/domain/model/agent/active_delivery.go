package agent

import (
	"errors"
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

// ErrActiveDeliveryIsNotConstructed is returned when using an improperly
// initialized ActiveDelivery.
var ErrActiveDeliveryIsNotConstructed = errors.New("ActiveDelivery must be created via NewActiveDelivery constructor")

// ActiveDelivery is one delivery entry on an agent's ledger. It is created
// when the agent takes an order, advanced through pickup and transit, and
// closed on delivery. For cash orders it records the amount collected at the
// doorstep so custody can be reconciled against deposits later.
type ActiveDelivery struct {
	id      kernel.UUID
	orderID kernel.UUID
	stage   DeliveryStage
	// collectedAmount is the cash taken at delivery, 0 for prepaid orders
	collectedAmount int64
	assignedAt      time.Time
	deliveredAt     *time.Time

	guard guard.ConstructorGuard
}

// NewActiveDelivery creates a ledger entry for a freshly assigned order.
func NewActiveDelivery(id, orderID kernel.UUID) (*ActiveDelivery, error) {
	delivery := &ActiveDelivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	delivery.stage = StageAssigned
	delivery.assignedAt = time.Now().UTC()
	return delivery, nil
}

// RestoreActiveDelivery reconstructs a ledger entry from persistent storage.
func RestoreActiveDelivery(
	id, orderID kernel.UUID,
	stage DeliveryStage,
	collectedAmount int64,
	assignedAt time.Time,
	deliveredAt *time.Time,
) (*ActiveDelivery, error) {
	delivery := &ActiveDelivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setOrderID(orderID),
		delivery.setStage(stage),
	); err != nil {
		return nil, err
	}

	delivery.collectedAmount = collectedAmount
	delivery.assignedAt = assignedAt
	delivery.deliveredAt = deliveredAt
	return delivery, nil
}

// Validate checks the ActiveDelivery was created through its constructors.
func (d *ActiveDelivery) Validate() error {
	if d == nil {
		return ErrActiveDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrActiveDeliveryIsNotConstructed)
}

// IsEqual compares two entries by their unique identifiers.
func (d *ActiveDelivery) IsEqual(other *ActiveDelivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (d *ActiveDelivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the order this entry tracks.
func (d *ActiveDelivery) OrderID() kernel.UUID {
	return d.orderID
}

// Stage returns the current stage of the delivery.
func (d *ActiveDelivery) Stage() DeliveryStage {
	return d.stage
}

// CollectedAmount returns the cash collected at delivery (0 for prepaid).
func (d *ActiveDelivery) CollectedAmount() int64 {
	return d.collectedAmount
}

// AssignedAt returns when the delivery was assigned.
func (d *ActiveDelivery) AssignedAt() time.Time {
	return d.assignedAt
}

// DeliveredAt returns when the delivery closed, or nil while open.
func (d *ActiveDelivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// IsOpen reports whether the delivery is still in progress.
func (d *ActiveDelivery) IsOpen() bool {
	return d.stage != StageDelivered
}

func (d *ActiveDelivery) confirmPickup() error {
	stage, err := d.stage.ConfirmPickup()
	if err != nil {
		return err
	}
	d.stage = stage
	return nil
}

func (d *ActiveDelivery) startTransit() error {
	stage, err := d.stage.StartTransit()
	if err != nil {
		return err
	}
	d.stage = stage
	return nil
}

func (d *ActiveDelivery) deliver() error {
	stage, err := d.stage.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.stage = stage
	d.deliveredAt = &now
	return nil
}

func (d *ActiveDelivery) recordCollection(amount int64) {
	d.collectedAmount = amount
}

func (d *ActiveDelivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *ActiveDelivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *ActiveDelivery) setStage(stage DeliveryStage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	d.stage = stage
	return nil
}
