package agent

import (
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
)

// DeliveryStage represents where an active delivery stands in the agent's own
// workflow. It mirrors the order's fulfillment states from the agent's point
// of view but lives on the agent aggregate, where the custody ledger needs it.
//
// Stage transitions:
//
//	Assigned ──> PickupConfirmed ──> InTransit ──> Delivered
//
// Delivered is terminal; the entry stays on the ledger for reconciliation.
type DeliveryStage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown DeliveryStage = iota

	// StageAssigned means the delivery was assigned but the goods were not
	// picked up yet.
	StageAssigned

	// StagePickupConfirmed means the agent holds the goods.
	StagePickupConfirmed

	// StageInTransit means the agent is moving toward the buyer.
	StageInTransit

	// StageDelivered means the exchange completed. Terminal.
	StageDelivered
)

func getStageStrings() map[DeliveryStage]string {
	return map[DeliveryStage]string{
		StageUnknown:         "Unknown",
		StageAssigned:        "Assigned",
		StagePickupConfirmed: "PickupConfirmed",
		StageInTransit:       "InTransit",
		StageDelivered:       "Delivered",
	}
}

// Validate checks the stage is one of the defined delivery stages.
func (s DeliveryStage) Validate() error {
	if s < StageAssigned || s > StageDelivered {
		return errs.NewValueIsInvalidErrorWithCause("deliveryStage",
			errs.NewValueIsOutOfRangeError("deliveryStage", int(s), int(StageAssigned), int(StageDelivered)))
	}
	return nil
}

// String returns the human-readable name of the stage.
func (s DeliveryStage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ConfirmPickup transitions Assigned -> PickupConfirmed.
func (s DeliveryStage) ConfirmPickup() (DeliveryStage, error) {
	if s != StageAssigned {
		return 0, errs.NewIllegalTransitionError("delivery stage", s.String(), StagePickupConfirmed.String())
	}
	return StagePickupConfirmed, nil
}

// StartTransit transitions PickupConfirmed -> InTransit.
func (s DeliveryStage) StartTransit() (DeliveryStage, error) {
	if s != StagePickupConfirmed {
		return 0, errs.NewIllegalTransitionError("delivery stage", s.String(), StageInTransit.String())
	}
	return StageInTransit, nil
}

// Deliver transitions InTransit -> Delivered.
func (s DeliveryStage) Deliver() (DeliveryStage, error) {
	if s != StageInTransit {
		return 0, errs.NewIllegalTransitionError("delivery stage", s.String(), StageDelivered.String())
	}
	return StageDelivered, nil
}
