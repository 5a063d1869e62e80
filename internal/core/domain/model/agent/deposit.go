package agent

import (
	"errors"
	"fmt"
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

// Deposit errors.
var (
	// ErrDepositIsNotConstructed is returned when using an improperly initialized Deposit.
	ErrDepositIsNotConstructed = errors.New("Deposit must be created via NewDeposit constructor")
	// ErrDepositAlreadyFinal is returned when verifying or rejecting a deposit
	// that already reached a final state. Finalization happens exactly once.
	ErrDepositAlreadyFinal = errors.New("deposit was already verified or rejected")
)

// DepositStatus tracks the back-office verification of a cash deposit.
type DepositStatus int

const (
	// DepositUnknown represents an invalid or undefined status.
	DepositUnknown DepositStatus = iota
	// DepositPending means the deposit was recorded but not yet verified.
	DepositPending
	// DepositVerified means back office matched the deposit against the bank. Terminal.
	DepositVerified
	// DepositRejected means the deposit could not be matched. Terminal.
	DepositRejected
)

func getDepositStatusStrings() map[DepositStatus]string {
	return map[DepositStatus]string{
		DepositUnknown:  "Unknown",
		DepositPending:  "Pending",
		DepositVerified: "Verified",
		DepositRejected: "Rejected",
	}
}

// Validate checks the status is one of the defined deposit states.
func (s DepositStatus) Validate() error {
	if s < DepositPending || s > DepositRejected {
		return errs.NewValueIsInvalidErrorWithCause("depositStatus",
			errs.NewValueIsOutOfRangeError("depositStatus", int(s), int(DepositPending), int(DepositRejected)))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s DepositStatus) String() string {
	if str, ok := getDepositStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status permits no further change.
func (s DepositStatus) IsFinal() bool {
	return s == DepositVerified || s == DepositRejected
}

// Deposit is one cash hand-in on an agent's ledger. Deposits are append-only:
// a rejected deposit keeps its recorded amount, and the balance correction is
// applied as a compensating adjustment on the aggregate, never by editing the
// record.
type Deposit struct {
	id       kernel.UUID
	amount   int64
	evidence string
	status   DepositStatus
	// verifiedBy is the back-office identity that finalized the deposit
	verifiedBy  string
	recordedAt  time.Time
	finalizedAt *time.Time

	guard guard.ConstructorGuard
}

// NewDeposit creates a pending deposit record. The amount must be positive;
// evidence (a bank slip reference or similar) is required.
func NewDeposit(id kernel.UUID, amount int64, evidence string) (*Deposit, error) {
	deposit := &Deposit{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deposit.setID(id),
		deposit.setAmount(amount),
		deposit.setEvidence(evidence),
	); err != nil {
		return nil, err
	}

	deposit.status = DepositPending
	deposit.recordedAt = time.Now().UTC()
	return deposit, nil
}

// RestoreDeposit reconstructs a deposit record from persistent storage.
func RestoreDeposit(
	id kernel.UUID,
	amount int64,
	evidence string,
	status DepositStatus,
	verifiedBy string,
	recordedAt time.Time,
	finalizedAt *time.Time,
) (*Deposit, error) {
	deposit := &Deposit{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deposit.setID(id),
		deposit.setAmount(amount),
		deposit.setEvidence(evidence),
		deposit.setStatus(status),
	); err != nil {
		return nil, err
	}

	deposit.verifiedBy = verifiedBy
	deposit.recordedAt = recordedAt
	deposit.finalizedAt = finalizedAt
	return deposit, nil
}

// Validate checks the Deposit was created through its constructors.
func (d *Deposit) Validate() error {
	if d == nil {
		return ErrDepositIsNotConstructed
	}
	return d.guard.Validate(ErrDepositIsNotConstructed)
}

// IsEqual compares two deposits by their unique identifiers.
func (d *Deposit) IsEqual(other *Deposit) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the deposit's unique identifier.
func (d *Deposit) ID() kernel.UUID {
	return d.id
}

// Amount returns the deposited amount in minor currency units.
func (d *Deposit) Amount() int64 {
	return d.amount
}

// Evidence returns the supporting reference supplied by the agent.
func (d *Deposit) Evidence() string {
	return d.evidence
}

// Status returns the verification status.
func (d *Deposit) Status() DepositStatus {
	return d.status
}

// VerifiedBy returns who finalized the deposit, empty while pending.
func (d *Deposit) VerifiedBy() string {
	return d.verifiedBy
}

// RecordedAt returns when the agent recorded the deposit.
func (d *Deposit) RecordedAt() time.Time {
	return d.recordedAt
}

// FinalizedAt returns when the deposit was verified or rejected, or nil.
func (d *Deposit) FinalizedAt() *time.Time {
	return d.finalizedAt
}

func (d *Deposit) verify(verifier string) error {
	return d.finalize(DepositVerified, verifier)
}

func (d *Deposit) reject(verifier string) error {
	return d.finalize(DepositRejected, verifier)
}

func (d *Deposit) finalize(status DepositStatus, verifier string) error {
	if verifier == "" {
		return errs.NewValueIsRequiredError("verifier")
	}
	if d.status.IsFinal() {
		return ErrDepositAlreadyFinal
	}

	now := time.Now().UTC()
	d.status = status
	d.verifiedBy = verifier
	d.finalizedAt = &now
	return nil
}

func (d *Deposit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Deposit) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	d.amount = amount
	return nil
}

func (d *Deposit) setEvidence(evidence string) error {
	if evidence == "" {
		return errs.NewValueIsRequiredError("evidence")
	}
	d.evidence = evidence
	return nil
}

func (d *Deposit) setStatus(status DepositStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
