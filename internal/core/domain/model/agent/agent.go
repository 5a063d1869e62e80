package agent

import (
	"errors"
	"fmt"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

// Domain errors for delivery agent operations.
var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized DeliveryAgent.
	ErrAgentIsNotConstructed = errors.New("DeliveryAgent must be created via NewDeliveryAgent constructor")
	// ErrDeliveryNotFound is returned when a ledger operation references an order
	// the agent has no delivery entry for.
	ErrDeliveryNotFound = errors.New("no delivery entry for this order")
	// ErrDeliveryAlreadyActive is returned when assigning an order the agent
	// already carries an open delivery for.
	ErrDeliveryAlreadyActive = errors.New("agent already has an open delivery for this order")
	// ErrDepositNotFound is returned when verifying or rejecting an unknown deposit.
	ErrDepositNotFound = errors.New("deposit not found")
	// ErrDepositExceedsBalance is returned when recording a deposit larger than
	// the cash the agent currently holds.
	ErrDepositExceedsBalance = errors.New("deposit amount exceeds the held cash balance")
	// ErrCeilingExceeded is the sentinel for CeilingExceededError, used with errors.Is.
	ErrCeilingExceeded = errors.New("cash ceiling exceeded")
	// ErrAgentNotVerified is returned when an unverified agent takes an operation
	// reserved for verified agents.
	ErrAgentNotVerified = errors.New("delivery agent is not verified")
)

// CeilingExceededError indicates a cash collection would push the agent's held
// balance over their ceiling. The collection is rejected outright; the balance
// is never partially applied or capped.
type CeilingExceededError struct {
	Limit   int64
	Balance int64
	Amount  int64
}

// NewCeilingExceededError creates a CeilingExceededError with the rejected amounts.
func NewCeilingExceededError(limit, balance, amount int64) *CeilingExceededError {
	return &CeilingExceededError{Limit: limit, Balance: balance, Amount: amount}
}

// Error implements the error interface.
func (e *CeilingExceededError) Error() string {
	return fmt.Sprintf("%s: holding %d, collecting %d would exceed the limit of %d",
		ErrCeilingExceeded, e.Balance, e.Amount, e.Limit)
}

// Unwrap returns ErrCeilingExceeded for errors.Is checks.
func (e *CeilingExceededError) Unwrap() error {
	return ErrCeilingExceeded
}

// DeliveryAgent is the aggregate root for a delivery rider and their cash
// custody ledger. Agents carry goods for cash-on-delivery orders and therefore
// hold marketplace money between the doorstep and the bank; the ledger tracks
// every collection and deposit so that custody is always accounted for.
//
// Key invariants:
//   - cashBalance never exceeds cashLimit: a collection that would cross the
//     ceiling is rejected whole, with the balance unchanged.
//   - The ledger is append-only: deposits are never edited after recording;
//     a rejected deposit is corrected by a compensating balance adjustment.
//   - RecordDeposit applies an optimistic credit: the balance drops the moment
//     the deposit is recorded, restoring collection capacity before back office
//     verifies the money actually arrived.
//   - At most one open delivery entry per order.
type DeliveryAgent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// name is the human-readable name of the agent
	name string
	// verified marks agents cleared by back office to take deliveries
	verified bool
	// cashLimit is the maximum cash the agent may hold, in minor units
	cashLimit int64
	// cashBalance is the cash currently held
	cashBalance int64
	// totalCollected accumulates every successful collection, for reconciliation
	totalCollected int64
	// totalDeposited accumulates credited deposits (pending or verified); a
	// rejection reverses its share, keeping balance = collected - deposited
	totalDeposited int64
	// activeDeliveries are the agent's delivery ledger entries
	activeDeliveries []*ActiveDelivery
	// deposits are the agent's cash hand-ins, append-only
	deposits []*Deposit
	// version is the optimistic concurrency token managed by the repository
	version int

	guard guard.ConstructorGuard
}

// NewDeliveryAgent creates a new, unverified DeliveryAgent with an empty
// ledger. The cash limit must be positive; agents start with a zero balance
// and must be verified before taking deliveries.
func NewDeliveryAgent(id kernel.UUID, name string, cashLimit int64) (*DeliveryAgent, error) {
	a := &DeliveryAgent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setCashLimit(cashLimit),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreDeliveryAgentParams carries the persisted state needed to reconstruct
// a DeliveryAgent aggregate, including its ledger entries and deposits.
type RestoreDeliveryAgentParams struct {
	ID               kernel.UUID
	Name             string
	Verified         bool
	CashLimit        int64
	CashBalance      int64
	TotalCollected   int64
	TotalDeposited   int64
	ActiveDeliveries []*ActiveDelivery
	Deposits         []*Deposit
	Version          int
}

// RestoreDeliveryAgent reconstructs a DeliveryAgent from persistent storage,
// preserving the custody ledger exactly as it was at persistence time.
func RestoreDeliveryAgent(params RestoreDeliveryAgentParams) (*DeliveryAgent, error) {
	a := &DeliveryAgent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(params.ID),
		a.setName(params.Name),
		a.setCashLimit(params.CashLimit),
		a.setActiveDeliveries(params.ActiveDeliveries),
		a.setDeposits(params.Deposits),
	); err != nil {
		return nil, err
	}

	a.verified = params.Verified
	a.cashBalance = params.CashBalance
	a.totalCollected = params.TotalCollected
	a.totalDeposited = params.TotalDeposited
	a.version = params.Version

	return a, nil
}

// Validate ensures the DeliveryAgent was properly constructed.
func (a *DeliveryAgent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by their unique identifiers.
func (a *DeliveryAgent) IsEqual(other *DeliveryAgent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *DeliveryAgent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's name.
func (a *DeliveryAgent) Name() string {
	return a.name
}

// IsVerified reports whether back office cleared the agent for deliveries.
func (a *DeliveryAgent) IsVerified() bool {
	return a.verified
}

// CashLimit returns the maximum cash the agent may hold.
func (a *DeliveryAgent) CashLimit() int64 {
	return a.cashLimit
}

// CashBalance returns the cash currently held by the agent.
func (a *DeliveryAgent) CashBalance() int64 {
	return a.cashBalance
}

// TotalCollected returns the lifetime sum of cash collections.
func (a *DeliveryAgent) TotalCollected() int64 {
	return a.totalCollected
}

// TotalDeposited returns the sum of credited (pending or verified) deposits.
func (a *DeliveryAgent) TotalDeposited() int64 {
	return a.totalDeposited
}

// ActiveDeliveries returns a copy of the agent's delivery ledger entries.
func (a *DeliveryAgent) ActiveDeliveries() []*ActiveDelivery {
	deliveries := make([]*ActiveDelivery, len(a.activeDeliveries))
	copy(deliveries, a.activeDeliveries)
	return deliveries
}

// Deposits returns a copy of the agent's deposit records.
func (a *DeliveryAgent) Deposits() []*Deposit {
	deposits := make([]*Deposit, len(a.deposits))
	copy(deposits, a.deposits)
	return deposits
}

// Version returns the optimistic concurrency token loaded from storage.
func (a *DeliveryAgent) Version() int {
	return a.version
}

// Verify marks the agent as cleared by back office to take deliveries.
func (a *DeliveryAgent) Verify() {
	a.verified = true
}

// AcceptDelivery opens a ledger entry for a newly assigned order. Only
// verified agents take deliveries, and an order can have at most one open
// entry on the ledger.
func (a *DeliveryAgent) AcceptDelivery(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !a.verified {
		return ErrAgentNotVerified
	}
	if _, err := a.openDelivery(orderID); err == nil {
		return ErrDeliveryAlreadyActive
	}

	delivery, err := NewActiveDelivery(kernel.NewUUID(), orderID)
	if err != nil {
		return err
	}

	a.activeDeliveries = append(a.activeDeliveries, delivery)
	return nil
}

// ConfirmPickup advances the ledger entry for the order to PickupConfirmed.
func (a *DeliveryAgent) ConfirmPickup(orderID kernel.UUID) error {
	delivery, err := a.openDelivery(orderID)
	if err != nil {
		return err
	}
	return delivery.confirmPickup()
}

// StartTransit advances the ledger entry for the order to InTransit.
func (a *DeliveryAgent) StartTransit(orderID kernel.UUID) error {
	delivery, err := a.openDelivery(orderID)
	if err != nil {
		return err
	}
	return delivery.startTransit()
}

// CompleteDelivery closes the ledger entry for the order. For cash orders the
// collected amount must have been recorded through Collect first, in the same
// transaction.
func (a *DeliveryAgent) CompleteDelivery(orderID kernel.UUID) error {
	delivery, err := a.openDelivery(orderID)
	if err != nil {
		return err
	}
	return delivery.deliver()
}

// Collect records a doorstep cash collection against the order's ledger entry.
//
// Business rules:
//   - The amount must be positive.
//   - The collection is rejected whole with CeilingExceededError when
//     balance + amount would exceed the agent's cash limit; the balance is
//     left untouched, never capped.
//   - On success the balance and lifetime total increase and the delivery
//     entry is tagged with the collected amount for later reconciliation.
func (a *DeliveryAgent) Collect(orderID kernel.UUID, amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	delivery, err := a.openDelivery(orderID)
	if err != nil {
		return err
	}

	if a.cashBalance+amount > a.cashLimit {
		return NewCeilingExceededError(a.cashLimit, a.cashBalance, amount)
	}

	a.cashBalance += amount
	a.totalCollected += amount
	delivery.recordCollection(amount)
	return nil
}

// RecordDeposit appends a pending deposit and applies the optimistic credit:
// the balance drops immediately so the agent regains collection capacity
// before back office verifies the hand-in. The amount must be positive and
// cannot exceed the currently held balance.
func (a *DeliveryAgent) RecordDeposit(depositID kernel.UUID, amount int64, evidence string) error {
	if amount > a.cashBalance {
		return ErrDepositExceedsBalance
	}

	deposit, err := NewDeposit(depositID, amount, evidence)
	if err != nil {
		return err
	}

	a.deposits = append(a.deposits, deposit)
	a.cashBalance -= amount
	a.totalDeposited += amount
	return nil
}

// VerifyDeposit marks a pending deposit as matched by back office. A deposit
// finalizes exactly once; verifying a verified or rejected deposit fails with
// ErrDepositAlreadyFinal.
func (a *DeliveryAgent) VerifyDeposit(depositID kernel.UUID, verifier string) error {
	deposit, err := a.findDeposit(depositID)
	if err != nil {
		return err
	}
	return deposit.verify(verifier)
}

// RejectDeposit marks a pending deposit as unmatched and reverses its
// optimistic credit: the rejected amount returns to the held balance as a
// compensating adjustment. The deposit record itself keeps its amount; the
// ledger history is never edited.
func (a *DeliveryAgent) RejectDeposit(depositID kernel.UUID, verifier string) error {
	deposit, err := a.findDeposit(depositID)
	if err != nil {
		return err
	}
	if err := deposit.reject(verifier); err != nil {
		return err
	}

	a.cashBalance += deposit.Amount()
	a.totalDeposited -= deposit.Amount()
	return nil
}

// openDelivery finds the open ledger entry for an order.
func (a *DeliveryAgent) openDelivery(orderID kernel.UUID) (*ActiveDelivery, error) {
	for _, delivery := range a.activeDeliveries {
		if delivery.OrderID().IsEqual(orderID) && delivery.IsOpen() {
			return delivery, nil
		}
	}
	return nil, ErrDeliveryNotFound
}

func (a *DeliveryAgent) findDeposit(depositID kernel.UUID) (*Deposit, error) {
	for _, deposit := range a.deposits {
		if deposit.ID().IsEqual(depositID) {
			return deposit, nil
		}
	}
	return nil, ErrDepositNotFound
}

func (a *DeliveryAgent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DeliveryAgent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *DeliveryAgent) setCashLimit(cashLimit int64) error {
	if cashLimit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cashLimit",
			fmt.Errorf("%d is not greater than 0", cashLimit))
	}
	a.cashLimit = cashLimit
	return nil
}

func (a *DeliveryAgent) setActiveDeliveries(deliveries []*ActiveDelivery) error {
	for _, delivery := range deliveries {
		if err := delivery.Validate(); err != nil {
			return err
		}
	}
	a.activeDeliveries = deliveries
	return nil
}

func (a *DeliveryAgent) setDeposits(deposits []*Deposit) error {
	for _, deposit := range deposits {
		if err := deposit.Validate(); err != nil {
			return err
		}
	}
	a.deposits = deposits
	return nil
}
