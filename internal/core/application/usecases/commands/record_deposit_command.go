package commands

import (
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var ErrRecordDepositCommandIsNotConstructed = errors.New(
	"RecordDepositCommand must be created via NewRecordDepositCommand constructor",
)

// RecordDepositCommand represents an agent handing collected cash to the bank
// and recording the hand-in with supporting evidence.
type RecordDepositCommand struct { //nolint:recvcheck //using for validation
	agentID   kernel.UUID
	depositID kernel.UUID
	amount    int64
	evidence  string

	guard guard.ConstructorGuard
}

// NewRecordDepositCommand creates a command to record a cash deposit.
func NewRecordDepositCommand(agentID, depositID kernel.UUID, amount int64, evidence string) (RecordDepositCommand, error) {
	cmd := RecordDepositCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setDepositID(depositID),
		cmd.setAmount(amount),
		cmd.setEvidence(evidence),
	); err != nil {
		return RecordDepositCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDepositCommand) Validate() error {
	return c.guard.Validate(ErrRecordDepositCommandIsNotConstructed)
}

// AgentID returns the depositing agent.
func (c RecordDepositCommand) AgentID() kernel.UUID {
	return c.agentID
}

// DepositID returns the identifier the deposit record will be created under.
func (c RecordDepositCommand) DepositID() kernel.UUID {
	return c.depositID
}

// Amount returns the deposited amount in minor units.
func (c RecordDepositCommand) Amount() int64 {
	return c.amount
}

// Evidence returns the supporting reference (bank slip or similar).
func (c RecordDepositCommand) Evidence() string {
	return c.evidence
}

func (c *RecordDepositCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *RecordDepositCommand) setDepositID(depositID kernel.UUID) error {
	if err := depositID.Validate(); err != nil {
		return err
	}
	c.depositID = depositID
	return nil
}

func (c *RecordDepositCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}

func (c *RecordDepositCommand) setEvidence(evidence string) error {
	if evidence == "" {
		return errs.NewValueIsRequiredError("evidence")
	}
	c.evidence = evidence
	return nil
}
