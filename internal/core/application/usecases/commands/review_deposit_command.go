package commands

import (
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var ErrReviewDepositCommandIsNotConstructed = errors.New(
	"ReviewDepositCommand must be created via NewReviewDepositCommand constructor",
)

// DepositVerdict is the back-office decision on a pending deposit.
type DepositVerdict int

const (
	// VerdictUnknown represents an invalid or undefined verdict.
	VerdictUnknown DepositVerdict = iota
	// VerdictApprove matches the deposit against the bank.
	VerdictApprove
	// VerdictReject flags the deposit as unmatched; the optimistic credit is reversed.
	VerdictReject
)

// ReviewDepositCommand represents back office finalizing a pending deposit,
// either verifying or rejecting it.
type ReviewDepositCommand struct { //nolint:recvcheck //using for validation
	agentID   kernel.UUID
	depositID kernel.UUID
	verifier  string
	verdict   DepositVerdict

	guard guard.ConstructorGuard
}

// NewReviewDepositCommand creates a command carrying the deposit verdict.
func NewReviewDepositCommand(
	agentID, depositID kernel.UUID,
	verifier string,
	verdict DepositVerdict,
) (ReviewDepositCommand, error) {
	cmd := ReviewDepositCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setDepositID(depositID),
		cmd.setVerifier(verifier),
		cmd.setVerdict(verdict),
	); err != nil {
		return ReviewDepositCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewDepositCommand) Validate() error {
	return c.guard.Validate(ErrReviewDepositCommandIsNotConstructed)
}

// AgentID returns the agent whose deposit is reviewed.
func (c ReviewDepositCommand) AgentID() kernel.UUID {
	return c.agentID
}

// DepositID returns the reviewed deposit.
func (c ReviewDepositCommand) DepositID() kernel.UUID {
	return c.depositID
}

// Verifier returns the back-office identity issuing the verdict.
func (c ReviewDepositCommand) Verifier() string {
	return c.verifier
}

// Verdict returns the decision.
func (c ReviewDepositCommand) Verdict() DepositVerdict {
	return c.verdict
}

func (c *ReviewDepositCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *ReviewDepositCommand) setDepositID(depositID kernel.UUID) error {
	if err := depositID.Validate(); err != nil {
		return err
	}
	c.depositID = depositID
	return nil
}

func (c *ReviewDepositCommand) setVerifier(verifier string) error {
	if verifier == "" {
		return errs.NewValueIsRequiredError("verifier")
	}
	c.verifier = verifier
	return nil
}

func (c *ReviewDepositCommand) setVerdict(verdict DepositVerdict) error {
	if verdict != VerdictApprove && verdict != VerdictReject {
		return errs.NewValueIsInvalidError("verdict")
	}
	c.verdict = verdict
	return nil
}
