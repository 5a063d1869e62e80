package commands

import (
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var ErrCreateAgentCommandIsNotConstructed = errors.New(
	"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
)

// CreateAgentCommand represents back office onboarding a new delivery agent
// with a cash custody limit.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID   kernel.UUID
	name      string
	cashLimit int64

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to onboard a delivery agent.
func NewCreateAgentCommand(agentID kernel.UUID, name string, cashLimit int64) (CreateAgentCommand, error) {
	cmd := CreateAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setName(name),
		cmd.setCashLimit(cashLimit),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// AgentID returns the identifier the agent will be created under.
func (c CreateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Name returns the agent's name.
func (c CreateAgentCommand) Name() string {
	return c.name
}

// CashLimit returns the agent's cash custody ceiling in minor units.
func (c CreateAgentCommand) CashLimit() int64 {
	return c.cashLimit
}

func (c *CreateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *CreateAgentCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateAgentCommand) setCashLimit(cashLimit int64) error {
	if cashLimit <= 0 {
		return errs.NewValueIsInvalidError("cashLimit")
	}
	c.cashLimit = cashLimit
	return nil
}
