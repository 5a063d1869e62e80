package commands

import (
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents an agent scanning the handoff token at
// pickup. The raw token is parsed here; verification against live order state
// happens in the domain.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	token   order.HandoffToken
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command from the scanned token string.
func NewConfirmPickupCommand(rawToken string, agentID kernel.UUID) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(rawToken),
		cmd.setAgentID(agentID),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// Token returns the parsed handoff token.
func (c ConfirmPickupCommand) Token() order.HandoffToken {
	return c.token
}

// AgentID returns the agent presenting the token.
func (c ConfirmPickupCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *ConfirmPickupCommand) setToken(rawToken string) error {
	token, err := order.ParseHandoffToken(rawToken)
	if err != nil {
		return err
	}
	c.token = token
	return nil
}

func (c *ConfirmPickupCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
