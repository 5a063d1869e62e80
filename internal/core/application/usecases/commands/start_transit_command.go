package commands

import (
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand represents an agent reporting that they left for the
// buyer with the goods. The order itself entered transit at pickup; this
// advances the agent's own delivery stage for tracking.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command for the agent's transit report.
func NewStartTransitCommand(orderID, agentID kernel.UUID) (StartTransitCommand, error) {
	cmd := StartTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentID(agentID),
	); err != nil {
		return StartTransitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// OrderID returns the order in transit.
func (c StartTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the reporting agent.
func (c StartTransitCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *StartTransitCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *StartTransitCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
