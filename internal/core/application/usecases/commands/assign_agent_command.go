package commands

import (
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents a request to assign a delivery agent to a
// confirmed order.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign the agent to the order.
func NewAssignAgentCommand(orderID, agentID kernel.UUID) (AssignAgentCommand, error) {
	cmd := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgentID(agentID),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the agent taking the delivery.
func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *AssignAgentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}
