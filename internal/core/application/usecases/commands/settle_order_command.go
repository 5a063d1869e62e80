package commands

import (
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var ErrSettleOrderCommandIsNotConstructed = errors.New(
	"SettleOrderCommand must be created via NewSettleOrderCommand constructor",
)

// SettleOrderCommand represents a request to release the seller's net amount
// for a delivered order and close it out.
type SettleOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSettleOrderCommand creates a command to settle the given order.
func NewSettleOrderCommand(orderID kernel.UUID) (SettleOrderCommand, error) {
	cmd := SettleOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return SettleOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleOrderCommand) Validate() error {
	return c.guard.Validate(ErrSettleOrderCommandIsNotConstructed)
}

// OrderID returns the order to settle.
func (c SettleOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *SettleOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
