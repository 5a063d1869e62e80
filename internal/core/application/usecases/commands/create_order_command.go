package commands

import (
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one line item is required")
)

// LineItemSpec carries one requested order position. The specs are turned
// into validated domain line items by the handler.
type LineItemSpec struct {
	SellerID  kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice int64
}

// CreateOrderCommand represents a buyer's request to place a new order.
// Encapsulates the purchased items, the delivery destination and the chosen
// payment channel.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), buyerID, items,
//	    "12 Market Street", "Kampala", nil, "card")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyerID kernel.UUID
	items   []LineItemSpec
	street   string
	city     string
	geopoint *kernel.Geopoint
	channel  kernel.PaymentChannel

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. The channel is
// parsed from its wire form; items must be non-empty; the geopoint is an
// optional navigation pin for the destination. Item-level validation
// (quantity, price, references) happens in the domain when the handler builds
// the line items, and coordinate bounds are checked when the address is built.
func NewCreateOrderCommand(
	orderID, buyerID kernel.UUID,
	items []LineItemSpec,
	street, city string,
	geopoint *kernel.Geopoint,
	channel string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setItems(items),
		cmd.setStreet(street),
		cmd.setCity(city),
		cmd.setGeopoint(geopoint),
		cmd.setChannel(channel),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the purchasing business identifier.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// Items returns the requested line item specs.
func (c CreateOrderCommand) Items() []LineItemSpec {
	return c.items
}

// Street returns the delivery street address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// City returns the delivery city.
func (c CreateOrderCommand) City() string {
	return c.city
}

// Geopoint returns a copy of the optional destination pin, or nil when the
// buyer supplied none.
func (c CreateOrderCommand) Geopoint() *kernel.Geopoint {
	if c.geopoint == nil {
		return nil
	}
	point := *c.geopoint
	return &point
}

// Channel returns the parsed payment channel.
func (c CreateOrderCommand) Channel() kernel.PaymentChannel {
	return c.channel
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []LineItemSpec) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	c.street = street
	return nil
}

func (c *CreateOrderCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	c.city = city
	return nil
}

func (c *CreateOrderCommand) setGeopoint(geopoint *kernel.Geopoint) error {
	if geopoint == nil {
		return nil
	}
	point := *geopoint
	c.geopoint = &point
	return nil
}

func (c *CreateOrderCommand) setChannel(channel string) error {
	parsed, err := kernel.PaymentChannelFromString(channel)
	if err != nil {
		return err
	}
	c.channel = parsed
	return nil
}
