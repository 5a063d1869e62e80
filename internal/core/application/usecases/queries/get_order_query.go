package queries

import (
	"errors"
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its settlement breakdown and the
// full event timeline.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the read model for a single order.
type GetOrderQueryResponse struct {
	ID                kernel.UUID
	Number            string
	BuyerID           kernel.UUID
	AgentID           *kernel.UUID
	Street            string
	City              string
	Channel           string
	TotalAmount       int64
	CommissionPercent int
	CommissionAmount  int64
	EstimatedFee      int64
	NetAmount         int64
	Status            string
	PaymentStatus     string
	CommissionStatus  string
	PaymentReference  string
	PayoutReference   string
	Items             []OrderItemResponse
	Events            []OrderEventResponse
}

// OrderItemResponse is one purchased line within the order read model.
type OrderItemResponse struct {
	SellerID  kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice int64
	Subtotal  int64
}

// OrderEventResponse is one timeline entry within the order read model.
type OrderEventResponse struct {
	Type       string
	Actor      string
	OccurredAt time.Time
}
