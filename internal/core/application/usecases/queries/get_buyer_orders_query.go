package queries

import (
	"errors"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery lists a buyer's orders, optionally narrowed to one
// status.
type GetBuyerOrdersQuery struct {
	buyerID kernel.UUID
	status  *order.Status

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for a buyer's order list. Pass a nil
// status to list every order regardless of state.
func NewGetBuyerOrdersQuery(buyerID kernel.UUID, status *order.Status) (GetBuyerOrdersQuery, error) {
	query := GetBuyerOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := buyerID.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}
	query.buyerID = buyerID

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetBuyerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		query.status = status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerID returns the buyer whose orders are listed.
func (q GetBuyerOrdersQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// Status returns the optional status filter.
func (q GetBuyerOrdersQuery) Status() *order.Status {
	return q.status
}

// GetBuyerOrdersQueryResponse is one row of the buyer's order list.
type GetBuyerOrdersQueryResponse struct {
	ID          kernel.UUID
	Number      string
	Channel     string
	TotalAmount int64
	NetAmount   int64
	Status      string
}
