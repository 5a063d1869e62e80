package order

import (
	"errors"
	"fmt"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when using an improperly initialized
// LineItem. Line items must be created through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one purchased position of an order: a product from a seller with
// a quantity and a unit price. Line items are immutable value objects; the
// order's total amount is the sum of their subtotals.
type LineItem struct {
	sellerID  kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice int64

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item. Quantity must be at least 1 and
// the unit price must not be negative; seller and product references are
// required.
func NewLineItem(sellerID, productID kernel.UUID, quantity int, unitPrice int64) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setSellerID(sellerID),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate checks the LineItem was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// SellerID returns the seller offering the product.
func (i LineItem) SellerID() kernel.UUID {
	return i.sellerID
}

// ProductID returns the purchased product reference.
func (i LineItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the purchased quantity (always >= 1).
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit in minor currency units.
func (i LineItem) UnitPrice() int64 {
	return i.unitPrice
}

// Subtotal returns quantity * unit price in minor currency units.
func (i LineItem) Subtotal() int64 {
	return int64(i.quantity) * i.unitPrice
}

func (i *LineItem) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerId", err)
	}
	i.sellerID = sellerID
	return nil
}

func (i *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
