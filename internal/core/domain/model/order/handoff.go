package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

const (
	handoffOrderPrefix = "ORDER_"
	handoffBuyerInfix  = "_BUYER_"
)

// Handoff token errors.
var (
	// ErrHandoffTokenIsNotConstructed is returned when using an improperly
	// initialized HandoffToken.
	ErrHandoffTokenIsNotConstructed = errors.New("HandoffToken must be created via IssueHandoffToken or ParseHandoffToken")
	// ErrHandoffTokenMalformed is returned when a raw token string does not
	// match the ORDER_<number>_BUYER_<uuid> pattern.
	ErrHandoffTokenMalformed = errors.New("handoff token does not match the expected pattern")
)

// HandoffToken is the single-use proof exchanged at physical pickup or
// delivery, binding an order to its buyer. The token is rendered as a QR
// artifact and presented by the delivery agent.
//
// The token is a deterministic function of the order number and buyer
// identifier (ORDER_<number>_BUYER_<buyerId>) with no cryptographic signature.
// Its security property is that the correct order/buyer pair is hard to guess
// from a physical QR artifact, not that the token is forgery-proof; the
// deterministic form tolerates offline scanning and re-printing. Because of
// that, a token must always be re-verified against live order state at the
// moment of use (Order.VerifyHandoff), never accepted from a cache: changing
// the order's buyer pair implicitly invalidates every previously issued token.
type HandoffToken struct {
	orderNumber string
	buyerID     kernel.UUID

	guard guard.ConstructorGuard
}

// IssueHandoffToken derives the token for an order/buyer pair. Re-issuing for
// the same pair yields an identical token; the token carries no nonce.
func IssueHandoffToken(orderNumber string, buyerID kernel.UUID) (HandoffToken, error) {
	if orderNumber == "" {
		return HandoffToken{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if err := buyerID.Validate(); err != nil {
		return HandoffToken{}, errs.NewValueIsRequiredErrorWithCause("buyerId", err)
	}

	return HandoffToken{
		orderNumber: orderNumber,
		buyerID:     buyerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ParseHandoffToken decodes a raw token string scanned at the point of
// exchange. Parsing only checks the pattern; whether the encoded pair matches
// an order on file is decided by Order.VerifyHandoff.
func ParseHandoffToken(raw string) (HandoffToken, error) {
	if !strings.HasPrefix(raw, handoffOrderPrefix) {
		return HandoffToken{}, ErrHandoffTokenMalformed
	}

	// The buyer id is a UUID and cannot contain the infix, so the last
	// occurrence splits correctly even if an order number ever contained it.
	idx := strings.LastIndex(raw, handoffBuyerInfix)
	if idx < len(handoffOrderPrefix) {
		return HandoffToken{}, ErrHandoffTokenMalformed
	}

	orderNumber := raw[len(handoffOrderPrefix):idx]
	if orderNumber == "" {
		return HandoffToken{}, ErrHandoffTokenMalformed
	}

	buyerID, err := kernel.UUIDFromString(raw[idx+len(handoffBuyerInfix):])
	if err != nil {
		return HandoffToken{}, ErrHandoffTokenMalformed
	}

	return IssueHandoffToken(orderNumber, buyerID)
}

// Validate checks the HandoffToken was created through one of its constructors.
func (t HandoffToken) Validate() error {
	return t.guard.Validate(ErrHandoffTokenIsNotConstructed)
}

// OrderNumber returns the order number encoded in the token.
func (t HandoffToken) OrderNumber() string {
	return t.orderNumber
}

// BuyerID returns the buyer identifier encoded in the token.
func (t HandoffToken) BuyerID() kernel.UUID {
	return t.buyerID
}

// Matches reports whether the token encodes exactly the given order/buyer pair.
func (t HandoffToken) Matches(orderNumber string, buyerID kernel.UUID) bool {
	return t.orderNumber == orderNumber && t.buyerID.IsEqual(buyerID)
}

// String renders the wire/QR form: ORDER_<number>_BUYER_<uuid>.
func (t HandoffToken) String() string {
	return fmt.Sprintf("%s%s%s%s", handoffOrderPrefix, t.orderNumber, handoffBuyerInfix, t.buyerID)
}
