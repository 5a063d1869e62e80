package kernel

import (
	"fmt"

	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
)

// PaymentChannel identifies how a buyer pays for an order. The channel drives
// the commission percentage (cash handling carries a premium) and the estimated
// provider fee, and it decides whether payment capture happens before
// confirmation or is deferred to physical delivery.
type PaymentChannel string

const (
	// ChannelCard is a card capture through the payment gateway.
	ChannelCard PaymentChannel = "card"
	// ChannelPayPal is a PayPal capture through the payment gateway.
	ChannelPayPal PaymentChannel = "paypal"
	// ChannelMobileMoney is a mobile money capture; the only channel that
	// carries an estimated provider fee.
	ChannelMobileMoney PaymentChannel = "mobile_money"
	// ChannelCashOnDelivery defers payment to the physical handoff; the
	// delivery agent collects cash into their custody ledger.
	ChannelCashOnDelivery PaymentChannel = "cash_on_delivery"
)

// getValidChannels returns the set of supported payment channels.
func getValidChannels() map[PaymentChannel]struct{} {
	return map[PaymentChannel]struct{}{
		ChannelCard:           {},
		ChannelPayPal:         {},
		ChannelMobileMoney:    {},
		ChannelCashOnDelivery: {},
	}
}

// PaymentChannelFromString parses and validates a payment channel value coming
// from transport or persistence.
func PaymentChannelFromString(s string) (PaymentChannel, error) {
	channel := PaymentChannel(s)
	if err := channel.Validate(); err != nil {
		return "", err
	}
	return channel, nil
}

// Validate checks the channel is one of the supported values.
func (c PaymentChannel) Validate() error {
	if _, ok := getValidChannels()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentChannel",
			fmt.Errorf("%q is not a supported payment channel", string(c)))
	}
	return nil
}

// IsCashOnDelivery reports whether payment is collected in cash at handoff.
func (c PaymentChannel) IsCashOnDelivery() bool {
	return c == ChannelCashOnDelivery
}

// String returns the wire representation of the channel.
func (c PaymentChannel) String() string {
	return string(c)
}
