package services

import (
	"errors"
	"fmt"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/guard"
)

const (
	// commissionPercentDefault is the platform cut for gateway-captured channels.
	commissionPercentDefault = 3
	// commissionPercentCash is the platform cut for cash-on-delivery orders.
	// Cash handling carries a one-point premium over gateway channels.
	commissionPercentCash = 4

	mobileMoneyTier1Ceiling = 5000
	mobileMoneyTier1Fee     = 150
	mobileMoneyTier2Ceiling = 30000
	mobileMoneyTier2Fee     = 300
	mobileMoneyTopTierPct   = 1
)

// Domain errors for settlement computation.
var (
	// ErrInvalidSettlement is returned when commission and fees would exceed the
	// order total. The policy fails instead of clamping the net amount to zero.
	ErrInvalidSettlement = errors.New("settlement is invalid: net amount would be negative")
	// ErrSettlementIsNotConstructed is returned when using an improperly
	// initialized Settlement.
	ErrSettlementIsNotConstructed = errors.New("Settlement must be created via ComputeSettlement or RestoreSettlement")
)

// FeeSchedule estimates the third-party provider fee for capturing a payment.
// The schedule is deliberately coarse and must stay pluggable so regional
// deployments can swap in their own provider pricing.
type FeeSchedule interface {
	// EstimateFee returns the estimated provider fee in minor currency units
	// for capturing totalAmount over the given channel.
	EstimateFee(totalAmount int64, channel kernel.PaymentChannel) int64
}

// TieredMobileMoneyFees is the default fee schedule: only the mobile money
// channel carries a fee, estimated from a three-tier table.
type TieredMobileMoneyFees struct{}

// NewTieredMobileMoneyFees creates the default fee schedule.
func NewTieredMobileMoneyFees() TieredMobileMoneyFees {
	return TieredMobileMoneyFees{}
}

// EstimateFee returns 0 for every channel except mobile money. Mobile money
// fees are tiered: amounts up to 5000 cost 150, up to 30000 cost 300, and
// larger captures cost 1% of the total, rounded half-up.
func (TieredMobileMoneyFees) EstimateFee(totalAmount int64, channel kernel.PaymentChannel) int64 {
	if channel != kernel.ChannelMobileMoney {
		return 0
	}

	switch {
	case totalAmount <= mobileMoneyTier1Ceiling:
		return mobileMoneyTier1Fee
	case totalAmount <= mobileMoneyTier2Ceiling:
		return mobileMoneyTier2Fee
	default:
		return roundHalfUpPercent(totalAmount, mobileMoneyTopTierPct)
	}
}

// Settlement is the money breakdown of an order: the platform commission, the
// estimated provider fee, and the net amount owed to the seller. It is an
// immutable value object; an order recomputes it whenever its total or payment
// channel changes, so a stored Settlement is never stale.
type Settlement struct {
	commissionPercent int
	commissionAmount  int64
	estimatedFee      int64
	netAmount         int64

	guard guard.ConstructorGuard
}

// ComputeSettlement applies the money policy to an order total.
//
// Rules:
//   - commission percentage is 4 for cash_on_delivery, 3 for all other channels
//   - commission amount is round-half-up of total * percentage / 100
//   - the provider fee comes from the fee schedule (default tiered mobile money
//     schedule when fees is nil)
//   - net = total - commission - fee and must not be negative; a negative net
//     fails with ErrInvalidSettlement rather than clamping
//
// The function is pure: it is called at order creation and at any re-pricing
// event, and has no side effects.
func ComputeSettlement(totalAmount int64, channel kernel.PaymentChannel, fees FeeSchedule) (Settlement, error) {
	if totalAmount < 0 {
		return Settlement{}, errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d is negative", totalAmount))
	}
	if err := channel.Validate(); err != nil {
		return Settlement{}, err
	}
	if fees == nil {
		fees = NewTieredMobileMoneyFees()
	}

	percent := commissionPercentDefault
	if channel.IsCashOnDelivery() {
		percent = commissionPercentCash
	}

	commission := roundHalfUpPercent(totalAmount, int64(percent))
	fee := fees.EstimateFee(totalAmount, channel)

	net := totalAmount - commission - fee
	if net < 0 {
		return Settlement{}, ErrInvalidSettlement
	}

	return Settlement{
		commissionPercent: percent,
		commissionAmount:  commission,
		estimatedFee:      fee,
		netAmount:         net,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// RestoreSettlement reconstructs a Settlement from persistence. Amounts must be
// non-negative; consistency with the order total is the order aggregate's
// responsibility.
func RestoreSettlement(commissionPercent int, commissionAmount, estimatedFee, netAmount int64) (Settlement, error) {
	if commissionPercent < 0 || commissionAmount < 0 || estimatedFee < 0 || netAmount < 0 {
		return Settlement{}, errs.NewValueIsInvalidError("settlement")
	}

	return Settlement{
		commissionPercent: commissionPercent,
		commissionAmount:  commissionAmount,
		estimatedFee:      estimatedFee,
		netAmount:         netAmount,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the Settlement was produced by ComputeSettlement or
// RestoreSettlement.
func (s Settlement) Validate() error {
	return s.guard.Validate(ErrSettlementIsNotConstructed)
}

// CommissionPercent returns the platform commission percentage applied.
func (s Settlement) CommissionPercent() int {
	return s.commissionPercent
}

// CommissionAmount returns the platform commission in minor currency units.
func (s Settlement) CommissionAmount() int64 {
	return s.commissionAmount
}

// EstimatedFee returns the estimated provider fee in minor currency units.
func (s Settlement) EstimatedFee() int64 {
	return s.estimatedFee
}

// NetAmount returns the seller payout after commission and estimated fees.
func (s Settlement) NetAmount() int64 {
	return s.netAmount
}

// roundHalfUpPercent computes amount * percent / 100 with round-half-up
// semantics on the smallest currency unit. Both arguments must be non-negative.
func roundHalfUpPercent(amount, percent int64) int64 {
	return (amount*percent + 50) / 100
}
