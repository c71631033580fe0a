package kernel

import (
	"fmt"

	"speedeats/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits carried by every monetary
// value. All rounding is half-up at this scale.
const moneyScale = 2

// Money is a non-negative fixed-point monetary value in the platform's single
// currency. It is immutable; arithmetic methods return new values.
//
// Money crosses every boundary as a decimal-formatted string with exactly two
// fractional digits, never as binary floating point.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the zero monetary value.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses a decimal string such as "10.00" into Money.
// Negative or non-numeric input is a validation error. The value is rounded
// half-up to two fractional digits.
func NewMoneyFromString(s string) (Money, error) {
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("money amount")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}

	return NewMoneyFromDecimal(d)
}

// NewMoneyFromDecimal wraps a decimal into Money, rejecting negatives and
// rounding half-up to two fractional digits.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%s is negative", d.String()),
		)
	}

	return Money{amount: d.Round(moneyScale)}, nil
}

// MulQuantity multiplies the amount by a positive quantity. Two-digit
// decimals multiplied by an integer stay exact, so no rounding happens here.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// ApplyDiscount multiplies by (1 - rate) and rounds half-up to two digits.
// This is the per-line rounding point of the pricing rules.
func (m Money) ApplyDiscount(rate DiscountRate) Money {
	factor := decimal.NewFromInt(1).Sub(rate.Value())
	return Money{amount: m.amount.Mul(factor).Round(moneyScale)}
}

// Round returns the amount rounded half-up to two fractional digits.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(moneyScale)}
}

// Add sums two monetary values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Decimal exposes the underlying decimal for persistence DTOs.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// IsEqual reports whether two monetary values are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// ErrDiscountRateIsNotConstructed indicates a zero-value DiscountRate used
// outside NewDiscountRate.
var ErrDiscountRateIsNotConstructed = errs.NewValueIsRequiredError(
	"DiscountRate must be created via NewDiscountRate",
)

// DiscountRate is the fraction of the price a discount removes, in [0, 1).
// A rate of 0.30 means the customer pays 70 percent.
type DiscountRate struct {
	rate decimal.Decimal
	// set distinguishes an explicit zero rate from the zero value
	set bool
}

// NoDiscount returns the rate that leaves prices unchanged.
func NoDiscount() DiscountRate {
	return DiscountRate{rate: decimal.Zero, set: true}
}

// NewDiscountRate validates that the rate lies in [0, 1).
func NewDiscountRate(rate decimal.Decimal) (DiscountRate, error) {
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return DiscountRate{}, errs.NewValueIsOutOfRangeError("discount rate", rate.String(), "0", "1")
	}

	return DiscountRate{rate: rate, set: true}, nil
}

// NewDiscountRateFromString parses and validates a decimal string rate.
func NewDiscountRateFromString(s string) (DiscountRate, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return DiscountRate{}, errs.NewValueIsInvalidErrorWithCause("discount rate", err)
	}
	return NewDiscountRate(d)
}

// Value returns the underlying decimal rate.
func (r DiscountRate) Value() decimal.Decimal {
	return r.rate
}

// IsZero reports whether the rate leaves prices unchanged.
func (r DiscountRate) IsZero() bool {
	return r.rate.IsZero()
}

// Validate returns ErrDiscountRateIsNotConstructed for the zero value.
func (r DiscountRate) Validate() error {
	if !r.set {
		return ErrDiscountRateIsNotConstructed
	}
	return nil
}
