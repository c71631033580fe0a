package party

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/guard"
)

// ErrDiscountIsNotConstructed is returned when using an improperly
// initialized Discount.
var ErrDiscountIsNotConstructed = errors.New("Discount must be created via NewDiscount or RestoreDiscount")

// Discount is a promotional rate a merchant registers for one
// platform. Only the discount registered for the order's exact
// (merchant, platform) pair may reduce the order's price.
type Discount struct {
	id         kernel.UUID
	merchantID kernel.UUID
	platformID kernel.UUID
	rate       kernel.DiscountRate

	guard guard.ConstructorGuard
}

// NewDiscount creates a discount for a merchant on a platform.
func NewDiscount(id, merchantID, platformID kernel.UUID, rate kernel.DiscountRate) (*Discount, error) {
	if err := errors.Join(
		id.Validate(),
		merchantID.Validate(),
		platformID.Validate(),
		rate.Validate(),
	); err != nil {
		return nil, err
	}

	return &Discount{
		id:         id,
		merchantID: merchantID,
		platformID: platformID,
		rate:       rate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreDiscount reconstructs a discount from persistence.
func RestoreDiscount(id, merchantID, platformID kernel.UUID, rate kernel.DiscountRate) (*Discount, error) {
	return NewDiscount(id, merchantID, platformID, rate)
}

// Validate ensures the Discount was created through a constructor.
func (d *Discount) Validate() error {
	if d == nil {
		return ErrDiscountIsNotConstructed
	}
	return d.guard.Validate(ErrDiscountIsNotConstructed)
}

// ID returns the discount's unique identifier.
func (d *Discount) ID() kernel.UUID {
	return d.id
}

// MerchantID returns the merchant that registered the discount.
func (d *Discount) MerchantID() kernel.UUID {
	return d.merchantID
}

// PlatformID returns the platform the discount applies on.
func (d *Discount) PlatformID() kernel.UUID {
	return d.platformID
}

// Rate returns the fractional discount rate.
func (d *Discount) Rate() kernel.DiscountRate {
	return d.rate
}

// AppliesTo reports whether the discount covers the given
// (merchant, platform) pair.
func (d *Discount) AppliesTo(merchantID, platformID kernel.UUID) bool {
	return d.merchantID.IsEqual(merchantID) && d.platformID.IsEqual(platformID)
}
