package party

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
	"speedeats/internal/pkg/guard"
)

// ErrMerchantIsNotConstructed is returned when using an improperly
// initialized Merchant.
var ErrMerchantIsNotConstructed = errors.New("Merchant must be created via NewMerchant or RestoreMerchant")

// Merchant lists meals on platforms it has an approved enrollment with and
// receives orders. Merchants are rateable.
type Merchant struct {
	id      kernel.UUID
	userID  kernel.UUID
	name    string
	phone   string
	address string
	rating  kernel.RatingAggregate

	guard guard.ConstructorGuard
}

// NewMerchant creates a merchant record with an empty rating aggregate.
func NewMerchant(id, userID kernel.UUID, name, phone, address string) (*Merchant, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("merchant name")
	}

	return &Merchant{
		id:      id,
		userID:  userID,
		name:    name,
		phone:   phone,
		address: address,
		rating:  kernel.NewRatingAggregate(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreMerchant reconstructs a merchant from persistence, including its
// rating aggregate.
func RestoreMerchant(
	id, userID kernel.UUID,
	name, phone, address string,
	rating kernel.RatingAggregate,
) (*Merchant, error) {
	merchant, err := NewMerchant(id, userID, name, phone, address)
	if err != nil {
		return nil, err
	}
	merchant.rating = rating
	return merchant, nil
}

// Validate ensures the Merchant was created through a constructor.
func (m *Merchant) Validate() error {
	if m == nil {
		return ErrMerchantIsNotConstructed
	}
	return m.guard.Validate(ErrMerchantIsNotConstructed)
}

// ID returns the merchant's unique identifier.
func (m *Merchant) ID() kernel.UUID {
	return m.id
}

// UserID returns the owning user account's identifier.
func (m *Merchant) UserID() kernel.UUID {
	return m.userID
}

// Name returns the merchant's display name.
func (m *Merchant) Name() string {
	return m.name
}

// Phone returns the merchant's contact phone.
func (m *Merchant) Phone() string {
	return m.phone
}

// Address returns the merchant's address.
func (m *Merchant) Address() string {
	return m.address
}

// Rating returns the merchant's running rating aggregate.
func (m *Merchant) Rating() kernel.RatingAggregate {
	return m.rating
}
