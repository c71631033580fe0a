package party

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
	"speedeats/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when using an improperly
// initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is the ordering actor. It is resolved from a generic user id per
// request; a user without a customer record cannot act in the customer role.
type Customer struct {
	id     kernel.UUID
	userID kernel.UUID
	name   string
	phone  string
	// address is the delivery address shown to merchants and riders
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer record for a user.
func NewCustomer(id, userID kernel.UUID, name, phone, address string) (*Customer, error) {
	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customer name")
	}

	return &Customer{
		id:      id,
		userID:  userID,
		name:    name,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id, userID kernel.UUID, name, phone, address string) (*Customer, error) {
	return NewCustomer(id, userID, name, phone, address)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user account's identifier.
func (c *Customer) UserID() kernel.UUID {
	return c.userID
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact phone.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's delivery address.
func (c *Customer) Address() string {
	return c.address
}
