package commands

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/guard"
)

var ErrPickupOrderCommandIsNotConstructed = errors.New(
	"PickupOrderCommand must be created via NewPickupOrderCommand constructor",
)

// PickupOrderCommand represents a customer's acknowledgement that they
// received a delivered order.
type PickupOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickupOrderCommand creates a command to complete an order pickup.
func NewPickupOrderCommand(orderID, customerUserID kernel.UUID) (PickupOrderCommand, error) {
	cmd := PickupOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerUserID(customerUserID),
	); err != nil {
		return PickupOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickupOrderCommandIsNotConstructed)
}

// OrderID returns the order being picked up.
func (c PickupOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerUserID returns the acknowledging user's account identifier.
func (c PickupOrderCommand) CustomerUserID() kernel.UUID {
	return c.customerUserID
}

func (c *PickupOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PickupOrderCommand) setCustomerUserID(customerUserID kernel.UUID) error {
	if err := customerUserID.Validate(); err != nil {
		return err
	}

	c.customerUserID = customerUserID
	return nil
}
