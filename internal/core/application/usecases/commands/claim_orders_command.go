package commands

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/pkg/guard"
)

var ErrClaimOrdersCommandIsNotConstructed = errors.New(
	"ClaimOrdersCommand must be created via NewClaimOrdersCommand constructor",
)

// ClaimOrdersCommand represents a rider's request to claim unassigned
// orders. The selector targets either a single order or a whole
// (merchant, customer) group, which lets a rider pick up everything one
// customer ordered from one merchant in a single move.
type ClaimOrdersCommand struct { //nolint:recvcheck //using for validation
	riderUserID kernel.UUID
	selector    order.Selector

	guard guard.ConstructorGuard
}

// NewClaimOrdersCommand creates a command to claim orders.
func NewClaimOrdersCommand(riderUserID kernel.UUID, selector order.Selector) (ClaimOrdersCommand, error) {
	cmd := ClaimOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderUserID(riderUserID),
		cmd.setSelector(selector),
	); err != nil {
		return ClaimOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrdersCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrdersCommandIsNotConstructed)
}

// RiderUserID returns the claiming user's account identifier.
func (c ClaimOrdersCommand) RiderUserID() kernel.UUID {
	return c.riderUserID
}

// Selector returns the order or group being claimed.
func (c ClaimOrdersCommand) Selector() order.Selector {
	return c.selector
}

func (c *ClaimOrdersCommand) setRiderUserID(riderUserID kernel.UUID) error {
	if err := riderUserID.Validate(); err != nil {
		return err
	}

	c.riderUserID = riderUserID
	return nil
}

func (c *ClaimOrdersCommand) setSelector(selector order.Selector) error {
	if err := selector.Validate(); err != nil {
		return err
	}

	c.selector = selector
	return nil
}
