package commands

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/pkg/guard"
)

var ErrReleaseOrdersCommandIsNotConstructed = errors.New(
	"ReleaseOrdersCommand must be created via NewReleaseOrdersCommand constructor",
)

// ReleaseOrdersCommand represents a rider's request to give claimed orders
// back to the unassigned pool.
type ReleaseOrdersCommand struct { //nolint:recvcheck //using for validation
	riderUserID kernel.UUID
	selector    order.Selector

	guard guard.ConstructorGuard
}

// NewReleaseOrdersCommand creates a command to release orders.
func NewReleaseOrdersCommand(riderUserID kernel.UUID, selector order.Selector) (ReleaseOrdersCommand, error) {
	cmd := ReleaseOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderUserID(riderUserID),
		cmd.setSelector(selector),
	); err != nil {
		return ReleaseOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrdersCommandIsNotConstructed)
}

// RiderUserID returns the releasing user's account identifier.
func (c ReleaseOrdersCommand) RiderUserID() kernel.UUID {
	return c.riderUserID
}

// Selector returns the order or group being released.
func (c ReleaseOrdersCommand) Selector() order.Selector {
	return c.selector
}

func (c *ReleaseOrdersCommand) setRiderUserID(riderUserID kernel.UUID) error {
	if err := riderUserID.Validate(); err != nil {
		return err
	}

	c.riderUserID = riderUserID
	return nil
}

func (c *ReleaseOrdersCommand) setSelector(selector order.Selector) error {
	if err := selector.Validate(); err != nil {
		return err
	}

	c.selector = selector
	return nil
}
