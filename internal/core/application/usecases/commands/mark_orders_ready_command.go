package commands

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/pkg/guard"
)

var ErrMarkOrdersReadyCommandIsNotConstructed = errors.New(
	"MarkOrdersReadyCommand must be created via NewMarkOrdersReadyCommand constructor",
)

// MarkOrdersReadyCommand represents a rider's report that claimed orders
// have been delivered and await customer pickup.
type MarkOrdersReadyCommand struct { //nolint:recvcheck //using for validation
	riderUserID kernel.UUID
	selector    order.Selector

	guard guard.ConstructorGuard
}

// NewMarkOrdersReadyCommand creates a command to mark orders ready.
func NewMarkOrdersReadyCommand(riderUserID kernel.UUID, selector order.Selector) (MarkOrdersReadyCommand, error) {
	cmd := MarkOrdersReadyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderUserID(riderUserID),
		cmd.setSelector(selector),
	); err != nil {
		return MarkOrdersReadyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrdersReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrdersReadyCommandIsNotConstructed)
}

// RiderUserID returns the reporting user's account identifier.
func (c MarkOrdersReadyCommand) RiderUserID() kernel.UUID {
	return c.riderUserID
}

// Selector returns the order or group being marked ready.
func (c MarkOrdersReadyCommand) Selector() order.Selector {
	return c.selector
}

func (c *MarkOrdersReadyCommand) setRiderUserID(riderUserID kernel.UUID) error {
	if err := riderUserID.Validate(); err != nil {
		return err
	}

	c.riderUserID = riderUserID
	return nil
}

func (c *MarkOrdersReadyCommand) setSelector(selector order.Selector) error {
	if err := selector.Validate(); err != nil {
		return err
	}

	c.selector = selector
	return nil
}
