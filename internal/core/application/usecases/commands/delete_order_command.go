package commands

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
	"speedeats/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteActor names the role a deletion request acts under. The customer,
// the merchant and the owning platform may each remove an order that no
// rider has claimed yet.
type DeleteActor int

const (
	// DeleteActorUnknown is a zero value and not a valid actor.
	DeleteActorUnknown DeleteActor = iota
	// DeleteActorCustomer deletes an order the customer placed.
	DeleteActorCustomer
	// DeleteActorMerchant deletes an order the merchant received.
	DeleteActorMerchant
	// DeleteActorPlatform deletes an order placed through the platform.
	DeleteActorPlatform
)

// Validate reports whether the actor is one of the defined roles.
func (a DeleteActor) Validate() error {
	switch a {
	case DeleteActorCustomer, DeleteActorMerchant, DeleteActorPlatform:
		return nil
	default:
		return errs.NewValueIsInvalidError("delete actor")
	}
}

// DeleteOrderCommand represents a request to delete an order before a rider
// has claimed it, acting as the order's customer, merchant or platform.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actorUserID kernel.UUID
	actor       DeleteActor

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(orderID, actorUserID kernel.UUID, actor DeleteActor) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorUserID(actorUserID),
		cmd.setActor(actor),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorUserID returns the requesting user's account identifier.
func (c DeleteOrderCommand) ActorUserID() kernel.UUID {
	return c.actorUserID
}

// Actor returns the role the request acts under.
func (c DeleteOrderCommand) Actor() DeleteActor {
	return c.actor
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeleteOrderCommand) setActorUserID(actorUserID kernel.UUID) error {
	if err := actorUserID.Validate(); err != nil {
		return err
	}

	c.actorUserID = actorUserID
	return nil
}

func (c *DeleteOrderCommand) setActor(actor DeleteActor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
