package commands

import (
	"context"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles the business logic for order deletion.
//
// The order's customer, its merchant and its platform may each delete it.
// Ownership is checked before status: an actor asking about someone else's
// order learns only that no such order exists for them, never its status.
// Deletion itself is then permitted only while the order is unassigned or
// cancelled.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ownerID, err := h.resolveOwner(ctx, uow, cmd)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !h.owns(aggregate, cmd.Actor(), ownerID) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	if err = aggregate.ValidateCanBeDeleted(); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveOwner resolves the acting user to the role record the command
// claims. A user without that role record does not get to touch orders.
func (h *DeleteOrderCommandHandler) resolveOwner(
	ctx context.Context, uow OrderUoW, cmd DeleteOrderCommand,
) (kernel.UUID, error) {
	partyRepo := uow.PartyRepository()
	switch cmd.Actor() {
	case DeleteActorMerchant:
		merchant, err := partyRepo.GetMerchantByUser(ctx, cmd.ActorUserID())
		if err != nil {
			return kernel.UUID{}, err
		}
		return merchant.ID(), nil
	case DeleteActorPlatform:
		platform, err := partyRepo.GetPlatformByUser(ctx, cmd.ActorUserID())
		if err != nil {
			return kernel.UUID{}, err
		}
		return platform.ID(), nil
	default:
		customer, err := partyRepo.GetCustomerByUser(ctx, cmd.ActorUserID())
		if err != nil {
			return kernel.UUID{}, err
		}
		return customer.ID(), nil
	}
}

func (h *DeleteOrderCommandHandler) owns(aggregate *order.Order, actor DeleteActor, ownerID kernel.UUID) bool {
	switch actor {
	case DeleteActorMerchant:
		return aggregate.MerchantID().IsEqual(ownerID)
	case DeleteActorPlatform:
		return aggregate.PlatformID().IsEqual(ownerID)
	default:
		return aggregate.CustomerID().IsEqual(ownerID)
	}
}
