package commands

import (
	"context"

	"speedeats/internal/pkg/errs"
)

// PickupOrderCommandHandler handles the business logic for completing an
// order pickup.
//
// The completion is a conditional write that moves the order from ready to
// completed only while it belongs to the acknowledging customer. A zero
// affected count is diagnosed after the fact: a missing or foreign order
// reads as not found, anything else as an invalid lifecycle state.
type PickupOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPickupOrderCommandHandler creates a handler for order pickups.
func NewPickupOrderCommandHandler(uowFactory OrderUoWFactory) PickupOrderCommandHandler {
	return PickupOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
func (h *PickupOrderCommandHandler) Handle(ctx context.Context, cmd PickupOrderCommand) error {
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

	customer, err := uow.PartyRepository().GetCustomerByUser(ctx, cmd.CustomerUserID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	completed, err := orderRepo.CompletePickup(ctx, cmd.OrderID(), customer.ID())
	if err != nil {
		return err
	}

	if completed == 0 {
		aggregate, getErr := orderRepo.Get(ctx, cmd.OrderID())
		if getErr != nil {
			return getErr
		}
		if !aggregate.CustomerID().IsEqual(customer.ID()) {
			return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
		}
		return errs.NewInvalidStateError(aggregate.Status().String(), "pickup")
	}

	return uow.Commit(ctx)
}
