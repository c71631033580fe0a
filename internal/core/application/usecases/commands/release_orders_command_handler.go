package commands

import (
	"context"
)

// ReleaseOrdersCommandHandler handles the business logic for releasing
// claimed orders back to the unassigned pool.
//
// The write only touches orders the rider actually holds in assigned or
// ready status; orders meanwhile completed or claimed by nobody remain
// untouched. The rider reference is cleared so the orders become claimable
// again.
type ReleaseOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReleaseOrdersCommandHandler creates a handler for releasing orders.
func NewReleaseOrdersCommandHandler(uowFactory OrderUoWFactory) ReleaseOrdersCommandHandler {
	return ReleaseOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command and returns the number of orders
// returned to the pool.
func (h *ReleaseOrdersCommandHandler) Handle(ctx context.Context, cmd ReleaseOrdersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rider, err := uow.PartyRepository().GetRiderByUser(ctx, cmd.RiderUserID())
	if err != nil {
		return 0, err
	}

	released, err := uow.OrderRepository().Release(ctx, cmd.Selector(), rider.ID())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
