package commands

import (
	"context"
)

// MarkOrdersReadyCommandHandler handles the business logic for reporting
// delivered orders.
//
// Only orders the rider holds in assigned status move to ready; the rider
// stays attached so the later review can score them.
type MarkOrdersReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrdersReadyCommandHandler creates a handler for marking orders
// ready.
func NewMarkOrdersReadyCommandHandler(uowFactory OrderUoWFactory) MarkOrdersReadyCommandHandler {
	return MarkOrdersReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-ready command and returns the number of orders
// moved to ready.
func (h *MarkOrdersReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrdersReadyCommand) (int64, error) {
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

	marked, err := uow.OrderRepository().MarkReady(ctx, cmd.Selector(), rider.ID())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return marked, nil
}
