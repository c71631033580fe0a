package commands

import (
	"context"

	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/pkg/errs"
)

// ClaimOrdersCommandHandler handles the business logic for claiming orders.
//
// The claim itself is one conditional write: it assigns the rider to every
// selected order that is still unassigned and was placed on a platform the
// rider is approved for. When several riders race for the same orders the
// database resolves the race, and each order goes to exactly one winner.
// The handler reports how many orders the rider actually won; only a
// single-order claim that won nothing is an error.
type ClaimOrdersCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewClaimOrdersCommandHandler creates a handler for claiming orders.
func NewClaimOrdersCommandHandler(uowFactory DispatchUoWFactory) ClaimOrdersCommandHandler {
	return ClaimOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command and returns the number of orders won.
func (h *ClaimOrdersCommandHandler) Handle(ctx context.Context, cmd ClaimOrdersCommand) (int64, error) {
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

	platformIDs, err := uow.EnrollmentRepository().ApprovedPlatformIDs(
		ctx, party.EnrollmentKindRider, rider.ID(),
	)
	if err != nil {
		return 0, err
	}

	var claimed int64
	if len(platformIDs) > 0 {
		claimed, err = uow.OrderRepository().Claim(ctx, cmd.Selector(), rider.ID(), platformIDs)
		if err != nil {
			return 0, err
		}
	}

	// A single-order claim that moved nothing lost the race (or the order
	// never was claimable). A group claim may legitimately match nothing.
	if claimed == 0 && cmd.Selector().ByOrder() {
		return 0, errs.NewConflictError("order claim")
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return claimed, nil
}
