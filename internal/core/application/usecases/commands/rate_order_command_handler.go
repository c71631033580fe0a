package commands

import (
	"context"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/core/domain/model/rating"
	"speedeats/internal/core/domain/services"
	"speedeats/internal/core/ports"
	"speedeats/internal/pkg/errs"
)

// RateOrderCommandHandler handles the business logic for reviewing a
// completed order.
//
// Preconditions are checked in a fixed sequence so the caller always gets
// the most specific failure: the user must hold the customer role, the
// order must exist and belong to them, the order must be completed, the
// order must not have been reviewed before, a delivered order must carry a
// rider score, and the item scores must cover the order exactly.
//
// On success the review row and all rating aggregate updates (merchant,
// platform, rider, one per rated meal) commit in a single transaction;
// either the whole review lands or none of it does.
type RateOrderCommandHandler struct {
	uowFactory   RatingUoWFactory
	ratingPolicy services.RatingPolicy
}

// NewRateOrderCommandHandler creates a handler for order reviews.
func NewRateOrderCommandHandler(uowFactory RatingUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory:   uowFactory,
		ratingPolicy: services.NewRatingPolicy(),
	}
}

// Handle processes the review command.
func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !aggregate.CustomerID().IsEqual(customer.ID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	if aggregate.Status() != order.Completed {
		return errs.NewInvalidStateError(aggregate.Status().String(), "rate")
	}

	ratingRepo := uow.RatingRepository()
	rated, err := ratingRepo.ExistsForOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if rated {
		return errs.NewConflictError("order rating")
	}

	review, err := h.buildReview(aggregate, cmd)
	if err != nil {
		return err
	}

	if err = h.ratingPolicy.Review(aggregate, review); err != nil {
		return err
	}

	if err = h.applyReview(ctx, ratingRepo, aggregate, review); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildReview turns the command's item scores into a review, resolving each
// scored item against the order's lines. A score for an item the order does
// not have cannot be resolved to a meal and is rejected here. The rider
// score is settled first: a missing one on a delivered order fails before
// any item diagnostics, and one given for an order that never had a rider
// is dropped, not rejected.
func (h *RateOrderCommandHandler) buildReview(
	aggregate *order.Order, cmd RateOrderCommand,
) (*rating.OrderRating, error) {
	riderScore := cmd.RiderScore()
	switch {
	case aggregate.RiderID() == nil:
		riderScore = nil
	case riderScore == nil:
		return nil, errs.NewValueIsRequiredError("rider rating")
	}

	mealsByItem := make(map[kernel.UUID]kernel.UUID, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		mealsByItem[item.ID()] = item.MealID()
	}

	itemRatings := make([]rating.ItemRating, 0, len(cmd.ItemScores()))
	for _, score := range cmd.ItemScores() {
		mealID, ok := mealsByItem[score.ItemID]
		if !ok {
			return nil, errs.NewValueIsInvalidError("item rating for unknown order item")
		}

		itemRating, err := rating.NewItemRating(score.ItemID, mealID, score.Score)
		if err != nil {
			return nil, err
		}
		itemRatings = append(itemRatings, itemRating)
	}

	return rating.NewOrderRating(
		kernel.NewUUID(),
		aggregate.ID(),
		cmd.MerchantScore(),
		cmd.PlatformScore(),
		riderScore,
		itemRatings,
		cmd.Comment(),
	)
}

// applyReview persists the review row and fans the scores out to every
// rating aggregate the order touches.
func (h *RateOrderCommandHandler) applyReview(
	ctx context.Context,
	ratingRepo ports.RatingRepository,
	aggregate *order.Order,
	review *rating.OrderRating,
) error {
	if err := ratingRepo.Add(ctx, review); err != nil {
		return err
	}

	if err := ratingRepo.ApplyToMerchant(ctx, aggregate.MerchantID(), review.Merchant()); err != nil {
		return err
	}
	if err := ratingRepo.ApplyToPlatform(ctx, aggregate.PlatformID(), review.Platform()); err != nil {
		return err
	}

	if riderScore := review.Rider(); riderScore != nil && aggregate.RiderID() != nil {
		if err := ratingRepo.ApplyToRider(ctx, *aggregate.RiderID(), *riderScore); err != nil {
			return err
		}
	}

	for _, itemRating := range review.ItemRatings() {
		if err := ratingRepo.ApplyToMeal(ctx, itemRating.MealID(), itemRating.Score()); err != nil {
			return err
		}
	}

	return nil
}
