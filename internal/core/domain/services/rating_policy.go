package services

import (
	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/core/domain/model/rating"
	"speedeats/internal/pkg/errs"
)

// RatingPolicy is a domain service that decides whether a customer's
// review is admissible for an order.
//
// Business rules:
//   - Only completed orders can be rated
//   - The review must belong to the order it rates
//   - A rider score is required when a rider is attached to the order;
//     one submitted for an order without a rider is ignored upstream,
//     never rejected
//   - The review must score every item of the order exactly once, and
//     nothing else
//
// The one-review-per-order rule is enforced at the persistence layer;
// the policy only judges the review's shape against the order.
type RatingPolicy struct{}

// NewRatingPolicy creates a new RatingPolicy instance.
func NewRatingPolicy() RatingPolicy {
	return RatingPolicy{}
}

// Review checks the review against the order and returns nil when the
// review may be recorded.
func (p RatingPolicy) Review(o *order.Order, r *rating.OrderRating) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := r.Validate(); err != nil {
		return err
	}

	if !r.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidError("order rating does not match order")
	}

	if o.Status() != order.Completed {
		return errs.NewInvalidStateError(o.Status().String(), "rate")
	}

	if o.RiderID() != nil && r.Rider() == nil {
		return errs.NewValueIsRequiredError("rider rating")
	}

	return p.reviewItems(o, r)
}

func (p RatingPolicy) reviewItems(o *order.Order, r *rating.OrderRating) error {
	itemIDs := o.ItemIDs()
	if len(r.ItemRatings()) != len(itemIDs) {
		return errs.NewValueIsInvalidError("item ratings must cover every order item")
	}

	known := make(map[kernel.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		known[id] = struct{}{}
	}

	for _, item := range r.ItemRatings() {
		if _, ok := known[item.ItemID()]; !ok {
			return errs.NewValueIsInvalidError("item rating for unknown order item")
		}
		delete(known, item.ItemID())
	}

	return nil
}
