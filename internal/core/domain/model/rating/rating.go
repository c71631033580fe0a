package rating

import (
	"errors"
	"time"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
	"speedeats/internal/pkg/guard"
)

// ErrOrderRatingIsNotConstructed is returned when using an improperly
// initialized OrderRating.
var ErrOrderRatingIsNotConstructed = errors.New("OrderRating must be created via NewOrderRating or RestoreOrderRating")

// ItemRating scores one line item of a rated order. The score feeds
// the meal's running average.
type ItemRating struct {
	itemID kernel.UUID
	mealID kernel.UUID
	score  kernel.Rating
}

// NewItemRating creates a score for one order item.
func NewItemRating(itemID, mealID kernel.UUID, score kernel.Rating) (ItemRating, error) {
	if err := errors.Join(itemID.Validate(), mealID.Validate(), score.Validate()); err != nil {
		return ItemRating{}, err
	}
	return ItemRating{itemID: itemID, mealID: mealID, score: score}, nil
}

// ItemID returns the rated order item's identifier.
func (r ItemRating) ItemID() kernel.UUID {
	return r.itemID
}

// MealID returns the meal the item was priced from.
func (r ItemRating) MealID() kernel.UUID {
	return r.mealID
}

// Score returns the item's score.
func (r ItemRating) Score() kernel.Rating {
	return r.score
}

// OrderRating is a customer's one-shot review of a completed order.
// It carries a score for the merchant, the platform, optionally the
// rider, and exactly one score per order item. An order can be rated
// at most once.
type OrderRating struct {
	id          kernel.UUID
	orderID     kernel.UUID
	merchant    kernel.Rating
	platform    kernel.Rating
	rider       *kernel.Rating
	itemRatings []ItemRating
	comment     string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewOrderRating creates a review for an order. The rider score is
// optional here; whether it must be present is decided against the
// order itself by the rating policy.
func NewOrderRating(
	id, orderID kernel.UUID,
	merchant, platform kernel.Rating,
	rider *kernel.Rating,
	itemRatings []ItemRating,
	comment string,
) (*OrderRating, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		merchant.Validate(),
		platform.Validate(),
	); err != nil {
		return nil, err
	}
	if rider != nil {
		if err := rider.Validate(); err != nil {
			return nil, err
		}
	}
	if len(itemRatings) == 0 {
		return nil, errs.NewValueIsRequiredError("item ratings")
	}

	seen := make(map[kernel.UUID]struct{}, len(itemRatings))
	for _, item := range itemRatings {
		if err := item.Score().Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[item.ItemID()]; dup {
			return nil, errs.NewValueIsInvalidError("duplicate item rating")
		}
		seen[item.ItemID()] = struct{}{}
	}

	return &OrderRating{
		id:          id,
		orderID:     orderID,
		merchant:    merchant,
		platform:    platform,
		rider:       rider,
		itemRatings: itemRatings,
		comment:     comment,
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrderRating reconstructs a review from persistence.
func RestoreOrderRating(
	id, orderID kernel.UUID,
	merchant, platform kernel.Rating,
	rider *kernel.Rating,
	itemRatings []ItemRating,
	comment string,
	createdAt time.Time,
) (*OrderRating, error) {
	orderRating, err := NewOrderRating(id, orderID, merchant, platform, rider, itemRatings, comment)
	if err != nil {
		return nil, err
	}
	orderRating.createdAt = createdAt
	return orderRating, nil
}

// Validate ensures the OrderRating was created through a constructor.
func (r *OrderRating) Validate() error {
	if r == nil {
		return ErrOrderRatingIsNotConstructed
	}
	return r.guard.Validate(ErrOrderRatingIsNotConstructed)
}

// ID returns the review's unique identifier.
func (r *OrderRating) ID() kernel.UUID {
	return r.id
}

// OrderID returns the rated order's identifier.
func (r *OrderRating) OrderID() kernel.UUID {
	return r.orderID
}

// Merchant returns the merchant's score.
func (r *OrderRating) Merchant() kernel.Rating {
	return r.merchant
}

// Platform returns the platform's score.
func (r *OrderRating) Platform() kernel.Rating {
	return r.platform
}

// Rider returns the rider's score, or nil when the order had no rider.
func (r *OrderRating) Rider() *kernel.Rating {
	return r.rider
}

// ItemRatings returns the per-item scores.
func (r *OrderRating) ItemRatings() []ItemRating {
	return r.itemRatings
}

// Comment returns the customer's free-text remark.
func (r *OrderRating) Comment() string {
	return r.comment
}

// CreatedAt returns when the review was filed.
func (r *OrderRating) CreatedAt() time.Time {
	return r.createdAt
}
