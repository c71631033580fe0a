package ports

import (
	"context"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for order reviews and
// the running rating aggregates they feed.
//
// A review fans out to five targets: the review row itself, then one
// aggregate update each for the merchant, the platform, the rider, and
// every rated meal. All of it must land in one transaction through the
// unit of work, so a review is never half-applied. The Apply* updates are
// single atomic SQL expressions over the stored (score, count) pair,
// which keeps concurrent reviews of different orders correct without
// row locks taken in application code.
type RatingRepository interface {
	// Add persists a review and its per-item scores. The unique index on
	// the order reference turns a double submission into
	// errs.ConflictError.
	Add(ctx context.Context, review *rating.OrderRating) error

	// ExistsForOrder reports whether the order has already been reviewed.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)

	// GetByOrder retrieves the order's review with its item scores.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*rating.OrderRating, error)

	// ApplyToMerchant folds one score into the merchant's running average.
	ApplyToMerchant(ctx context.Context, merchantID kernel.UUID, score kernel.Rating) error

	// ApplyToPlatform folds one score into the platform's running average.
	ApplyToPlatform(ctx context.Context, platformID kernel.UUID, score kernel.Rating) error

	// ApplyToRider folds one score into the rider's running average.
	ApplyToRider(ctx context.Context, riderID kernel.UUID, score kernel.Rating) error

	// ApplyToMeal folds one score into the meal's running average.
	ApplyToMeal(ctx context.Context, mealID kernel.UUID, score kernel.Rating) error
}
