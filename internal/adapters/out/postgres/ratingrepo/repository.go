// Package ratingrepo implements PostgreSQL persistence for order reviews
// and the running rating averages they feed.
//
// Each Apply* method folds one score into a stored (score, count) pair with
// a single UPDATE whose SET clause computes the new half-up-rounded average
// in SQL. Concurrent reviews therefore never lose updates: the database
// serializes the read-modify-write inside the statement.
package ratingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/rating"
	"speedeats/internal/core/ports"
	"speedeats/internal/pkg/errs"
)

var _ ports.RatingRepository = &GormRatingRepository{}

// aggregateTracker tracks aggregates loaded or saved by the repository.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormRatingRepository implements ports.RatingRepository using GORM.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormRatingRepository creates a rating repository bound to a connection
// or transaction.
func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{db: db, tracker: tracker}
}

// Add persists a review and its per-item scores.
func (r *GormRatingRepository) Add(ctx context.Context, review *rating.OrderRating) error {
	if err := review.Validate(); err != nil {
		return err
	}

	dto, itemDTOs := fromDomain(review)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("order rating")
		}
		return err
	}
	if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(review.ID(), review)
	return nil
}

// ExistsForOrder reports whether the order has already been reviewed.
func (r *GormRatingRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderRatingDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByOrder retrieves the order's review with its item scores.
func (r *GormRatingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*rating.OrderRating, error) {
	var dto OrderRatingDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order rating", orderID)
		}
		return nil, err
	}

	var itemDTOs []ItemRatingDTO
	if err := r.db.WithContext(ctx).
		Find(&itemDTOs, "order_rating_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs)
}

// ApplyToMerchant folds one score into the merchant's running average.
func (r *GormRatingRepository) ApplyToMerchant(ctx context.Context, merchantID kernel.UUID, score kernel.Rating) error {
	return r.apply(ctx, "merchants", merchantID, score)
}

// ApplyToPlatform folds one score into the platform's running average.
func (r *GormRatingRepository) ApplyToPlatform(ctx context.Context, platformID kernel.UUID, score kernel.Rating) error {
	return r.apply(ctx, "platforms", platformID, score)
}

// ApplyToRider folds one score into the rider's running average.
func (r *GormRatingRepository) ApplyToRider(ctx context.Context, riderID kernel.UUID, score kernel.Rating) error {
	return r.apply(ctx, "riders", riderID, score)
}

// ApplyToMeal folds one score into the meal's running average.
func (r *GormRatingRepository) ApplyToMeal(ctx context.Context, mealID kernel.UUID, score kernel.Rating) error {
	return r.apply(ctx, "meals", mealID, score)
}

// ratedTables lists the tables carrying a (rating_score, rating_count)
// pair. apply only ever interpolates one of these names.
var ratedTables = map[string]string{
	"merchants": "merchants",
	"platforms": "platforms",
	"riders":    "riders",
	"meals":     "meals",
}

func (r *GormRatingRepository) apply(ctx context.Context, table string, id kernel.UUID, score kernel.Rating) error {
	tableName, ok := ratedTables[table]
	if !ok {
		return errs.NewValueIsInvalidError("rated table")
	}

	result := r.db.WithContext(ctx).Exec(
		//nolint:gosec //table name comes from the fixed ratedTables map
		`UPDATE `+tableName+`
		 SET rating_score = round((rating_score * rating_count + ?) / (rating_count + 1), 2),
		     rating_count = rating_count + 1
		 WHERE id = ?`,
		score.Decimal(), id.Bytes(),
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(tableName, id)
	}
	return nil
}
