// Package partyrepo implements PostgreSQL persistence for the marketplace's
// role profiles and catalog entities. The adapter is read-oriented: profile
// and catalog writes flow through seeding and administration paths, while
// the rating aggregates on these rows are updated by ratingrepo.
package partyrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/core/ports"
	"speedeats/internal/pkg/errs"
)

var _ ports.PartyRepository = &GormPartyRepository{}

// GormPartyRepository implements ports.PartyRepository using GORM.
type GormPartyRepository struct {
	db *gorm.DB
}

// NewGormPartyRepository creates a party repository bound to a connection
// or transaction.
func NewGormPartyRepository(db *gorm.DB) *GormPartyRepository {
	return &GormPartyRepository{db: db}
}

// GetCustomerByUser retrieves the customer profile owned by a user account.
func (r *GormPartyRepository) GetCustomerByUser(ctx context.Context, userID kernel.UUID) (*party.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer for user", userID)
		}
		return nil, err
	}
	return customerToDomain(dto)
}

// GetMerchantByUser retrieves the merchant profile owned by a user account.
func (r *GormPartyRepository) GetMerchantByUser(ctx context.Context, userID kernel.UUID) (*party.Merchant, error) {
	var dto MerchantDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("merchant for user", userID)
		}
		return nil, err
	}
	return merchantToDomain(dto)
}

// GetPlatformByUser retrieves the platform profile owned by a user account.
func (r *GormPartyRepository) GetPlatformByUser(ctx context.Context, userID kernel.UUID) (*party.Platform, error) {
	var dto PlatformDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("platform for user", userID)
		}
		return nil, err
	}
	return platformToDomain(dto)
}

// GetRiderByUser retrieves the rider profile owned by a user account.
func (r *GormPartyRepository) GetRiderByUser(ctx context.Context, userID kernel.UUID) (*party.Rider, error) {
	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider for user", userID)
		}
		return nil, err
	}
	return riderToDomain(dto)
}

// GetMerchant retrieves a merchant by its identifier.
func (r *GormPartyRepository) GetMerchant(ctx context.Context, id kernel.UUID) (*party.Merchant, error) {
	var dto MerchantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("merchant", id)
		}
		return nil, err
	}
	return merchantToDomain(dto)
}

// GetPlatform retrieves a platform by its identifier.
func (r *GormPartyRepository) GetPlatform(ctx context.Context, id kernel.UUID) (*party.Platform, error) {
	var dto PlatformDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("platform", id)
		}
		return nil, err
	}
	return platformToDomain(dto)
}

// GetMeal retrieves a meal scoped to its merchant and platform. A match on
// id alone is not enough: a meal listed under a different merchant or
// platform is reported as not found.
func (r *GormPartyRepository) GetMeal(ctx context.Context, mealID, merchantID, platformID kernel.UUID) (*party.Meal, error) {
	var dto MealDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND merchant_id = ? AND platform_id = ?",
			mealID.Bytes(), merchantID.Bytes(), platformID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("meal", mealID)
		}
		return nil, err
	}
	return mealToDomain(dto)
}

// GetMealsByMerchant retrieves a merchant's menu on one platform.
func (r *GormPartyRepository) GetMealsByMerchant(ctx context.Context, merchantID, platformID kernel.UUID) ([]*party.Meal, error) {
	var dtos []MealDTO
	err := r.db.WithContext(ctx).
		Where("merchant_id = ? AND platform_id = ?", merchantID.Bytes(), platformID.Bytes()).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	meals := make([]*party.Meal, 0, len(dtos))
	for _, dto := range dtos {
		meal, err := mealToDomain(dto)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}
	return meals, nil
}

// GetDiscount retrieves a discount by id, scoped to its merchant and platform.
func (r *GormPartyRepository) GetDiscount(ctx context.Context, discountID, merchantID, platformID kernel.UUID) (*party.Discount, error) {
	var dto DiscountDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND merchant_id = ? AND platform_id = ?",
			discountID.Bytes(), merchantID.Bytes(), platformID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("discount", discountID)
		}
		return nil, err
	}
	return discountToDomain(dto)
}
