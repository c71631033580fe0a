package partyrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/party"
)

// CustomerDTO maps a customer profile to the customers table.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Phone   string    `gorm:"type:varchar(32);not null"`
	Address string    `gorm:"type:varchar(512);not null"`
}

// TableName returns the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// MerchantDTO maps a merchant profile to the merchants table. The rating
// pair is the running average maintained by the rating repository.
type MerchantDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Phone       string          `gorm:"type:varchar(32);not null"`
	Address     string          `gorm:"type:varchar(512);not null"`
	RatingScore decimal.Decimal `gorm:"type:numeric(4,2);not null;default:0"`
	RatingCount int64           `gorm:"not null;default:0"`
}

// TableName returns the database table name for merchants.
func (MerchantDTO) TableName() string {
	return "merchants"
}

// PlatformDTO maps a platform profile to the platforms table.
type PlatformDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Phone       string          `gorm:"type:varchar(32);not null"`
	RatingScore decimal.Decimal `gorm:"type:numeric(4,2);not null;default:0"`
	RatingCount int64           `gorm:"not null;default:0"`
}

// TableName returns the database table name for platforms.
func (PlatformDTO) TableName() string {
	return "platforms"
}

// RiderDTO maps a rider profile to the riders table.
type RiderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Phone       string          `gorm:"type:varchar(32);not null"`
	Status      string          `gorm:"type:varchar(16);not null"`
	RatingScore decimal.Decimal `gorm:"type:numeric(4,2);not null;default:0"`
	RatingCount int64           `gorm:"not null;default:0"`
}

// TableName returns the database table name for riders.
func (RiderDTO) TableName() string {
	return "riders"
}

// MealDTO maps a catalog meal to the meals table.
type MealDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	PlatformID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MealType    string          `gorm:"type:varchar(32);not null"`
	RatingScore decimal.Decimal `gorm:"type:numeric(4,2);not null;default:0"`
	RatingCount int64           `gorm:"not null;default:0"`
}

// TableName returns the database table name for meals.
func (MealDTO) TableName() string {
	return "meals"
}

// DiscountDTO maps a merchant's per-platform discount registration to the
// discounts table. At most one row exists per (merchant, platform) pair.
type DiscountDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MerchantID uuid.UUID       `gorm:"type:uuid;index:idx_discounts_scope,unique;not null"`
	PlatformID uuid.UUID       `gorm:"type:uuid;index:idx_discounts_scope,unique;not null"`
	Rate       decimal.Decimal `gorm:"type:numeric(5,4);not null"`
}

// TableName returns the database table name for discounts.
func (DiscountDTO) TableName() string {
	return "discounts"
}

func customerToDomain(dto CustomerDTO) (*party.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	return party.RestoreCustomer(id, userID, dto.Name, dto.Phone, dto.Address)
}

func merchantToDomain(dto MerchantDTO) (*party.Merchant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	rating, err := kernel.RestoreRatingAggregate(dto.RatingScore, dto.RatingCount)
	if err != nil {
		return nil, err
	}
	return party.RestoreMerchant(id, userID, dto.Name, dto.Phone, dto.Address, rating)
}

func platformToDomain(dto PlatformDTO) (*party.Platform, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	rating, err := kernel.RestoreRatingAggregate(dto.RatingScore, dto.RatingCount)
	if err != nil {
		return nil, err
	}
	return party.RestorePlatform(id, userID, dto.Name, dto.Phone, rating)
}

func riderToDomain(dto RiderDTO) (*party.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	status, err := party.RiderStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	rating, err := kernel.RestoreRatingAggregate(dto.RatingScore, dto.RatingCount)
	if err != nil {
		return nil, err
	}
	return party.RestoreRider(id, userID, dto.Name, dto.Phone, status, rating)
}

func mealToDomain(dto MealDTO) (*party.Meal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}
	platformID, err := kernel.UUIDFromBytes(dto.PlatformID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}
	mealType, err := party.MealTypeFromString(dto.MealType)
	if err != nil {
		return nil, err
	}
	rating, err := kernel.RestoreRatingAggregate(dto.RatingScore, dto.RatingCount)
	if err != nil {
		return nil, err
	}
	return party.RestoreMeal(id, merchantID, platformID, dto.Name, price, mealType, rating)
}

func discountToDomain(dto DiscountDTO) (*party.Discount, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}
	platformID, err := kernel.UUIDFromBytes(dto.PlatformID[:])
	if err != nil {
		return nil, err
	}
	rate, err := kernel.NewDiscountRate(dto.Rate)
	if err != nil {
		return nil, err
	}
	return party.RestoreDiscount(id, merchantID, platformID, rate)
}
