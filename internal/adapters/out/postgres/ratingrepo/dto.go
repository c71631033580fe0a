package ratingrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/rating"
)

// OrderRatingDTO maps a review to the order_ratings table. The unique
// index on the order reference is what enforces one review per order.
type OrderRatingDTO struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID           `gorm:"type:uuid;uniqueIndex;not null"`
	MerchantScore decimal.Decimal     `gorm:"type:numeric(4,2);not null"`
	PlatformScore decimal.Decimal     `gorm:"type:numeric(4,2);not null"`
	RiderScore    decimal.NullDecimal `gorm:"type:numeric(4,2)"`
	Comment       string              `gorm:"type:varchar(1024)"`
	CreatedAt     time.Time           `gorm:"not null"`
}

// TableName returns the database table name for reviews.
func (OrderRatingDTO) TableName() string {
	return "order_ratings"
}

// ItemRatingDTO maps one per-item score to the order_item_ratings table.
type ItemRatingDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderRatingID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ItemID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	MealID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Score         decimal.Decimal `gorm:"type:numeric(4,2);not null"`
}

// TableName returns the database table name for per-item scores.
func (ItemRatingDTO) TableName() string {
	return "order_item_ratings"
}

func fromDomain(review *rating.OrderRating) (OrderRatingDTO, []ItemRatingDTO) {
	dto := OrderRatingDTO{
		ID:            review.ID().Bytes(),
		OrderID:       review.OrderID().Bytes(),
		MerchantScore: review.Merchant().Decimal(),
		PlatformScore: review.Platform().Decimal(),
		Comment:       review.Comment(),
		CreatedAt:     review.CreatedAt(),
	}
	if rider := review.Rider(); rider != nil {
		dto.RiderScore = decimal.NullDecimal{Decimal: rider.Decimal(), Valid: true}
	}

	items := make([]ItemRatingDTO, 0, len(review.ItemRatings()))
	for _, itemRating := range review.ItemRatings() {
		items = append(items, ItemRatingDTO{
			ID:            uuid.New(),
			OrderRatingID: review.ID().Bytes(),
			ItemID:        itemRating.ItemID().Bytes(),
			MealID:        itemRating.MealID().Bytes(),
			Score:         itemRating.Score().Decimal(),
		})
	}
	return dto, items
}

func toDomain(dto OrderRatingDTO, itemDTOs []ItemRatingDTO) (*rating.OrderRating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	merchant, err := kernel.NewRating(dto.MerchantScore)
	if err != nil {
		return nil, err
	}
	platform, err := kernel.NewRating(dto.PlatformScore)
	if err != nil {
		return nil, err
	}
	var rider *kernel.Rating
	if dto.RiderScore.Valid {
		score, err := kernel.NewRating(dto.RiderScore.Decimal)
		if err != nil {
			return nil, err
		}
		rider = &score
	}

	itemRatings := make([]rating.ItemRating, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		itemID, err := kernel.UUIDFromBytes(itemDTO.ItemID[:])
		if err != nil {
			return nil, err
		}
		mealID, err := kernel.UUIDFromBytes(itemDTO.MealID[:])
		if err != nil {
			return nil, err
		}
		score, err := kernel.NewRating(itemDTO.Score)
		if err != nil {
			return nil, err
		}
		itemRating, err := rating.NewItemRating(itemID, mealID, score)
		if err != nil {
			return nil, err
		}
		itemRatings = append(itemRatings, itemRating)
	}

	return rating.RestoreOrderRating(id, orderID, merchant, platform, rider, itemRatings, dto.Comment, dto.CreatedAt)
}
