package postgres

import (
	"gorm.io/gorm"

	"speedeats/internal/adapters/out/postgres/enrollmentrepo"
	"speedeats/internal/adapters/out/postgres/orderrepo"
	"speedeats/internal/adapters/out/postgres/partyrepo"
	"speedeats/internal/adapters/out/postgres/ratingrepo"
)

// Migrate creates or updates the marketplace schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&partyrepo.CustomerDTO{},
		&partyrepo.MerchantDTO{},
		&partyrepo.PlatformDTO{},
		&partyrepo.RiderDTO{},
		&partyrepo.MealDTO{},
		&partyrepo.DiscountDTO{},
		&enrollmentrepo.EnrollmentDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&ratingrepo.OrderRatingDTO{},
		&ratingrepo.ItemRatingDTO{},
	)
}
