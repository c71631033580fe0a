package ports

import (
	"context"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/party"
)

// PartyRepository defines the persistence contract for the marketplace's
// role profiles and catalog entities. Role profiles are looked up by the
// owning user account, which is how an authenticated request resolves to
// a customer, merchant, platform, or rider.
type PartyRepository interface {
	// GetCustomerByUser retrieves the customer profile owned by a user
	// account. Returns errs.ObjectNotFoundError when the user has no
	// customer role.
	GetCustomerByUser(ctx context.Context, userID kernel.UUID) (*party.Customer, error)

	// GetMerchantByUser retrieves the merchant profile owned by a user
	// account.
	GetMerchantByUser(ctx context.Context, userID kernel.UUID) (*party.Merchant, error)

	// GetPlatformByUser retrieves the platform profile owned by a user
	// account.
	GetPlatformByUser(ctx context.Context, userID kernel.UUID) (*party.Platform, error)

	// GetRiderByUser retrieves the rider profile owned by a user account.
	GetRiderByUser(ctx context.Context, userID kernel.UUID) (*party.Rider, error)

	// GetMerchant retrieves a merchant by its identifier.
	GetMerchant(ctx context.Context, id kernel.UUID) (*party.Merchant, error)

	// GetPlatform retrieves a platform by its identifier.
	GetPlatform(ctx context.Context, id kernel.UUID) (*party.Platform, error)

	// GetMeal retrieves a meal scoped to its merchant and platform. A meal
	// that exists under a different merchant or platform is still
	// errs.ObjectNotFoundError: meals never leak across scopes.
	GetMeal(ctx context.Context, mealID, merchantID, platformID kernel.UUID) (*party.Meal, error)

	// GetMealsByMerchant retrieves a merchant's menu on one platform.
	GetMealsByMerchant(ctx context.Context, merchantID, platformID kernel.UUID) ([]*party.Meal, error)

	// GetDiscount retrieves a discount by id, scoped to the merchant and
	// platform it was registered for. An id that exists under a different
	// pair is still errs.ObjectNotFoundError; callers treat that as "no
	// discount", not a failure.
	GetDiscount(ctx context.Context, discountID, merchantID, platformID kernel.UUID) (*party.Discount, error)
}
