package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/guard"
)

var ErrGetMerchantDetailQueryIsNotConstructed = errors.New(
	"GetMerchantDetailQuery must be created via NewGetMerchantDetailQuery constructor",
)

// GetMerchantDetailQuery retrieves a merchant's public storefront on one
// platform: contact details, running rating, and the menu with per-meal
// ratings. This is what a customer browses before placing an order.
type GetMerchantDetailQuery struct {
	merchantID kernel.UUID
	platformID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMerchantDetailQuery creates a query for a merchant's storefront on
// a platform.
func NewGetMerchantDetailQuery(merchantID, platformID kernel.UUID) (GetMerchantDetailQuery, error) {
	if err := errors.Join(merchantID.Validate(), platformID.Validate()); err != nil {
		return GetMerchantDetailQuery{}, err
	}

	return GetMerchantDetailQuery{
		merchantID: merchantID,
		platformID: platformID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantDetailQueryIsNotConstructed)
}

// MerchantID returns the merchant being browsed.
func (q GetMerchantDetailQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

// PlatformID returns the platform the storefront is browsed through.
func (q GetMerchantDetailQuery) PlatformID() kernel.UUID {
	return q.platformID
}

// MealResponse is one menu entry of a storefront.
type MealResponse struct {
	ID          kernel.UUID
	Name        string
	Price       decimal.Decimal
	MealType    string
	RatingScore decimal.Decimal
	RatingCount int64
}

// GetMerchantDetailQueryResponse is a merchant's storefront on one
// platform.
type GetMerchantDetailQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Phone        string
	Address      string
	RatingScore  decimal.Decimal
	RatingCount  int64
	DiscountRate *decimal.Decimal
	Meals        []MealResponse
}
