package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
)

// GetMerchantDetailQueryHandler builds a merchant's storefront view from
// the database. The merchant must hold an approved enrollment on the
// platform; to a customer, an unenrolled merchant does not exist there.
type GetMerchantDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantDetailQueryHandler creates a handler for storefront
// queries.
func NewGetMerchantDetailQueryHandler(db *gorm.DB) GetMerchantDetailQueryHandler {
	return GetMerchantDetailQueryHandler{db: db}
}

// Handle executes the storefront query.
func (h GetMerchantDetailQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantDetailQuery,
) (GetMerchantDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMerchantDetailQueryResponse{}, err
	}

	resp, err := h.fetchMerchant(ctx, query)
	if err != nil {
		return GetMerchantDetailQueryResponse{}, err
	}

	if resp.Meals, err = h.fetchMeals(ctx, query); err != nil {
		return GetMerchantDetailQueryResponse{}, err
	}

	return resp, nil
}

func (h GetMerchantDetailQueryHandler) fetchMerchant(
	ctx context.Context,
	query GetMerchantDetailQuery,
) (GetMerchantDetailQueryResponse, error) {
	var (
		id           uuid.UUID
		discountRate decimal.NullDecimal
		resp         GetMerchantDetailQueryResponse
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			m.phone,
			m.address,
			m.rating_score,
			m.rating_count,
			d.rate
		FROM merchants m
		JOIN enrollments e
		  ON e.applicant_id = m.id
		 AND e.kind = 'merchant'
		 AND e.platform_id = ?
		 AND e.status = 'approved'
		LEFT JOIN discounts d
		  ON d.merchant_id = m.id
		 AND d.platform_id = ?
		WHERE m.id = ?
	`, query.PlatformID().Bytes(), query.PlatformID().Bytes(), query.MerchantID().Bytes()).Row()

	err := row.Scan(
		&id, &resp.Name, &resp.Phone, &resp.Address,
		&resp.RatingScore, &resp.RatingCount, &discountRate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetMerchantDetailQueryResponse{}, errs.NewObjectNotFoundError(
			"merchant on platform", query.MerchantID().String(),
		)
	}
	if err != nil {
		return GetMerchantDetailQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetMerchantDetailQueryResponse{}, err
	}
	if discountRate.Valid {
		resp.DiscountRate = &discountRate.Decimal
	}

	return resp, nil
}

func (h GetMerchantDetailQueryHandler) fetchMeals(
	ctx context.Context,
	query GetMerchantDetailQuery,
) ([]MealResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			meal_type,
			rating_score,
			rating_count
		FROM meals
		WHERE merchant_id = ?
		  AND platform_id = ?
		ORDER BY name, id
	`, query.MerchantID().Bytes(), query.PlatformID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meals := make([]MealResponse, 0)
	for rows.Next() {
		var (
			id   uuid.UUID
			meal MealResponse
		)

		if err = rows.Scan(
			&id, &meal.Name, &meal.Price, &meal.MealType,
			&meal.RatingScore, &meal.RatingCount,
		); err != nil {
			return nil, err
		}

		if meal.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		meals = append(meals, meal)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}
