package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"speedeats/internal/core/domain/model/kernel"
)

// GetClaimableGroupsQueryHandler lists the order groups a rider could
// claim. The approved-platform bound lives in the statement itself, so the
// listing can never show an order the matching claim would refuse.
type GetClaimableGroupsQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimableGroupsQueryHandler creates a handler for claimable group
// listings.
func NewGetClaimableGroupsQueryHandler(db *gorm.DB) GetClaimableGroupsQueryHandler {
	return GetClaimableGroupsQueryHandler{db: db}
}

// Handle executes the listing, busiest groups first.
func (h GetClaimableGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetClaimableGroupsQuery,
) ([]GetClaimableGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make([]GetClaimableGroupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.merchant_id,
			m.name,
			o.customer_id,
			c.address,
			COUNT(*),
			SUM(o.total_price)
		FROM orders o
		JOIN merchants m ON m.id = o.merchant_id
		JOIN customers c ON c.id = o.customer_id
		WHERE o.status = 'unassigned'
		  AND o.rider_id IS NULL
		  AND o.platform_id IN (
			SELECT e.platform_id
			FROM enrollments e
			WHERE e.kind = 'rider'
			  AND e.applicant_id = ?
			  AND e.status = 'approved'
		  )
		GROUP BY o.merchant_id, m.name, o.customer_id, c.address
		ORDER BY COUNT(*) DESC, o.merchant_id, o.customer_id
	`, query.RiderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			merchantID, customerID uuid.UUID
			group                  GetClaimableGroupsQueryResponse
		)

		if err = rows.Scan(
			&merchantID, &group.MerchantName, &customerID, &group.Address,
			&group.OrderCount, &group.TotalPrice,
		); err != nil {
			return nil, err
		}

		if group.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
			return nil, err
		}
		if group.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
