package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/guard"
)

var ErrGetClaimableGroupsQueryIsNotConstructed = errors.New(
	"GetClaimableGroupsQuery must be created via NewGetClaimableGroupsQuery constructor",
)

// GetClaimableGroupsQuery retrieves the unassigned orders a rider could
// claim, grouped by (merchant, customer). A group is the unit riders claim
// in one move: everything one customer currently has open with one
// merchant. Only orders on platforms the rider is approved for appear.
type GetClaimableGroupsQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClaimableGroupsQuery creates a query listing a rider's claimable
// order groups.
func NewGetClaimableGroupsQuery(riderID kernel.UUID) (GetClaimableGroupsQuery, error) {
	if err := riderID.Validate(); err != nil {
		return GetClaimableGroupsQuery{}, err
	}

	return GetClaimableGroupsQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClaimableGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimableGroupsQueryIsNotConstructed)
}

// RiderID returns the rider whose claim scope bounds the listing.
func (q GetClaimableGroupsQuery) RiderID() kernel.UUID {
	return q.riderID
}

// GetClaimableGroupsQueryResponse is one claimable (merchant, customer)
// group with its order count and combined value.
type GetClaimableGroupsQueryResponse struct {
	MerchantID   kernel.UUID
	MerchantName string
	CustomerID   kernel.UUID
	Address      string
	OrderCount   int64
	TotalPrice   decimal.Decimal
}
