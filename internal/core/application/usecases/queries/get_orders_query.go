// Package queries contains read-only operations over the marketplace's
// storage. Queries bypass the aggregate layer and read projections straight
// from the database, per the CQRS split the commands package writes through.
package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
	"speedeats/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// OrderScope selects whose orders a listing returns. Every role sees the
// marketplace through its own column: customers their purchases, merchants
// their incoming orders, riders their claimed deliveries, platforms all
// traffic they host.
type OrderScope int

const (
	// ScopeUnknown is a zero value and not a valid scope.
	ScopeUnknown OrderScope = iota
	// ScopeCustomer lists orders placed by a customer.
	ScopeCustomer
	// ScopeMerchant lists orders received by a merchant.
	ScopeMerchant
	// ScopeRider lists orders claimed by a rider.
	ScopeRider
	// ScopePlatform lists orders placed through a platform.
	ScopePlatform
)

func getScopeColumns() map[OrderScope]string {
	return map[OrderScope]string{
		ScopeCustomer: "customer_id",
		ScopeMerchant: "merchant_id",
		ScopeRider:    "rider_id",
		ScopePlatform: "platform_id",
	}
}

// Column returns the orders column the scope filters on.
func (s OrderScope) Column() string {
	if column, ok := getScopeColumns()[s]; ok {
		return column
	}
	return ""
}

// Validate reports whether the scope is one of the defined values.
func (s OrderScope) Validate() error {
	if _, ok := getScopeColumns()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("order scope: %d", int(s)))
	}
	return nil
}

// GetOrdersQuery retrieves every order visible to one role profile,
// newest first.
type GetOrdersQuery struct {
	scope  OrderScope
	roleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query listing the orders visible to the role
// profile identified by roleID under the given scope.
func NewGetOrdersQuery(scope OrderScope, roleID kernel.UUID) (GetOrdersQuery, error) {
	if err := errors.Join(scope.Validate(), roleID.Validate()); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		scope:  scope,
		roleID: roleID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Scope returns the listing scope.
func (q GetOrdersQuery) Scope() OrderScope {
	return q.scope
}

// RoleID returns the role profile the listing is scoped to.
func (q GetOrdersQuery) RoleID() kernel.UUID {
	return q.roleID
}

// OrderItemResponse is one line of a listed order.
type OrderItemResponse struct {
	ID        kernel.UUID
	MealID    kernel.UUID
	MealName  string
	Quantity  int
	UnitPrice decimal.Decimal
	LinePrice decimal.Decimal
}

// GetOrdersQueryResponse is one order row of a listing.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	MerchantID   kernel.UUID
	MerchantName string
	PlatformID   kernel.UUID
	RiderID      *kernel.UUID
	TotalPrice   decimal.Decimal
	Status       string
	CreatedAt    time.Time
	Items        []OrderItemResponse
}
