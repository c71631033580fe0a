package order

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
)

// ErrSelectorIsNotConstructed is returned when a Selector was not created
// through SelectByOrder or SelectByGroup.
var ErrSelectorIsNotConstructed = errors.New(
	"Selector must be created via SelectByOrder or SelectByGroup",
)

// Selector identifies the orders a dispatch operation targets: either a
// single order by id, or the whole (merchant, customer) group of unassigned
// orders a rider browses. Both forms are supported by every dispatch
// operation (claim, release, mark ready).
type Selector struct {
	orderID    *kernel.UUID
	merchantID *kernel.UUID
	customerID *kernel.UUID

	isConstructed bool
}

// SelectByOrder targets one order by its identifier.
func SelectByOrder(orderID kernel.UUID) (Selector, error) {
	if err := orderID.Validate(); err != nil {
		return Selector{}, err
	}

	return Selector{orderID: &orderID, isConstructed: true}, nil
}

// SelectByGroup targets every matching order of a (merchant, customer) pair.
func SelectByGroup(merchantID, customerID kernel.UUID) (Selector, error) {
	if err := errors.Join(merchantID.Validate(), customerID.Validate()); err != nil {
		return Selector{}, err
	}

	return Selector{merchantID: &merchantID, customerID: &customerID, isConstructed: true}, nil
}

// Validate ensures the Selector was created through a constructor.
func (s Selector) Validate() error {
	if !s.isConstructed {
		return ErrSelectorIsNotConstructed
	}
	return nil
}

// ByOrder reports whether the selector targets a single order.
func (s Selector) ByOrder() bool {
	return s.orderID != nil
}

// OrderID returns the targeted order id (nil for group selectors).
func (s Selector) OrderID() *kernel.UUID {
	return s.orderID
}

// MerchantID returns the group's merchant id (nil for single-order selectors).
func (s Selector) MerchantID() *kernel.UUID {
	return s.merchantID
}

// CustomerID returns the group's customer id (nil for single-order selectors).
func (s Selector) CustomerID() *kernel.UUID {
	return s.customerID
}
