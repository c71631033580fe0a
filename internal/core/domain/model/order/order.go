package order

import (
	"errors"
	"time"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root shared by all four actor roles. It is created
// by the customer with its line items in one transaction, claimed and moved
// through the lifecycle by a rider, and picked up by the customer.
//
// Invariants:
//   - total price equals the sum of the line prices at creation time and is
//     immutable thereafter
//   - a rider is set if and only if the status is assigned, ready, or completed
//   - status transitions follow the state machine in Status
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	merchantID kernel.UUID
	platformID kernel.UUID

	// discountID is the applied discount (nil when none applied)
	discountID *kernel.UUID

	// riderID is the claiming rider (nil while unassigned)
	riderID *kernel.UUID

	items      []*Item
	totalPrice kernel.Money
	status     Status
	createdAt  time.Time

	isConstructed bool
}

// NewOrder creates an order from its item specs, pricing every line with the
// supplied discount rate and summing the rounded lines into the total. Pass
// kernel.NoDiscount() and a nil discountID when no discount applies.
//
// The order starts in Unassigned status with no rider.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	platformID kernel.UUID,
	discountID *kernel.UUID,
	rate kernel.DiscountRate,
	specs []ItemSpec,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		merchantID.Validate(),
		platformID.Validate(),
		rate.Validate(),
	); err != nil {
		return nil, err
	}
	if discountID != nil {
		if err := discountID.Validate(); err != nil {
			return nil, err
		}
	}
	if len(specs) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	items := make([]*Item, 0, len(specs))
	total := kernel.ZeroMoney()
	for _, spec := range specs {
		item, err := newItem(spec, rate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		total = total.Add(item.LinePrice())
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		merchantID:    merchantID,
		platformID:    platformID,
		discountID:    discountID,
		items:         items,
		totalPrice:    total,
		status:        Unassigned,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It re-checks the
// status/rider consistency invariant but does not reprice the frozen lines.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	platformID kernel.UUID,
	discountID *kernel.UUID,
	riderID *kernel.UUID,
	items []*Item,
	totalPrice kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		merchantID.Validate(),
		platformID.Validate(),
		status.Validate(),
		status.ValidateCanHaveRider(riderID != nil),
	); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		merchantID:    merchantID,
		platformID:    platformID,
		discountID:    discountID,
		riderID:       riderID,
		items:         items,
		totalPrice:    totalPrice,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// MerchantID returns the merchant's identifier.
func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// PlatformID returns the platform's identifier.
func (o *Order) PlatformID() kernel.UUID {
	return o.platformID
}

// DiscountID returns the applied discount's identifier, or nil.
func (o *Order) DiscountID() *kernel.UUID {
	return o.discountID
}

// RiderID returns the claiming rider's identifier, or nil while unassigned.
func (o *Order) RiderID() *kernel.UUID {
	return o.riderID
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// TotalPrice returns the frozen order total.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Claim assigns the order to a rider. Only unassigned orders can be claimed;
// the persistence layer additionally enforces this with a conditional update
// so concurrent claims resolve to one winner.
func (o *Order) Claim(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = &riderID
	return nil
}

// Release returns a claimed order to the unassigned pool, clearing the rider.
// Releasing from ready cancels the delivery, not the order.
func (o *Order) Release() error {
	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.riderID = nil
	return nil
}

// MarkReady marks a claimed order as delivered and awaiting customer pickup.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Pickup records the customer's acknowledgement of physical pickup, completing
// the order and making it eligible for rating.
func (o *Order) Pickup() error {
	newStatus, err := o.status.Pickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ValidateCanBeDeleted allows deletion only while unassigned or cancelled.
// Role and ownership checks are the caller's responsibility and happen before
// this status check.
func (o *Order) ValidateCanBeDeleted() error {
	return o.status.ValidateCanBeDeleted()
}

// ItemIDs returns the identifiers of the order's line items, in order.
func (o *Order) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		ids = append(ids, item.ID())
	}
	return ids
}
