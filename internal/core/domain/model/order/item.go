package order

import (
	"errors"
	"fmt"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// newItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via its order constructor or RestoreItem")

// Item is one line of an order. Unit price and line price are frozen
// snapshots taken at order time; later changes to the meal's price never
// alter historical orders.
type Item struct {
	id        kernel.UUID
	mealID    kernel.UUID
	mealName  string
	quantity  int
	unitPrice kernel.Money
	linePrice kernel.Money

	isConstructed bool
}

// ItemSpec carries the inputs for one order line: the meal reference, its
// current price, and the requested quantity. A quantity below 1 is clamped
// to 1.
type ItemSpec struct {
	MealID    kernel.UUID
	MealName  string
	UnitPrice kernel.Money
	Quantity  int
}

// newItem builds a line from its spec, applying the pricing rule:
// line price = round_half_up(unit x quantity x (1 - rate), 2).
func newItem(spec ItemSpec, rate kernel.DiscountRate) (*Item, error) {
	if err := spec.MealID.Validate(); err != nil {
		return nil, err
	}
	if spec.MealName == "" {
		return nil, errs.NewValueIsRequiredError("meal name")
	}

	quantity := spec.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return &Item{
		id:            kernel.NewUUID(),
		mealID:        spec.MealID,
		mealName:      spec.MealName,
		quantity:      quantity,
		unitPrice:     spec.UnitPrice,
		linePrice:     spec.UnitPrice.MulQuantity(quantity).ApplyDiscount(rate),
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a line from persistence without recomputing the
// frozen prices.
func RestoreItem(
	id kernel.UUID,
	mealID kernel.UUID,
	mealName string,
	quantity int,
	unitPrice kernel.Money,
	linePrice kernel.Money,
) (*Item, error) {
	if err := errors.Join(id.Validate(), mealID.Validate()); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}

	return &Item{
		id:            id,
		mealID:        mealID,
		mealName:      mealName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		linePrice:     linePrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MealID returns the referenced meal's identifier.
func (i *Item) MealID() kernel.UUID {
	return i.mealID
}

// MealName returns the meal name snapshot taken at order time.
func (i *Item) MealName() string {
	return i.mealName
}

// Quantity returns the ordered quantity (always >= 1).
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the frozen per-unit price snapshot.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LinePrice returns the frozen discounted line total.
func (i *Item) LinePrice() kernel.Money {
	return i.linePrice
}
