package commands

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// OrderItemRequest is one requested line of a new order: which meal and how
// many. Pricing is resolved by the handler from the meal's current price.
type OrderItemRequest struct {
	MealID   kernel.UUID
	Quantity int
}

// PlaceOrderCommand represents a customer's request to place an order with
// one merchant on one platform, optionally naming a discount to apply.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerUserID kernel.UUID
	merchantID     kernel.UUID
	platformID     kernel.UUID
	discountID     *kernel.UUID
	items          []OrderItemRequest

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. Validates
// that all identifiers are valid and at least one item is requested. The
// discount id is optional; pass nil to order at full price.
func NewPlaceOrderCommand(
	orderID, customerUserID, merchantID, platformID kernel.UUID,
	discountID *kernel.UUID,
	items []OrderItemRequest,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerUserID(customerUserID),
		cmd.setMerchantID(merchantID),
		cmd.setPlatformID(platformID),
		cmd.setDiscountID(discountID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerUserID returns the ordering user's account identifier.
func (c PlaceOrderCommand) CustomerUserID() kernel.UUID {
	return c.customerUserID
}

// MerchantID returns the merchant the order is placed with.
func (c PlaceOrderCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// PlatformID returns the platform the order is placed through.
func (c PlaceOrderCommand) PlatformID() kernel.UUID {
	return c.platformID
}

// DiscountID returns the discount the customer asked to apply, or nil.
func (c PlaceOrderCommand) DiscountID() *kernel.UUID {
	return c.discountID
}

// Items returns the requested order lines.
func (c PlaceOrderCommand) Items() []OrderItemRequest {
	return c.items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerUserID(customerUserID kernel.UUID) error {
	if err := customerUserID.Validate(); err != nil {
		return err
	}

	c.customerUserID = customerUserID
	return nil
}

func (c *PlaceOrderCommand) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *PlaceOrderCommand) setPlatformID(platformID kernel.UUID) error {
	if err := platformID.Validate(); err != nil {
		return err
	}

	c.platformID = platformID
	return nil
}

func (c *PlaceOrderCommand) setDiscountID(discountID *kernel.UUID) error {
	if discountID != nil {
		if err := discountID.Validate(); err != nil {
			return err
		}
	}

	c.discountID = discountID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []OrderItemRequest) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.MealID.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
