package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/core/ports"
	"speedeats/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing an order.
//
// The handler resolves the ordering customer from the user account, verifies
// the merchant holds an approved enrollment on the platform, prices every
// requested line from the meal's current price, applies the customer's
// discount when it is registered for the (merchant, platform) pair, and
// persists the order in unassigned status.
type PlaceOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory DispatchUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command. The whole placement is one
// transaction: prices and the discount are read and the order is written
// under the same snapshot.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partyRepo := uow.PartyRepository()
	customer, err := partyRepo.GetCustomerByUser(ctx, cmd.CustomerUserID())
	if err != nil {
		return err
	}

	approved, err := uow.EnrollmentRepository().IsApproved(
		ctx, party.EnrollmentKindMerchant, cmd.MerchantID(), cmd.PlatformID(),
	)
	if err != nil {
		return err
	}
	if !approved {
		return errs.NewObjectNotFoundError("merchant on platform", cmd.MerchantID().String())
	}

	rate, discountID, err := h.resolveDiscount(ctx, uow, cmd)
	if err != nil {
		return err
	}

	specs := make([]order.ItemSpec, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		meal, err := partyRepo.GetMeal(ctx, item.MealID, cmd.MerchantID(), cmd.PlatformID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return h.mealNotFound(ctx, partyRepo, cmd, item.MealID)
			}
			return err
		}

		specs = append(specs, order.ItemSpec{
			MealID:    meal.ID(),
			MealName:  meal.Name(),
			UnitPrice: meal.Price(),
			Quantity:  item.Quantity,
		})
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), customer.ID(), cmd.MerchantID(), cmd.PlatformID(), discountID, rate, specs,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// mealNotFound builds the rejection for a line whose meal is not on the
// merchant's menu for the platform. The message lists the menu's valid meal
// ids so the client can correct the order without a separate lookup.
func (h *PlaceOrderCommandHandler) mealNotFound(
	ctx context.Context, partyRepo ports.PartyRepository, cmd PlaceOrderCommand, mealID kernel.UUID,
) error {
	meals, err := partyRepo.GetMealsByMerchant(ctx, cmd.MerchantID(), cmd.PlatformID())
	if err != nil {
		return errs.NewObjectNotFoundError("meal", mealID.String())
	}

	ids := make([]string, 0, len(meals))
	for _, meal := range meals {
		ids = append(ids, meal.ID().String())
	}
	return errs.NewObjectNotFoundErrorWithCause("meal", mealID.String(),
		fmt.Errorf("valid meal ids are [%s]", strings.Join(ids, ", ")))
}

// resolveDiscount looks up the discount the customer asked for, scoped to
// the order's (merchant, platform) pair. No requested discount, or an id
// not registered for that exact pair, prices at full rate; neither is an
// error.
func (h *PlaceOrderCommandHandler) resolveDiscount(
	ctx context.Context, uow DispatchUoW, cmd PlaceOrderCommand,
) (kernel.DiscountRate, *kernel.UUID, error) {
	if cmd.DiscountID() == nil {
		return kernel.NoDiscount(), nil, nil
	}

	discount, err := uow.PartyRepository().GetDiscount(
		ctx, *cmd.DiscountID(), cmd.MerchantID(), cmd.PlatformID(),
	)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.NoDiscount(), nil, nil
		}
		return kernel.DiscountRate{}, nil, err
	}

	id := discount.ID()
	return discount.Rate(), &id, nil
}
