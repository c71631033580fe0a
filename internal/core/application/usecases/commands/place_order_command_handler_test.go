package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"speedeats/internal/core/application/usecases/commands"
	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/pkg/errs"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	merchantID := kernel.NewUUID()
	platformID := kernel.NewUUID()
	meal := newTestMeal(t, merchantID, platformID, "9.50")

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customer.UserID(), merchantID, platformID, nil,
		[]commands.OrderItemRequest{{MealID: meal.ID(), Quantity: 2}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo)
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	enrollmentRepo.On("IsApproved", ctx, party.EnrollmentKindMerchant, merchantID, platformID).
		Return(true, nil).Once()
	partyRepo.On("GetMeal", ctx, meal.ID(), merchantID, platformID).Return(meal, nil).Once()
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := FuncDispatchUoWFactory(func() commands.DispatchUoW { return uow })
	h := commands.NewPlaceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	partyRepo.AssertExpectations(t)
	enrollmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_RegisteredDiscountApplied(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	merchantID := kernel.NewUUID()
	platformID := kernel.NewUUID()
	meal := newTestMeal(t, merchantID, platformID, "10.00")
	discount := newTestDiscount(t, merchantID, platformID, "0.30")
	discountID := discount.ID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customer.UserID(), merchantID, platformID, &discountID,
		[]commands.OrderItemRequest{{MealID: meal.ID(), Quantity: 1}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo)
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	enrollmentRepo.On("IsApproved", ctx, party.EnrollmentKindMerchant, merchantID, platformID).
		Return(true, nil).Once()
	partyRepo.On("GetDiscount", ctx, discountID, merchantID, platformID).
		Return(discount, nil).Once()
	partyRepo.On("GetMeal", ctx, meal.ID(), merchantID, platformID).Return(meal, nil).Once()

	var placed *order.Order
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { placed = args.Get(1).(*order.Order) }).
		Return(nil).Once()

	factory := FuncDispatchUoWFactory(func() commands.DispatchUoW { return uow })
	h := commands.NewPlaceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, placed)
	assert.Equal(t, "7.00", placed.TotalPrice().String())
	require.NotNil(t, placed.DiscountID())
	assert.True(t, placed.DiscountID().IsEqual(discountID))
}

func TestPlaceOrderCommandHandler_Handle_UnregisteredDiscountIgnored(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	merchantID := kernel.NewUUID()
	platformID := kernel.NewUUID()
	meal := newTestMeal(t, merchantID, platformID, "10.00")
	discountID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customer.UserID(), merchantID, platformID, &discountID,
		[]commands.OrderItemRequest{{MealID: meal.ID(), Quantity: 1}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo)
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	enrollmentRepo.On("IsApproved", ctx, party.EnrollmentKindMerchant, merchantID, platformID).
		Return(true, nil).Once()
	partyRepo.On("GetDiscount", ctx, discountID, merchantID, platformID).
		Return(nil, errs.NewObjectNotFoundError("discount", discountID)).Once()
	partyRepo.On("GetMeal", ctx, meal.ID(), merchantID, platformID).Return(meal, nil).Once()

	var placed *order.Order
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { placed = args.Get(1).(*order.Order) }).
		Return(nil).Once()

	factory := FuncDispatchUoWFactory(func() commands.DispatchUoW { return uow })
	h := commands.NewPlaceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, placed)
	assert.Equal(t, "10.00", placed.TotalPrice().String())
	assert.Nil(t, placed.DiscountID())
}

func TestPlaceOrderCommandHandler_Handle_NoDiscountRequested_FullPrice(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	merchantID := kernel.NewUUID()
	platformID := kernel.NewUUID()
	meal := newTestMeal(t, merchantID, platformID, "10.00")

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customer.UserID(), merchantID, platformID, nil,
		[]commands.OrderItemRequest{{MealID: meal.ID(), Quantity: 1}},
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo)
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	enrollmentRepo.On("IsApproved", ctx, party.EnrollmentKindMerchant, merchantID, platformID).
		Return(true, nil).Once()
	partyRepo.On("GetMeal", ctx, meal.ID(), merchantID, platformID).Return(meal, nil).Once()

	var placed *order.Order
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { placed = args.Get(1).(*order.Order) }).
		Return(nil).Once()

	factory := FuncDispatchUoWFactory(func() commands.DispatchUoW { return uow })
	h := commands.NewPlaceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// A discount registered for the pair does not apply unless the customer
	// asked for it, so the lookup must never happen.
	partyRepo.AssertNotCalled(t, "GetDiscount",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	require.NotNil(t, placed)
	assert.Equal(t, "10.00", placed.TotalPrice().String())
	assert.Nil(t, placed.DiscountID())
}

func TestPlaceOrderCommandHandler_Handle_MerchantNotApproved(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	merchantID := kernel.NewUUID()
	platformID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customer.UserID(), merchantID, platformID, nil,
		[]commands.OrderItemRequest{{MealID: kernel.NewUUID(), Quantity: 1}},
	)
	require.NoError(t, err)

	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo).Once()
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	enrollmentRepo.On("IsApproved", ctx, party.EnrollmentKindMerchant, merchantID, platformID).
		Return(false, nil).Once()

	factory := FuncDispatchUoWFactory(func() commands.DispatchUoW { return uow })
	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_MealNotFound(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	merchantID := kernel.NewUUID()
	platformID := kernel.NewUUID()
	mealID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customer.UserID(), merchantID, platformID, nil,
		[]commands.OrderItemRequest{{MealID: mealID, Quantity: 1}},
	)
	require.NoError(t, err)

	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo)
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	enrollmentRepo.On("IsApproved", ctx, party.EnrollmentKindMerchant, merchantID, platformID).
		Return(true, nil).Once()
	partyRepo.On("GetMeal", ctx, mealID, merchantID, platformID).
		Return(nil, errs.NewObjectNotFoundError("meal", mealID.String())).Once()

	menu := newTestMeal(t, merchantID, platformID, "9.50")
	partyRepo.On("GetMealsByMerchant", ctx, merchantID, platformID).
		Return([]*party.Meal{menu}, nil).Once()

	factory := FuncDispatchUoWFactory(func() commands.DispatchUoW { return uow })
	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), menu.ID().String())

	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := FuncDispatchUoWFactory(func() commands.DispatchUoW { return new(MockUoW) })
	h := commands.NewPlaceOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customer.UserID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		[]commands.OrderItemRequest{{MealID: kernel.NewUUID(), Quantity: 1}},
	)
	require.NoError(t, err)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	factory := FuncDispatchUoWFactory(func() commands.DispatchUoW { return uow })
	h := commands.NewPlaceOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestNewPlaceOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, nil,
	)
	require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
}
