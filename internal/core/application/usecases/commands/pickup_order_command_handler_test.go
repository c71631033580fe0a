package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"speedeats/internal/core/application/usecases/commands"
	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
)

func TestPickupOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	orderID := kernel.NewUUID()

	cmd, err := commands.NewPickupOrderCommand(orderID, customer.UserID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	orderRepo.On("CompletePickup", ctx, orderID, customer.ID()).Return(int64(1), nil).Once()

	factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
	h := commands.NewPickupOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPickupOrderCommandHandler_Handle_NotReady(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	aggregate := newTestOrder(t, customer.ID()) // still unassigned

	cmd, err := commands.NewPickupOrderCommand(aggregate.ID(), customer.UserID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	orderRepo.On("CompletePickup", ctx, aggregate.ID(), customer.ID()).Return(int64(0), nil).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
	h := commands.NewPickupOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)

	uow.AssertExpectations(t)
}

func TestPickupOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	aggregate := newTestOrder(t, kernel.NewUUID()) // someone else's order

	cmd, err := commands.NewPickupOrderCommand(aggregate.ID(), customer.UserID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	orderRepo.On("CompletePickup", ctx, aggregate.ID(), customer.ID()).Return(int64(0), nil).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
	h := commands.NewPickupOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	uow.AssertExpectations(t)
}
