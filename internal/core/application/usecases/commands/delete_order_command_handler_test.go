package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"speedeats/internal/core/application/usecases/commands"
	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/pkg/errs"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	aggregate := newTestOrder(t, customer.ID())

	cmd, err := commands.NewDeleteOrderCommand(aggregate.ID(), customer.UserID(), commands.DeleteActorCustomer)
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
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Delete", ctx, aggregate.ID()).Return(nil).Once()

	factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_MerchantActor_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newTestOrder(t, kernel.NewUUID())
	merchant, err := party.NewMerchant(
		aggregate.MerchantID(), kernel.NewUUID(), "Noodle House", "555-0101", "9 Market Sq",
	)
	require.NoError(t, err)

	cmd, err := commands.NewDeleteOrderCommand(aggregate.ID(), merchant.UserID(), commands.DeleteActorMerchant)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetMerchantByUser", ctx, merchant.UserID()).Return(merchant, nil).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	orderRepo.On("Delete", ctx, aggregate.ID()).Return(nil).Once()

	factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	aggregate := newTestOrder(t, kernel.NewUUID()) // someone else's order

	cmd, err := commands.NewDeleteOrderCommand(aggregate.ID(), customer.UserID(), commands.DeleteActorCustomer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_ClaimedOrder(t *testing.T) {
	ctx := t.Context()
	customer := newTestCustomer(t)
	aggregate := newTestOrder(t, customer.ID())
	require.NoError(t, aggregate.Claim(kernel.NewUUID()))

	cmd, err := commands.NewDeleteOrderCommand(aggregate.ID(), customer.UserID(), commands.DeleteActorCustomer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partyRepo := new(MockPartyRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetCustomerByUser", ctx, customer.UserID()).Return(customer, nil).Once()
	orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	factory := FuncOrderUoWFactory(func() commands.OrderUoW { return uow })
	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)

	uow.AssertExpectations(t)
}
