package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"speedeats/internal/core/application/usecases/commands"
	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/pkg/errs"
)

func TestRequestEnrollmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	rider := newTestRider(t)
	platform := newTestPlatform(t)

	cmd, err := commands.NewRequestEnrollmentCommand(
		kernel.NewUUID(), party.EnrollmentKindRider, rider.UserID(), platform.ID(),
	)
	require.NoError(t, err)

	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo)
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetRiderByUser", ctx, rider.UserID()).Return(rider, nil).Once()
	partyRepo.On("GetPlatform", ctx, platform.ID()).Return(platform, nil).Once()
	enrollmentRepo.On("GetByApplicant", ctx, party.EnrollmentKindRider, rider.ID(), platform.ID()).
		Return(nil, errs.NewObjectNotFoundError("enrollment", "none")).Once()
	enrollmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*party.Enrollment")).Return(nil).Once()

	factory := FuncEnrollmentUoWFactory(func() commands.EnrollmentUoW { return uow })
	h := commands.NewRequestEnrollmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	enrollmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestEnrollmentCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	rider := newTestRider(t)
	platform := newTestPlatform(t)

	existing, err := party.NewEnrollment(kernel.NewUUID(), party.EnrollmentKindRider, rider.ID(), platform.ID())
	require.NoError(t, err)

	cmd, err := commands.NewRequestEnrollmentCommand(
		kernel.NewUUID(), party.EnrollmentKindRider, rider.UserID(), platform.ID(),
	)
	require.NoError(t, err)

	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo)
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetRiderByUser", ctx, rider.UserID()).Return(rider, nil).Once()
	partyRepo.On("GetPlatform", ctx, platform.ID()).Return(platform, nil).Once()
	enrollmentRepo.On("GetByApplicant", ctx, party.EnrollmentKindRider, rider.ID(), platform.ID()).
		Return(existing, nil).Once()

	factory := FuncEnrollmentUoWFactory(func() commands.EnrollmentUoW { return uow })
	h := commands.NewRequestEnrollmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)

	uow.AssertExpectations(t)
}

func TestReviewEnrollmentCommandHandler_Handle_Approve(t *testing.T) {
	ctx := t.Context()
	platform := newTestPlatform(t)
	enrollment, err := party.NewEnrollment(
		kernel.NewUUID(), party.EnrollmentKindMerchant, kernel.NewUUID(), platform.ID(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewReviewEnrollmentCommand(enrollment.ID(), platform.UserID(), commands.DecisionApprove)
	require.NoError(t, err)

	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo).Once()
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetPlatformByUser", ctx, platform.UserID()).Return(platform, nil).Once()
	enrollmentRepo.On("Get", ctx, enrollment.ID()).Return(enrollment, nil).Once()
	enrollmentRepo.On("Update", mock.Anything, enrollment).Return(nil).Once()

	factory := FuncEnrollmentUoWFactory(func() commands.EnrollmentUoW { return uow })
	h := commands.NewReviewEnrollmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, party.EnrollmentStatusApproved, enrollment.Status())

	enrollmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReviewEnrollmentCommandHandler_Handle_ForeignPlatform(t *testing.T) {
	ctx := t.Context()
	platform := newTestPlatform(t)
	enrollment, err := party.NewEnrollment(
		kernel.NewUUID(), party.EnrollmentKindMerchant, kernel.NewUUID(), kernel.NewUUID(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewReviewEnrollmentCommand(enrollment.ID(), platform.UserID(), commands.DecisionReject)
	require.NoError(t, err)

	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo).Once()
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetPlatformByUser", ctx, platform.UserID()).Return(platform, nil).Once()
	enrollmentRepo.On("Get", ctx, enrollment.ID()).Return(enrollment, nil).Once()

	factory := FuncEnrollmentUoWFactory(func() commands.EnrollmentUoW { return uow })
	h := commands.NewReviewEnrollmentCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	uow.AssertExpectations(t)
}

func TestRemoveEnrollmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	platform := newTestPlatform(t)
	enrollment, err := party.NewEnrollment(
		kernel.NewUUID(), party.EnrollmentKindRider, kernel.NewUUID(), platform.ID(),
	)
	require.NoError(t, err)
	require.NoError(t, enrollment.Approve())

	cmd, err := commands.NewRemoveEnrollmentCommand(enrollment.ID(), platform.UserID())
	require.NoError(t, err)

	partyRepo := new(MockPartyRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartyRepository").Return(partyRepo).Once()
	uow.On("EnrollmentRepository").Return(enrollmentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	partyRepo.On("GetPlatformByUser", ctx, platform.UserID()).Return(platform, nil).Once()
	enrollmentRepo.On("Get", ctx, enrollment.ID()).Return(enrollment, nil).Once()
	enrollmentRepo.On("Delete", ctx, enrollment.ID()).Return(nil).Once()

	factory := FuncEnrollmentUoWFactory(func() commands.EnrollmentUoW { return uow })
	h := commands.NewRemoveEnrollmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	enrollmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
