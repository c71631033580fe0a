package commands

import (
	"context"

	"speedeats/internal/pkg/errs"
)

// RemoveEnrollmentCommandHandler handles the business logic for expelling a
// merchant or rider from a platform.
//
// Only the owning platform may remove an enrollment. Removal revokes
// access immediately: an expelled merchant's meals stop being orderable
// and an expelled rider loses the platform from their claim scope.
type RemoveEnrollmentCommandHandler struct {
	uowFactory EnrollmentUoWFactory
}

// NewRemoveEnrollmentCommandHandler creates a handler for enrollment
// removal.
func NewRemoveEnrollmentCommandHandler(uowFactory EnrollmentUoWFactory) RemoveEnrollmentCommandHandler {
	return RemoveEnrollmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the enrollment removal command.
func (h *RemoveEnrollmentCommandHandler) Handle(ctx context.Context, cmd RemoveEnrollmentCommand) error {
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

	platform, err := uow.PartyRepository().GetPlatformByUser(ctx, cmd.PlatformUserID())
	if err != nil {
		return err
	}

	enrollmentRepo := uow.EnrollmentRepository()
	enrollment, err := enrollmentRepo.Get(ctx, cmd.EnrollmentID())
	if err != nil {
		return err
	}

	if !enrollment.PlatformID().IsEqual(platform.ID()) {
		return errs.NewObjectNotFoundError("enrollment", cmd.EnrollmentID().String())
	}

	if err = enrollmentRepo.Delete(ctx, enrollment.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
