package commands

import (
	"context"

	"speedeats/internal/pkg/errs"
)

// ReviewEnrollmentCommandHandler handles the business logic for deciding an
// enrollment request.
//
// Only the platform the request was filed with may decide it; a request
// owned by another platform reads as not found. Decisions are final: a
// decided request cannot be decided again.
type ReviewEnrollmentCommandHandler struct {
	uowFactory EnrollmentUoWFactory
}

// NewReviewEnrollmentCommandHandler creates a handler for enrollment
// decisions.
func NewReviewEnrollmentCommandHandler(uowFactory EnrollmentUoWFactory) ReviewEnrollmentCommandHandler {
	return ReviewEnrollmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the enrollment decision command.
func (h *ReviewEnrollmentCommandHandler) Handle(ctx context.Context, cmd ReviewEnrollmentCommand) error {
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

	switch cmd.Decision() {
	case DecisionApprove:
		err = enrollment.Approve()
	case DecisionReject:
		err = enrollment.Reject()
	default:
		err = errs.NewValueIsInvalidError("decision")
	}
	if err != nil {
		return err
	}

	if err = enrollmentRepo.Update(ctx, enrollment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
