package commands

import (
	"context"
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/pkg/errs"
)

// RequestEnrollmentCommandHandler handles the business logic for filing an
// enrollment request.
//
// The applicant's user account must hold the role matching the request
// kind. An applicant with any existing request on the platform, whatever
// its status, cannot file another one.
type RequestEnrollmentCommandHandler struct {
	uowFactory EnrollmentUoWFactory
}

// NewRequestEnrollmentCommandHandler creates a handler for enrollment
// requests.
func NewRequestEnrollmentCommandHandler(uowFactory EnrollmentUoWFactory) RequestEnrollmentCommandHandler {
	return RequestEnrollmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the enrollment request command.
func (h *RequestEnrollmentCommandHandler) Handle(ctx context.Context, cmd RequestEnrollmentCommand) error {
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

	applicantID, err := h.resolveApplicant(ctx, uow, cmd)
	if err != nil {
		return err
	}

	if _, err = uow.PartyRepository().GetPlatform(ctx, cmd.PlatformID()); err != nil {
		return err
	}

	enrollmentRepo := uow.EnrollmentRepository()
	_, err = enrollmentRepo.GetByApplicant(ctx, cmd.Kind(), applicantID, cmd.PlatformID())
	if err == nil {
		return errs.NewConflictError("enrollment")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	enrollment, err := party.NewEnrollment(cmd.EnrollmentID(), cmd.Kind(), applicantID, cmd.PlatformID())
	if err != nil {
		return err
	}

	if err = enrollmentRepo.Add(ctx, enrollment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *RequestEnrollmentCommandHandler) resolveApplicant(
	ctx context.Context, uow EnrollmentUoW, cmd RequestEnrollmentCommand,
) (kernel.UUID, error) {
	partyRepo := uow.PartyRepository()

	switch cmd.Kind() {
	case party.EnrollmentKindMerchant:
		merchant, err := partyRepo.GetMerchantByUser(ctx, cmd.ApplicantUserID())
		if err != nil {
			return kernel.UUID{}, err
		}
		return merchant.ID(), nil
	case party.EnrollmentKindRider:
		rider, err := partyRepo.GetRiderByUser(ctx, cmd.ApplicantUserID())
		if err != nil {
			return kernel.UUID{}, err
		}
		return rider.ID(), nil
	default:
		return kernel.UUID{}, errs.NewValueIsInvalidError("enrollment kind")
	}
}
