package commands

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/pkg/guard"
)

var ErrRequestEnrollmentCommandIsNotConstructed = errors.New(
	"RequestEnrollmentCommand must be created via NewRequestEnrollmentCommand constructor",
)

// RequestEnrollmentCommand represents a merchant's or rider's request to
// join a platform.
type RequestEnrollmentCommand struct { //nolint:recvcheck //using for validation
	enrollmentID    kernel.UUID
	kind            party.EnrollmentKind
	applicantUserID kernel.UUID
	platformID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestEnrollmentCommand creates a command to file an enrollment
// request.
func NewRequestEnrollmentCommand(
	enrollmentID kernel.UUID, kind party.EnrollmentKind, applicantUserID, platformID kernel.UUID,
) (RequestEnrollmentCommand, error) {
	cmd := RequestEnrollmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEnrollmentID(enrollmentID),
		cmd.setKind(kind),
		cmd.setApplicantUserID(applicantUserID),
		cmd.setPlatformID(platformID),
	); err != nil {
		return RequestEnrollmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestEnrollmentCommand) Validate() error {
	return c.guard.Validate(ErrRequestEnrollmentCommandIsNotConstructed)
}

// EnrollmentID returns the identifier the new request will be stored under.
func (c RequestEnrollmentCommand) EnrollmentID() kernel.UUID {
	return c.enrollmentID
}

// Kind reports whether a merchant or a rider is applying.
func (c RequestEnrollmentCommand) Kind() party.EnrollmentKind {
	return c.kind
}

// ApplicantUserID returns the applying user's account identifier.
func (c RequestEnrollmentCommand) ApplicantUserID() kernel.UUID {
	return c.applicantUserID
}

// PlatformID returns the platform being applied to.
func (c RequestEnrollmentCommand) PlatformID() kernel.UUID {
	return c.platformID
}

func (c *RequestEnrollmentCommand) setEnrollmentID(enrollmentID kernel.UUID) error {
	if err := enrollmentID.Validate(); err != nil {
		return err
	}

	c.enrollmentID = enrollmentID
	return nil
}

func (c *RequestEnrollmentCommand) setKind(kind party.EnrollmentKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *RequestEnrollmentCommand) setApplicantUserID(applicantUserID kernel.UUID) error {
	if err := applicantUserID.Validate(); err != nil {
		return err
	}

	c.applicantUserID = applicantUserID
	return nil
}

func (c *RequestEnrollmentCommand) setPlatformID(platformID kernel.UUID) error {
	if err := platformID.Validate(); err != nil {
		return err
	}

	c.platformID = platformID
	return nil
}
