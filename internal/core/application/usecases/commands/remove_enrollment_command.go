package commands

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/guard"
)

var ErrRemoveEnrollmentCommandIsNotConstructed = errors.New(
	"RemoveEnrollmentCommand must be created via NewRemoveEnrollmentCommand constructor",
)

// RemoveEnrollmentCommand represents a platform expelling a merchant or
// rider, revoking whatever access the enrollment granted.
type RemoveEnrollmentCommand struct { //nolint:recvcheck //using for validation
	enrollmentID   kernel.UUID
	platformUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveEnrollmentCommand creates a command to remove an enrollment.
func NewRemoveEnrollmentCommand(enrollmentID, platformUserID kernel.UUID) (RemoveEnrollmentCommand, error) {
	cmd := RemoveEnrollmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEnrollmentID(enrollmentID),
		cmd.setPlatformUserID(platformUserID),
	); err != nil {
		return RemoveEnrollmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveEnrollmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveEnrollmentCommandIsNotConstructed)
}

// EnrollmentID returns the enrollment being removed.
func (c RemoveEnrollmentCommand) EnrollmentID() kernel.UUID {
	return c.enrollmentID
}

// PlatformUserID returns the removing user's account identifier.
func (c RemoveEnrollmentCommand) PlatformUserID() kernel.UUID {
	return c.platformUserID
}

func (c *RemoveEnrollmentCommand) setEnrollmentID(enrollmentID kernel.UUID) error {
	if err := enrollmentID.Validate(); err != nil {
		return err
	}

	c.enrollmentID = enrollmentID
	return nil
}

func (c *RemoveEnrollmentCommand) setPlatformUserID(platformUserID kernel.UUID) error {
	if err := platformUserID.Validate(); err != nil {
		return err
	}

	c.platformUserID = platformUserID
	return nil
}
