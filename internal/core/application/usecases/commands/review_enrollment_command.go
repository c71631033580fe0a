package commands

import (
	"errors"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/guard"
)

var ErrReviewEnrollmentCommandIsNotConstructed = errors.New(
	"ReviewEnrollmentCommand must be created via NewReviewEnrollmentCommand constructor",
)

// EnrollmentDecision is the platform's verdict on a pending request.
type EnrollmentDecision int

const (
	// DecisionUnknown is a zero value and not a valid decision.
	DecisionUnknown EnrollmentDecision = iota
	// DecisionApprove grants the request.
	DecisionApprove
	// DecisionReject turns the request down.
	DecisionReject
)

// ReviewEnrollmentCommand represents a platform's decision on a pending
// enrollment request.
type ReviewEnrollmentCommand struct { //nolint:recvcheck //using for validation
	enrollmentID   kernel.UUID
	platformUserID kernel.UUID
	decision       EnrollmentDecision

	guard guard.ConstructorGuard
}

// NewReviewEnrollmentCommand creates a command to decide an enrollment
// request.
func NewReviewEnrollmentCommand(
	enrollmentID, platformUserID kernel.UUID, decision EnrollmentDecision,
) (ReviewEnrollmentCommand, error) {
	cmd := ReviewEnrollmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEnrollmentID(enrollmentID),
		cmd.setPlatformUserID(platformUserID),
		cmd.setDecision(decision),
	); err != nil {
		return ReviewEnrollmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewEnrollmentCommand) Validate() error {
	return c.guard.Validate(ErrReviewEnrollmentCommandIsNotConstructed)
}

// EnrollmentID returns the request being decided.
func (c ReviewEnrollmentCommand) EnrollmentID() kernel.UUID {
	return c.enrollmentID
}

// PlatformUserID returns the deciding user's account identifier.
func (c ReviewEnrollmentCommand) PlatformUserID() kernel.UUID {
	return c.platformUserID
}

// Decision returns the verdict.
func (c ReviewEnrollmentCommand) Decision() EnrollmentDecision {
	return c.decision
}

func (c *ReviewEnrollmentCommand) setEnrollmentID(enrollmentID kernel.UUID) error {
	if err := enrollmentID.Validate(); err != nil {
		return err
	}

	c.enrollmentID = enrollmentID
	return nil
}

func (c *ReviewEnrollmentCommand) setPlatformUserID(platformUserID kernel.UUID) error {
	if err := platformUserID.Validate(); err != nil {
		return err
	}

	c.platformUserID = platformUserID
	return nil
}

func (c *ReviewEnrollmentCommand) setDecision(decision EnrollmentDecision) error {
	if decision != DecisionApprove && decision != DecisionReject {
		return errors.New("decision must be approve or reject")
	}

	c.decision = decision
	return nil
}
