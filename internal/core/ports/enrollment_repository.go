package ports

import (
	"context"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/party"
)

// EnrollmentRepository defines the persistence contract for merchant and
// rider enrollment requests. Approved enrollments are the access-control
// source of truth: they gate which platforms a merchant can sell on and
// which orders a rider can claim.
type EnrollmentRepository interface {
	// Add persists a new enrollment request.
	Add(ctx context.Context, enrollment *party.Enrollment) error

	// Update persists a decision on an existing request.
	Update(ctx context.Context, enrollment *party.Enrollment) error

	// Get retrieves an enrollment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*party.Enrollment, error)

	// GetByApplicant retrieves the enrollment of one applicant on one
	// platform regardless of status. Returns errs.ObjectNotFoundError when
	// the applicant never applied.
	GetByApplicant(ctx context.Context, kind party.EnrollmentKind, applicantID, platformID kernel.UUID) (*party.Enrollment, error)

	// GetPendingByPlatform retrieves a platform's undecided requests of
	// one kind, oldest first.
	GetPendingByPlatform(ctx context.Context, kind party.EnrollmentKind, platformID kernel.UUID) ([]*party.Enrollment, error)

	// IsApproved reports whether the applicant holds an approved
	// enrollment on the platform.
	IsApproved(ctx context.Context, kind party.EnrollmentKind, applicantID, platformID kernel.UUID) (bool, error)

	// ApprovedPlatformIDs lists every platform the applicant is approved
	// on. For riders this bounds which orders they may claim.
	ApprovedPlatformIDs(ctx context.Context, kind party.EnrollmentKind, applicantID kernel.UUID) ([]kernel.UUID, error)

	// Delete removes an enrollment, revoking access when it was approved.
	Delete(ctx context.Context, id kernel.UUID) error
}
