package party

import (
	"errors"
	"fmt"
	"time"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/pkg/errs"
	"speedeats/internal/pkg/guard"
)

// ErrEnrollmentIsNotConstructed is returned when using an improperly
// initialized Enrollment.
var ErrEnrollmentIsNotConstructed = errors.New("Enrollment must be created via NewEnrollment or RestoreEnrollment")

// EnrollmentKind distinguishes who is asking to join a platform.
type EnrollmentKind int

const (
	// EnrollmentKindUnknown is a zero value and not a valid kind.
	EnrollmentKindUnknown EnrollmentKind = iota
	// EnrollmentKindMerchant is a merchant asking to list meals.
	EnrollmentKindMerchant
	// EnrollmentKindRider is a rider asking to deliver orders.
	EnrollmentKindRider
)

func getEnrollmentKindStrings() map[EnrollmentKind]string {
	return map[EnrollmentKind]string{
		EnrollmentKindUnknown:  "unknown",
		EnrollmentKindMerchant: "merchant",
		EnrollmentKindRider:    "rider",
	}
}

func getValidEnrollmentKindStrings() map[string]EnrollmentKind {
	return map[string]EnrollmentKind{
		"merchant": EnrollmentKindMerchant,
		"rider":    EnrollmentKindRider,
	}
}

// String returns the lowercase wire representation of the kind.
func (k EnrollmentKind) String() string {
	if str, ok := getEnrollmentKindStrings()[k]; ok {
		return str
	}
	return fmt.Sprintf("unknown enrollment kind: %d", int(k))
}

// Validate reports whether the kind is one of the defined values.
func (k EnrollmentKind) Validate() error {
	if _, ok := getValidEnrollmentKindStrings()[k.String()]; !ok {
		return errs.NewValueIsInvalidError("enrollment kind")
	}
	return nil
}

// EnrollmentKindFromString parses a wire kind string.
func EnrollmentKindFromString(value string) (EnrollmentKind, error) {
	if kind, ok := getValidEnrollmentKindStrings()[value]; ok {
		return kind, nil
	}
	return EnrollmentKindUnknown, errs.NewValueIsInvalidError("enrollment kind")
}

// EnrollmentStatus tracks the platform's decision on a request.
type EnrollmentStatus int

const (
	// EnrollmentStatusUnknown is a zero value and not a valid status.
	EnrollmentStatusUnknown EnrollmentStatus = iota
	// EnrollmentStatusPending means the platform has not decided yet.
	EnrollmentStatusPending
	// EnrollmentStatusApproved means the applicant may operate on the
	// platform.
	EnrollmentStatusApproved
	// EnrollmentStatusRejected means the platform turned the request
	// down.
	EnrollmentStatusRejected
)

func getEnrollmentStatusStrings() map[EnrollmentStatus]string {
	return map[EnrollmentStatus]string{
		EnrollmentStatusUnknown:  "unknown",
		EnrollmentStatusPending:  "pending",
		EnrollmentStatusApproved: "approved",
		EnrollmentStatusRejected: "rejected",
	}
}

func getValidEnrollmentStatusStrings() map[string]EnrollmentStatus {
	return map[string]EnrollmentStatus{
		"pending":  EnrollmentStatusPending,
		"approved": EnrollmentStatusApproved,
		"rejected": EnrollmentStatusRejected,
	}
}

// String returns the lowercase wire representation of the status.
func (s EnrollmentStatus) String() string {
	if str, ok := getEnrollmentStatusStrings()[s]; ok {
		return str
	}
	return fmt.Sprintf("unknown enrollment status: %d", int(s))
}

// Validate reports whether the status is one of the defined values.
func (s EnrollmentStatus) Validate() error {
	if _, ok := getValidEnrollmentStatusStrings()[s.String()]; !ok {
		return errs.NewValueIsInvalidError("enrollment status")
	}
	return nil
}

// EnrollmentStatusFromString parses a wire status string.
func EnrollmentStatusFromString(value string) (EnrollmentStatus, error) {
	if status, ok := getValidEnrollmentStatusStrings()[value]; ok {
		return status, nil
	}
	return EnrollmentStatusUnknown, errs.NewValueIsInvalidError("enrollment status")
}

// Enrollment is a merchant's or rider's request to operate on a
// platform. Only approved enrollments grant access: an approved
// merchant may list meals and receive orders, an approved rider may
// claim them.
type Enrollment struct {
	id          kernel.UUID
	kind        EnrollmentKind
	applicantID kernel.UUID
	platformID  kernel.UUID
	status      EnrollmentStatus
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// NewEnrollment creates a pending enrollment request.
func NewEnrollment(id kernel.UUID, kind EnrollmentKind, applicantID, platformID kernel.UUID) (*Enrollment, error) {
	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
		applicantID.Validate(),
		platformID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Enrollment{
		id:          id,
		kind:        kind,
		applicantID: applicantID,
		platformID:  platformID,
		status:      EnrollmentStatusPending,
		requestedAt: time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreEnrollment reconstructs an enrollment from persistence.
func RestoreEnrollment(
	id kernel.UUID,
	kind EnrollmentKind,
	applicantID, platformID kernel.UUID,
	status EnrollmentStatus,
	requestedAt time.Time,
) (*Enrollment, error) {
	enrollment, err := NewEnrollment(id, kind, applicantID, platformID)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	enrollment.status = status
	enrollment.requestedAt = requestedAt
	return enrollment, nil
}

// Validate ensures the Enrollment was created through a constructor.
func (e *Enrollment) Validate() error {
	if e == nil {
		return ErrEnrollmentIsNotConstructed
	}
	return e.guard.Validate(ErrEnrollmentIsNotConstructed)
}

// ID returns the enrollment's unique identifier.
func (e *Enrollment) ID() kernel.UUID {
	return e.id
}

// Kind reports whether a merchant or a rider is applying.
func (e *Enrollment) Kind() EnrollmentKind {
	return e.kind
}

// ApplicantID returns the merchant or rider identifier.
func (e *Enrollment) ApplicantID() kernel.UUID {
	return e.applicantID
}

// PlatformID returns the platform being applied to.
func (e *Enrollment) PlatformID() kernel.UUID {
	return e.platformID
}

// Status returns the platform's decision so far.
func (e *Enrollment) Status() EnrollmentStatus {
	return e.status
}

// RequestedAt returns when the request was filed.
func (e *Enrollment) RequestedAt() time.Time {
	return e.requestedAt
}

// Approve grants the request. Only pending requests can be decided.
func (e *Enrollment) Approve() error {
	if e.status != EnrollmentStatusPending {
		return errs.NewInvalidStateError(e.status.String(), "approve")
	}
	e.status = EnrollmentStatusApproved
	return nil
}

// Reject turns the request down. Only pending requests can be decided.
func (e *Enrollment) Reject() error {
	if e.status != EnrollmentStatusPending {
		return errs.NewInvalidStateError(e.status.String(), "reject")
	}
	e.status = EnrollmentStatusRejected
	return nil
}
