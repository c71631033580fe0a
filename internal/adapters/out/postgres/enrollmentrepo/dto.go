package enrollmentrepo

import (
	"time"

	"github.com/google/uuid"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/party"
)

// EnrollmentDTO maps an enrollment request to the enrollments table. The
// unique index over (kind, applicant, platform) makes "one request per
// applicant per platform" a database guarantee, not just an application
// check.
type EnrollmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind        string    `gorm:"type:varchar(16);index:idx_enrollments_applicant,unique;not null"`
	ApplicantID uuid.UUID `gorm:"type:uuid;index:idx_enrollments_applicant,unique;not null"`
	PlatformID  uuid.UUID `gorm:"type:uuid;index:idx_enrollments_applicant,unique;index;not null"`
	Status      string    `gorm:"type:varchar(16);index;not null"`
	RequestedAt time.Time `gorm:"not null"`
}

// TableName returns the database table name for enrollments.
func (EnrollmentDTO) TableName() string {
	return "enrollments"
}

func fromDomain(enrollment *party.Enrollment) EnrollmentDTO {
	return EnrollmentDTO{
		ID:          enrollment.ID().Bytes(),
		Kind:        enrollment.Kind().String(),
		ApplicantID: enrollment.ApplicantID().Bytes(),
		PlatformID:  enrollment.PlatformID().Bytes(),
		Status:      enrollment.Status().String(),
		RequestedAt: enrollment.RequestedAt(),
	}
}

func toDomain(dto EnrollmentDTO) (*party.Enrollment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	applicantID, err := kernel.UUIDFromBytes(dto.ApplicantID[:])
	if err != nil {
		return nil, err
	}
	platformID, err := kernel.UUIDFromBytes(dto.PlatformID[:])
	if err != nil {
		return nil, err
	}
	kind, err := party.EnrollmentKindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}
	status, err := party.EnrollmentStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	return party.RestoreEnrollment(id, kind, applicantID, platformID, status, dto.RequestedAt)
}
