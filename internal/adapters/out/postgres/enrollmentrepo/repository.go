// Package enrollmentrepo implements PostgreSQL persistence for merchant and
// rider enrollment requests.
package enrollmentrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/core/ports"
	"speedeats/internal/pkg/errs"
)

var _ ports.EnrollmentRepository = &GormEnrollmentRepository{}

// aggregateTracker tracks aggregates loaded or saved by the repository.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormEnrollmentRepository implements ports.EnrollmentRepository using GORM.
type GormEnrollmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormEnrollmentRepository creates an enrollment repository bound to a
// connection or transaction.
func NewGormEnrollmentRepository(db *gorm.DB, tracker aggregateTracker) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{db: db, tracker: tracker}
}

// Add persists a new enrollment request.
func (r *GormEnrollmentRepository) Add(ctx context.Context, enrollment *party.Enrollment) error {
	if err := enrollment.Validate(); err != nil {
		return err
	}

	dto := fromDomain(enrollment)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("enrollment")
		}
		return err
	}

	r.tracker.TrackAggregate(enrollment.ID(), enrollment)
	return nil
}

// Update persists a decision on an existing request.
func (r *GormEnrollmentRepository) Update(ctx context.Context, enrollment *party.Enrollment) error {
	if err := enrollment.Validate(); err != nil {
		return err
	}

	dto := fromDomain(enrollment)
	result := r.db.WithContext(ctx).Model(&EnrollmentDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"status": dto.Status})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("enrollment", enrollment.ID())
	}

	r.tracker.TrackAggregate(enrollment.ID(), enrollment)
	return nil
}

// Get retrieves an enrollment by its unique identifier.
func (r *GormEnrollmentRepository) Get(ctx context.Context, id kernel.UUID) (*party.Enrollment, error) {
	var dto EnrollmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("enrollment", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetByApplicant retrieves the enrollment of one applicant on one platform
// regardless of status.
func (r *GormEnrollmentRepository) GetByApplicant(
	ctx context.Context, kind party.EnrollmentKind, applicantID, platformID kernel.UUID,
) (*party.Enrollment, error) {
	var dto EnrollmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "kind = ? AND applicant_id = ? AND platform_id = ?",
			kind.String(), applicantID.Bytes(), platformID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("enrollment", applicantID)
		}
		return nil, err
	}
	return toDomain(dto)
}

// GetPendingByPlatform retrieves a platform's undecided requests of one
// kind, oldest first.
func (r *GormEnrollmentRepository) GetPendingByPlatform(
	ctx context.Context, kind party.EnrollmentKind, platformID kernel.UUID,
) ([]*party.Enrollment, error) {
	var dtos []EnrollmentDTO
	err := r.db.WithContext(ctx).
		Where("kind = ? AND platform_id = ? AND status = ?",
			kind.String(), platformID.Bytes(), party.EnrollmentStatusPending.String()).
		Order("requested_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	enrollments := make([]*party.Enrollment, 0, len(dtos))
	for _, dto := range dtos {
		enrollment, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, nil
}

// IsApproved reports whether the applicant holds an approved enrollment on
// the platform.
func (r *GormEnrollmentRepository) IsApproved(
	ctx context.Context, kind party.EnrollmentKind, applicantID, platformID kernel.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&EnrollmentDTO{}).
		Where("kind = ? AND applicant_id = ? AND platform_id = ? AND status = ?",
			kind.String(), applicantID.Bytes(), platformID.Bytes(),
			party.EnrollmentStatusApproved.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ApprovedPlatformIDs lists every platform the applicant is approved on.
func (r *GormEnrollmentRepository) ApprovedPlatformIDs(
	ctx context.Context, kind party.EnrollmentKind, applicantID kernel.UUID,
) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).Model(&EnrollmentDTO{}).
		Where("kind = ? AND applicant_id = ? AND status = ?",
			kind.String(), applicantID.Bytes(), party.EnrollmentStatusApproved.String()).
		Pluck("platform_id", &raw).Error
	if err != nil {
		return nil, err
	}

	platformIDs := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		platformID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		platformIDs = append(platformIDs, platformID)
	}
	return platformIDs, nil
}

// Delete removes an enrollment, revoking access when it was approved.
func (r *GormEnrollmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&EnrollmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("enrollment", id)
	}
	return nil
}
