// Package postgres provides the GORM-backed persistence adapters and the
// unit of work that coordinates them.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it share that transaction, so a use case touching orders, parties,
// enrollments, and ratings either commits everything or nothing. Aggregates
// written through the repositories are tracked for debugging and future
// domain-event dispatch.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"speedeats/internal/adapters/out/postgres/enrollmentrepo"
	"speedeats/internal/adapters/out/postgres/orderrepo"
	"speedeats/internal/adapters/out/postgres/partyrepo"
	"speedeats/internal/adapters/out/postgres/ratingrepo"
	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/ports"
	"speedeats/internal/pkg/errs"
)

// GormUnitOfWorkFactory creates units of work bound to a shared database
// handle. The factory itself is safe for concurrent use; each unit of work
// it creates is not.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a unit of work factory.
func NewGormUnitOfWorkFactory(db *gorm.DB) (*GormUnitOfWorkFactory, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	return &GormUnitOfWorkFactory{db: db}, nil
}

// Create returns a fresh unit of work. Each request handler should create
// its own.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

type trackedAggregate struct {
	id        kernel.UUID
	aggregate any
}

// GormUnitOfWork implements ports.UnitOfWork on top of a GORM transaction.
//
// Begin is idempotent: repositories may be used before Begin, in which case
// they run against the base connection without transactional guarantees.
// Commit and Rollback clear the transaction, so a deferred Rollback after a
// successful Commit is a harmless no-op error.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin on an already-started unit of
// work does nothing.
func (u *GormUnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

// Commit commits the current transaction.
func (u *GormUnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	err := u.tx.Commit().Error
	u.tx = nil
	u.trackedAggregates = nil
	return err
}

// Rollback aborts the current transaction.
func (u *GormUnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	u.trackedAggregates = nil
	return err
}

// TrackAggregate records an aggregate written during this unit of work.
func (u *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	u.trackedAggregates = append(u.trackedAggregates, trackedAggregate{id: id, aggregate: aggregate})
}

func (u *GormUnitOfWork) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// OrderRepository returns an order repository bound to the active
// transaction, or to the base connection when none is active.
func (u *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(u.conn(), u)
}

// PartyRepository returns a party repository bound to the active transaction.
func (u *GormUnitOfWork) PartyRepository() ports.PartyRepository {
	return partyrepo.NewGormPartyRepository(u.conn())
}

// EnrollmentRepository returns an enrollment repository bound to the active
// transaction.
func (u *GormUnitOfWork) EnrollmentRepository() ports.EnrollmentRepository {
	return enrollmentrepo.NewGormEnrollmentRepository(u.conn(), u)
}

// RatingRepository returns a rating repository bound to the active
// transaction.
func (u *GormUnitOfWork) RatingRepository() ports.RatingRepository {
	return ratingrepo.NewGormRatingRepository(u.conn(), u)
}
