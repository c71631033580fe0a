// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"speedeats/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest composite that covers the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartyRepoFactory provides access to the party repository within a
	// transaction.
	PartyRepoFactory interface {
		PartyRepository() ports.PartyRepository
	}

	// EnrollmentRepoFactory provides access to the enrollment repository
	// within a transaction.
	EnrollmentRepoFactory interface {
		EnrollmentRepository() ports.EnrollmentRepository
	}

	// RatingRepoFactory provides access to the rating repository within a
	// transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// OrderUoW manages transactions for order lifecycle operations that
	// resolve a role profile and touch orders: delete, release, mark
	// ready, pickup.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		PartyRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions for operations that also consult
	// enrollments: placing orders and claiming them.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		PartyRepoFactory
		EnrollmentRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// EnrollmentUoW manages transactions for enrollment requests and
	// platform decisions on them.
	EnrollmentUoW interface {
		TxManager
		PartyRepoFactory
		EnrollmentRepoFactory
	}

	// EnrollmentUoWFactory creates new enrollment unit of work instances.
	EnrollmentUoWFactory interface {
		Create() EnrollmentUoW
	}

	// RatingUoW manages transactions for recording a review and fanning
	// it out to every rating aggregate in one commit.
	RatingUoW interface {
		TxManager
		OrderRepoFactory
		PartyRepoFactory
		RatingRepoFactory
	}

	// RatingUoWFactory creates new rating unit of work instances.
	RatingUoWFactory interface {
		Create() RatingUoW
	}
)
