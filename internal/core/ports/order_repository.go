// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// The lifecycle mutations (Claim, Release, MarkReady, CompletePickup) are
// conditional writes: each one updates only rows that satisfy the operation's
// preconditions and reports how many rows it touched. Callers decide from the
// affected count whether the operation won, partially won, or lost a race.
// This is what makes concurrent rider claims safe: two riders issuing the
// same claim resolve at the database, and exactly one sees a non-zero count
// per order.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier with its
	// items. Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetBySelector retrieves every order matching the selector, most
	// recent first. An empty result is not an error.
	GetBySelector(ctx context.Context, selector order.Selector) ([]*order.Order, error)

	// Delete removes an order and its items. The caller is responsible for
	// checking the order may be deleted; Delete reports
	// errs.ObjectNotFoundError when the row has already gone.
	Delete(ctx context.Context, id kernel.UUID) error

	// Claim atomically assigns the rider to every selected order that is
	// still unassigned, has no rider, and was placed on one of the rider's
	// approved platforms. Returns the number of orders won.
	Claim(ctx context.Context, selector order.Selector, riderID kernel.UUID, platformIDs []kernel.UUID) (int64, error)

	// Release atomically detaches the rider from every selected order the
	// rider currently holds in assigned or ready status, returning those
	// orders to the unassigned pool. Returns the number of orders released.
	Release(ctx context.Context, selector order.Selector, riderID kernel.UUID) (int64, error)

	// MarkReady atomically moves every selected order the rider holds in
	// assigned status to ready. Returns the number of orders marked.
	MarkReady(ctx context.Context, selector order.Selector, riderID kernel.UUID) (int64, error)

	// CompletePickup atomically moves the customer's order from ready to
	// completed. Returns 1 when the order was completed, 0 when the order
	// was not the customer's or not ready.
	CompletePickup(ctx context.Context, orderID, customerID kernel.UUID) (int64, error)
}
