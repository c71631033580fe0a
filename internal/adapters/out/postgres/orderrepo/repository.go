// Package orderrepo implements PostgreSQL persistence for order aggregates.
//
// The lifecycle mutations are single conditional UPDATE statements whose
// WHERE clause encodes the operation's preconditions. Racing riders issue
// the same statement and the database serializes them: only the first one
// matches the rows, and everyone learns the outcome from the affected
// count. No row is ever read, modified, and written back.
package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/core/ports"
	"speedeats/internal/pkg/errs"
)

var _ ports.OrderRepository = &GormOrderRepository{}

// aggregateTracker tracks aggregates loaded or saved by the repository.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrderRepository creates an order repository bound to a connection
// or transaction.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{db: db, tracker: tracker}
}

// Add persists a new order aggregate with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, itemDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order aggregate with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	var itemDTOs []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Find(&itemDTOs, "order_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs)
}

// GetBySelector retrieves every order matching the selector, most recent
// first.
func (r *GormOrderRepository) GetBySelector(ctx context.Context, selector order.Selector) ([]*order.Order, error) {
	if err := selector.Validate(); err != nil {
		return nil, err
	}

	clause, args := selectorClause(selector)
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Where(clause, args...).
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		orderIDs = append(orderIDs, dto.ID)
	}
	var itemDTOs []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Find(&itemDTOs, "order_id IN ?", orderIDs).Error; err != nil {
		return nil, err
	}
	itemsByOrder := make(map[uuid.UUID][]OrderItemDTO, len(dtos))
	for _, itemDTO := range itemDTOs {
		itemsByOrder[itemDTO.OrderID] = append(itemsByOrder[itemDTO.OrderID], itemDTO)
	}

	aggregates := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto, itemsByOrder[dto.ID])
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}
	return aggregates, nil
}

// Delete removes an order and its items.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&OrderItemDTO{}, "order_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}

// Claim assigns the rider to every selected order that is still unassigned
// and was placed on one of the rider's approved platforms.
func (r *GormOrderRepository) Claim(
	ctx context.Context, selector order.Selector, riderID kernel.UUID, platformIDs []kernel.UUID,
) (int64, error) {
	if err := selector.Validate(); err != nil {
		return 0, err
	}
	if len(platformIDs) == 0 {
		return 0, nil
	}

	clause, clauseArgs := selectorClause(selector)
	args := append([]any{riderID.Bytes()}, clauseArgs...)
	args = append(args, rawUUIDs(platformIDs))

	result := r.db.WithContext(ctx).Exec(
		fmt.Sprintf(
			`UPDATE orders
			 SET rider_id = ?, status = 'assigned'
			 WHERE %s AND status = 'unassigned' AND rider_id IS NULL AND platform_id IN ?`,
			clause,
		),
		args...,
	)
	return result.RowsAffected, result.Error
}

// Release detaches the rider from every selected order it holds in
// assigned or ready status.
func (r *GormOrderRepository) Release(
	ctx context.Context, selector order.Selector, riderID kernel.UUID,
) (int64, error) {
	if err := selector.Validate(); err != nil {
		return 0, err
	}

	clause, clauseArgs := selectorClause(selector)
	args := append(clauseArgs, riderID.Bytes())

	result := r.db.WithContext(ctx).Exec(
		fmt.Sprintf(
			`UPDATE orders
			 SET rider_id = NULL, status = 'unassigned'
			 WHERE %s AND rider_id = ? AND status IN ('assigned', 'ready')`,
			clause,
		),
		args...,
	)
	return result.RowsAffected, result.Error
}

// MarkReady moves every selected order the rider holds in assigned status
// to ready.
func (r *GormOrderRepository) MarkReady(
	ctx context.Context, selector order.Selector, riderID kernel.UUID,
) (int64, error) {
	if err := selector.Validate(); err != nil {
		return 0, err
	}

	clause, clauseArgs := selectorClause(selector)
	args := append(clauseArgs, riderID.Bytes())

	result := r.db.WithContext(ctx).Exec(
		fmt.Sprintf(
			`UPDATE orders
			 SET status = 'ready'
			 WHERE %s AND rider_id = ? AND status = 'assigned'`,
			clause,
		),
		args...,
	)
	return result.RowsAffected, result.Error
}

// CompletePickup moves the customer's order from ready to completed.
func (r *GormOrderRepository) CompletePickup(
	ctx context.Context, orderID, customerID kernel.UUID,
) (int64, error) {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE orders
		 SET status = 'completed'
		 WHERE id = ? AND customer_id = ? AND status = 'ready'`,
		orderID.Bytes(), customerID.Bytes(),
	)
	return result.RowsAffected, result.Error
}

func selectorClause(selector order.Selector) (string, []any) {
	if selector.ByOrder() {
		return "id = ?", []any{selector.OrderID().Bytes()}
	}
	return "merchant_id = ? AND customer_id = ?",
		[]any{selector.MerchantID().Bytes(), selector.CustomerID().Bytes()}
}

func rawUUIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}
