package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"speedeats/internal/core/domain/model/kernel"
)

// GetOrdersQueryHandler lists orders from the database scoped to one role
// profile. Items are fetched in a second pass and stitched onto their
// orders, keeping both statements flat.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest orders first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.fetchOrders(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.fetchItems(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersQueryHandler) fetchOrders(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, map[uuid.UUID]int, error) {
	// Riders only care about deliveries still in their hands.
	statusFilter := ""
	if query.Scope() == ScopeRider {
		statusFilter = "AND o.status IN ('assigned', 'ready')"
	}

	//nolint:gosec //column comes from a fixed scope map, not user input
	statement := fmt.Sprintf(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.merchant_id,
			m.name,
			o.platform_id,
			o.rider_id,
			o.total_price,
			o.status,
			o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN merchants m ON m.id = o.merchant_id
		WHERE o.%s = ? %s
		ORDER BY o.created_at DESC, o.id
	`, query.Scope().Column(), statusFilter)

	rows, err := h.db.WithContext(ctx).Raw(statement, query.RoleID().Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			id, customerID, merchantID, platformID uuid.UUID
			riderID                                uuid.NullUUID
			totalPrice                             decimal.Decimal
			resp                                   GetOrdersQueryResponse
		)

		if err = rows.Scan(
			&id, &customerID, &resp.CustomerName, &merchantID, &resp.MerchantName,
			&platformID, &riderID, &totalPrice, &resp.Status, &resp.CreatedAt,
		); err != nil {
			return nil, nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, nil, err
		}
		if resp.MerchantID, err = kernel.UUIDFromBytes(merchantID[:]); err != nil {
			return nil, nil, err
		}
		if resp.PlatformID, err = kernel.UUIDFromBytes(platformID[:]); err != nil {
			return nil, nil, err
		}
		if riderID.Valid {
			rid, ridErr := kernel.UUIDFromBytes(riderID.UUID[:])
			if ridErr != nil {
				return nil, nil, ridErr
			}
			resp.RiderID = &rid
		}
		resp.TotalPrice = totalPrice

		index[id] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

func (h GetOrdersQueryHandler) fetchItems(
	ctx context.Context,
	orders []GetOrdersQueryResponse,
	index map[uuid.UUID]int,
) error {
	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			meal_id,
			meal_name,
			quantity,
			unit_price,
			line_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, orderID, mealID uuid.UUID
			item                OrderItemResponse
		)

		if err = rows.Scan(
			&id, &orderID, &mealID, &item.MealName,
			&item.Quantity, &item.UnitPrice, &item.LinePrice,
		); err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return err
		}
		if item.MealID, err = kernel.UUIDFromBytes(mealID[:]); err != nil {
			return err
		}

		at, ok := index[orderID]
		if !ok {
			continue
		}
		orders[at].Items = append(orders[at].Items, item)
	}

	return rows.Err()
}
