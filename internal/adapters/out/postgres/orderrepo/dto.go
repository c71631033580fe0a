package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
)

// OrderDTO maps the order aggregate root to the orders table. The status
// is stored as its lowercase string form so the lifecycle SQL can compare
// against readable literals.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index;not null"`
	MerchantID uuid.UUID       `gorm:"type:uuid;index;not null"`
	PlatformID uuid.UUID       `gorm:"type:uuid;index;not null"`
	DiscountID *uuid.UUID      `gorm:"type:uuid"`
	RiderID    *uuid.UUID      `gorm:"type:uuid;index"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status     string          `gorm:"type:varchar(16);index;not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO maps one frozen order line to the order_items table.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	MealID    uuid.UUID       `gorm:"type:uuid;not null"`
	MealName  string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LinePrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName returns the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	dto := OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		MerchantID: aggregate.MerchantID().Bytes(),
		PlatformID: aggregate.PlatformID().Bytes(),
		TotalPrice: aggregate.TotalPrice().Decimal(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
	}
	if discountID := aggregate.DiscountID(); discountID != nil {
		raw := discountID.Bytes()
		dto.DiscountID = &raw
	}
	if riderID := aggregate.RiderID(); riderID != nil {
		raw := riderID.Bytes()
		dto.RiderID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			MealID:    item.MealID().Bytes(),
			MealName:  item.MealName(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
			LinePrice: item.LinePrice().Decimal(),
		})
	}
	return dto, items
}

func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}
	platformID, err := kernel.UUIDFromBytes(dto.PlatformID[:])
	if err != nil {
		return nil, err
	}
	var discountID *kernel.UUID
	if dto.DiscountID != nil {
		parsed, err := kernel.UUIDFromBytes(dto.DiscountID[:])
		if err != nil {
			return nil, err
		}
		discountID = &parsed
	}
	var riderID *kernel.UUID
	if dto.RiderID != nil {
		parsed, err := kernel.UUIDFromBytes(dto.RiderID[:])
		if err != nil {
			return nil, err
		}
		riderID = &parsed
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	totalPrice, err := kernel.NewMoneyFromDecimal(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, merchantID, platformID,
		discountID, riderID, items, totalPrice, status, dto.CreatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	mealID, err := kernel.UUIDFromBytes(dto.MealID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoneyFromDecimal(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	linePrice, err := kernel.NewMoneyFromDecimal(dto.LinePrice)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(id, mealID, dto.MealName, dto.Quantity, unitPrice, linePrice)
}
