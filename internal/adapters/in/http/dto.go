package http

import (
	"time"

	"github.com/shopspring/decimal"

	"speedeats/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderItemRequest is one requested line of a new order.
type PlaceOrderItemRequest struct {
	MealID   string `json:"meal_id"`
	Quantity int    `json:"quantity"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders. The discount id is
// optional; an id not registered for the merchant and platform is ignored
// and the order prices at full rate.
type PlaceOrderRequest struct {
	MerchantID string                  `json:"merchant_id"`
	PlatformID string                  `json:"platform_id"`
	DiscountID *string                 `json:"discount_id,omitempty"`
	Items      []PlaceOrderItemRequest `json:"items"`
}

// PlaceOrderResponse carries the identifier of a newly placed order.
type PlaceOrderResponse struct {
	OrderID string `json:"order_id"`
}

// DispatchRequest selects the orders a dispatch operation targets: either
// one order by id, or a whole (merchant, customer) group.
type DispatchRequest struct {
	OrderID    *string `json:"order_id,omitempty"`
	MerchantID *string `json:"merchant_id,omitempty"`
	CustomerID *string `json:"customer_id,omitempty"`
}

// DispatchResponse reports how many orders a dispatch operation touched.
type DispatchResponse struct {
	Count int64 `json:"count"`
}

// ItemScoreRequest scores one line of a rated order.
type ItemScoreRequest struct {
	ItemID string `json:"item_id"`
	Score  string `json:"score"`
}

// RateOrderRequest is the body of POST /api/v1/orders/:orderID/rating.
// Scores travel as decimal strings so nothing is lost to binary floats.
type RateOrderRequest struct {
	MerchantScore string             `json:"merchant_score"`
	PlatformScore string             `json:"platform_score"`
	RiderScore    *string            `json:"rider_score,omitempty"`
	ItemScores    []ItemScoreRequest `json:"item_scores"`
	Comment       string             `json:"comment"`
}

// EnrollmentRequest is the body of POST /api/v1/enrollments.
type EnrollmentRequest struct {
	Kind       string `json:"kind"`
	PlatformID string `json:"platform_id"`
}

// EnrollmentResponse carries the identifier of a newly filed request.
type EnrollmentResponse struct {
	EnrollmentID string `json:"enrollment_id"`
}

// EnrollmentDecisionRequest is the body of
// POST /api/v1/enrollments/:enrollmentID/decision.
type EnrollmentDecisionRequest struct {
	Decision string `json:"decision"`
}

// OrderItemResponse is one line of a listed order.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	MealID    string          `json:"meal_id"`
	MealName  string          `json:"meal_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LinePrice decimal.Decimal `json:"line_price"`
}

// OrderResponse is one order row of a listing.
type OrderResponse struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	MerchantID   string              `json:"merchant_id"`
	MerchantName string              `json:"merchant_name"`
	PlatformID   string              `json:"platform_id"`
	RiderID      *string             `json:"rider_id,omitempty"`
	TotalPrice   decimal.Decimal     `json:"total_price"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	Items        []OrderItemResponse `json:"items"`
}

// ClaimableGroupResponse is one claimable (merchant, customer) batch a
// rider can take in a single trip.
type ClaimableGroupResponse struct {
	MerchantID   string          `json:"merchant_id"`
	MerchantName string          `json:"merchant_name"`
	CustomerID   string          `json:"customer_id"`
	Address      string          `json:"address"`
	OrderCount   int64           `json:"order_count"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// MealResponse is one meal of a merchant's storefront.
type MealResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	MealType    string          `json:"meal_type"`
	RatingScore decimal.Decimal `json:"rating_score"`
	RatingCount int64           `json:"rating_count"`
}

// MerchantDetailResponse is a merchant's storefront on one platform.
type MerchantDetailResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address"`
	RatingScore  decimal.Decimal  `json:"rating_score"`
	RatingCount  int64            `json:"rating_count"`
	DiscountRate *decimal.Decimal `json:"discount_rate,omitempty"`
	Meals        []MealResponse   `json:"meals"`
}

func orderResponseFromQuery(row queries.GetOrdersQueryResponse) OrderResponse {
	response := OrderResponse{
		ID:           row.ID.String(),
		CustomerID:   row.CustomerID.String(),
		CustomerName: row.CustomerName,
		MerchantID:   row.MerchantID.String(),
		MerchantName: row.MerchantName,
		PlatformID:   row.PlatformID.String(),
		TotalPrice:   row.TotalPrice,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
		Items:        make([]OrderItemResponse, 0, len(row.Items)),
	}
	if row.RiderID != nil {
		riderID := row.RiderID.String()
		response.RiderID = &riderID
	}
	for _, item := range row.Items {
		response.Items = append(response.Items, OrderItemResponse{
			ID:        item.ID.String(),
			MealID:    item.MealID.String(),
			MealName:  item.MealName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LinePrice: item.LinePrice,
		})
	}
	return response
}

func merchantDetailResponseFromQuery(detail queries.GetMerchantDetailQueryResponse) MerchantDetailResponse {
	response := MerchantDetailResponse{
		ID:           detail.ID.String(),
		Name:         detail.Name,
		Phone:        detail.Phone,
		Address:      detail.Address,
		RatingScore:  detail.RatingScore,
		RatingCount:  detail.RatingCount,
		DiscountRate: detail.DiscountRate,
		Meals:        make([]MealResponse, 0, len(detail.Meals)),
	}
	for _, meal := range detail.Meals {
		response.Meals = append(response.Meals, MealResponse{
			ID:          meal.ID.String(),
			Name:        meal.Name,
			Price:       meal.Price,
			MealType:    meal.MealType,
			RatingScore: meal.RatingScore,
			RatingCount: meal.RatingCount,
		})
	}
	return response
}
