package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"speedeats/internal/core/application/usecases/commands"
	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/core/domain/model/rating"
	"speedeats/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetBySelector(ctx context.Context, selector order.Selector) ([]*order.Order, error) {
	args := m.Called(ctx, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Claim(
	ctx context.Context, selector order.Selector, riderID kernel.UUID, platformIDs []kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, selector, riderID, platformIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Release(
	ctx context.Context, selector order.Selector, riderID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, selector, riderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) MarkReady(
	ctx context.Context, selector order.Selector, riderID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, selector, riderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CompletePickup(ctx context.Context, orderID, customerID kernel.UUID) (int64, error) {
	args := m.Called(ctx, orderID, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPartyRepository struct{ mock.Mock }

func (m *MockPartyRepository) GetCustomerByUser(ctx context.Context, userID kernel.UUID) (*party.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Customer), args.Error(1)
}

func (m *MockPartyRepository) GetMerchantByUser(ctx context.Context, userID kernel.UUID) (*party.Merchant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Merchant), args.Error(1)
}

func (m *MockPartyRepository) GetPlatformByUser(ctx context.Context, userID kernel.UUID) (*party.Platform, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Platform), args.Error(1)
}

func (m *MockPartyRepository) GetRiderByUser(ctx context.Context, userID kernel.UUID) (*party.Rider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Rider), args.Error(1)
}

func (m *MockPartyRepository) GetMerchant(ctx context.Context, id kernel.UUID) (*party.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Merchant), args.Error(1)
}

func (m *MockPartyRepository) GetPlatform(ctx context.Context, id kernel.UUID) (*party.Platform, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Platform), args.Error(1)
}

func (m *MockPartyRepository) GetMeal(
	ctx context.Context, mealID, merchantID, platformID kernel.UUID,
) (*party.Meal, error) {
	args := m.Called(ctx, mealID, merchantID, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Meal), args.Error(1)
}

func (m *MockPartyRepository) GetMealsByMerchant(
	ctx context.Context, merchantID, platformID kernel.UUID,
) ([]*party.Meal, error) {
	args := m.Called(ctx, merchantID, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*party.Meal), args.Error(1)
}

func (m *MockPartyRepository) GetDiscount(
	ctx context.Context, discountID, merchantID, platformID kernel.UUID,
) (*party.Discount, error) {
	args := m.Called(ctx, discountID, merchantID, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Discount), args.Error(1)
}

type MockEnrollmentRepository struct{ mock.Mock }

func (m *MockEnrollmentRepository) Add(ctx context.Context, enrollment *party.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) Update(ctx context.Context, enrollment *party.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) Get(ctx context.Context, id kernel.UUID) (*party.Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) GetByApplicant(
	ctx context.Context, kind party.EnrollmentKind, applicantID, platformID kernel.UUID,
) (*party.Enrollment, error) {
	args := m.Called(ctx, kind, applicantID, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) GetPendingByPlatform(
	ctx context.Context, kind party.EnrollmentKind, platformID kernel.UUID,
) ([]*party.Enrollment, error) {
	args := m.Called(ctx, kind, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*party.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) IsApproved(
	ctx context.Context, kind party.EnrollmentKind, applicantID, platformID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, kind, applicantID, platformID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnrollmentRepository) ApprovedPlatformIDs(
	ctx context.Context, kind party.EnrollmentKind, applicantID kernel.UUID,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, kind, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockEnrollmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, review *rating.OrderRating) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockRatingRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRatingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*rating.OrderRating, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.OrderRating), args.Error(1)
}

func (m *MockRatingRepository) ApplyToMerchant(ctx context.Context, merchantID kernel.UUID, score kernel.Rating) error {
	args := m.Called(ctx, merchantID, score)
	return args.Error(0)
}

func (m *MockRatingRepository) ApplyToPlatform(ctx context.Context, platformID kernel.UUID, score kernel.Rating) error {
	args := m.Called(ctx, platformID, score)
	return args.Error(0)
}

func (m *MockRatingRepository) ApplyToRider(ctx context.Context, riderID kernel.UUID, score kernel.Rating) error {
	args := m.Called(ctx, riderID, score)
	return args.Error(0)
}

func (m *MockRatingRepository) ApplyToMeal(ctx context.Context, mealID kernel.UUID, score kernel.Rating) error {
	args := m.Called(ctx, mealID, score)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PartyRepository() ports.PartyRepository {
	args := m.Called()
	return args.Get(0).(ports.PartyRepository)
}

func (m *MockUoW) EnrollmentRepository() ports.EnrollmentRepository {
	args := m.Called()
	return args.Get(0).(ports.EnrollmentRepository)
}

func (m *MockUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW { return f() }

type FuncEnrollmentUoWFactory func() commands.EnrollmentUoW

func (f FuncEnrollmentUoWFactory) Create() commands.EnrollmentUoW { return f() }

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW { return f() }
