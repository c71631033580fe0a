package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"speedeats/internal/adapters/out/postgres"
	"speedeats/internal/adapters/out/postgres/enrollmentrepo"
	"speedeats/internal/adapters/out/postgres/orderrepo"
	"speedeats/internal/adapters/out/postgres/partyrepo"
	"speedeats/internal/adapters/out/postgres/ratingrepo"
	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/core/domain/model/rating"
	"speedeats/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite verifies transactional behavior of
// GormUnitOfWork against a PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&partyrepo.CustomerDTO{}, &partyrepo.MerchantDTO{}, &partyrepo.PlatformDTO{},
		&partyrepo.RiderDTO{}, &partyrepo.MealDTO{}, &partyrepo.DiscountDTO{},
		&enrollmentrepo.EnrollmentDTO{},
		&ratingrepo.OrderRatingDTO{}, &ratingrepo.ItemRatingDTO{},
	))

	factory, err := postgres.NewGormUnitOfWorkFactory(db)
	suite.Require().NoError(err)
	suite.factory = factory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		`TRUNCATE TABLE orders, order_items, customers, merchants, platforms,
		 riders, meals, discounts, enrollments, order_ratings, order_item_ratings`,
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	testOrder := suite.createTestOrder()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_ReportsInvalidTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReviewFanOut_AllOrNothing() {
	ctx := context.Background()

	merchantID := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&partyrepo.MerchantDTO{
		ID:     merchantID.Bytes(),
		UserID: kernel.NewUUID().Bytes(),
		Name:   "Noodle House",
		Phone:  "555-0101",
	}).Error)

	// The review lands, the merchant aggregate moves, then the transaction
	// is rolled back. Neither write may survive.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	review := suite.createTestReview()
	suite.Require().NoError(uow.RatingRepository().Add(ctx, review))
	suite.Require().NoError(uow.RatingRepository().ApplyToMerchant(ctx, merchantID, suite.rating("5")))
	suite.Require().NoError(uow.Rollback(ctx))

	exists, err := suite.factory.Create().RatingRepository().ExistsForOrder(ctx, review.OrderID())
	suite.Require().NoError(err)
	suite.False(exists)

	var dto partyrepo.MerchantDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", merchantID.Bytes()).Error)
	suite.Zero(dto.RatingCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestEnrollmentRepository_SharesTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	enrollment, err := party.NewEnrollment(
		kernel.NewUUID(), party.EnrollmentKindRider, kernel.NewUUID(), kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.EnrollmentRepository().Add(ctx, enrollment))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().EnrollmentRepository().Get(ctx, enrollment.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	price, err := kernel.NewMoneyFromString("9.90")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		nil, kernel.NoDiscount(),
		[]order.ItemSpec{{MealID: kernel.NewUUID(), MealName: "Ramen", UnitPrice: price, Quantity: 1}},
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestReview() *rating.OrderRating {
	itemRating, err := rating.NewItemRating(kernel.NewUUID(), kernel.NewUUID(), suite.rating("4"))
	suite.Require().NoError(err)

	riderScore := suite.rating("5")
	review, err := rating.NewOrderRating(
		kernel.NewUUID(), kernel.NewUUID(),
		suite.rating("4"), suite.rating("5"), &riderScore,
		[]rating.ItemRating{itemRating}, "",
	)
	suite.Require().NoError(err)
	return review
}

func (suite *UnitOfWorkIntegrationTestSuite) rating(value string) kernel.Rating {
	r, err := kernel.NewRatingFromString(value)
	suite.Require().NoError(err)
	return r
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
