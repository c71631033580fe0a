package cmd

import (
	"gorm.io/gorm"

	"speedeats/internal/adapters/out/postgres"
	"speedeats/internal/core/application/usecases/commands"
	"speedeats/internal/core/application/usecases/queries"
)

// CompositionRoot wires application handlers to their infrastructure.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root over an open database
// handle.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) (CompositionRoot, error) {
	uowFactory, err := postgres.NewGormUnitOfWorkFactory(gormDB)
	if err != nil {
		return CompositionRoot{}, err
	}
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: uowFactory,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) enrollmentUoWFactory() commands.EnrollmentUoWFactory {
	return FuncEnrollmentUoWFactory(func() commands.EnrollmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ratingUoWFactory() commands.RatingUoWFactory {
	return FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePickupOrderCommandHandler() commands.PickupOrderCommandHandler {
	return commands.NewPickupOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateClaimOrdersCommandHandler() commands.ClaimOrdersCommandHandler {
	return commands.NewClaimOrdersCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateReleaseOrdersCommandHandler() commands.ReleaseOrdersCommandHandler {
	return commands.NewReleaseOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrdersReadyCommandHandler() commands.MarkOrdersReadyCommandHandler {
	return commands.NewMarkOrdersReadyCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.ratingUoWFactory())
}

func (c *CompositionRoot) CreateRequestEnrollmentCommandHandler() commands.RequestEnrollmentCommandHandler {
	return commands.NewRequestEnrollmentCommandHandler(c.enrollmentUoWFactory())
}

func (c *CompositionRoot) CreateReviewEnrollmentCommandHandler() commands.ReviewEnrollmentCommandHandler {
	return commands.NewReviewEnrollmentCommandHandler(c.enrollmentUoWFactory())
}

func (c *CompositionRoot) CreateRemoveEnrollmentCommandHandler() commands.RemoveEnrollmentCommandHandler {
	return commands.NewRemoveEnrollmentCommandHandler(c.enrollmentUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClaimableGroupsQueryHandler() queries.GetClaimableGroupsQueryHandler {
	return queries.NewGetClaimableGroupsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMerchantDetailQueryHandler() queries.GetMerchantDetailQueryHandler {
	return queries.NewGetMerchantDetailQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncEnrollmentUoWFactory func() commands.EnrollmentUoW

func (f FuncEnrollmentUoWFactory) Create() commands.EnrollmentUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}
