// Package http exposes the marketplace over a JSON REST API.
//
// The acting user is identified by the X-User-Id header; each handler
// resolves it to the role profile the operation requires. Domain errors map
// onto HTTP statuses through their sentinel: not found is 404, validation
// is 400, state and uniqueness conflicts are 409.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"speedeats/internal/core/application/usecases/commands"
	"speedeats/internal/core/application/usecases/queries"
	"speedeats/internal/core/domain/model/kernel"
	"speedeats/internal/core/domain/model/order"
	"speedeats/internal/core/domain/model/party"
	"speedeats/internal/pkg/errs"
)

const userIDHeader = "X-User-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler        commands.PlaceOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	pickupOrderHandler       commands.PickupOrderCommandHandler
	claimOrdersHandler       commands.ClaimOrdersCommandHandler
	releaseOrdersHandler     commands.ReleaseOrdersCommandHandler
	markOrdersReadyHandler   commands.MarkOrdersReadyCommandHandler
	rateOrderHandler         commands.RateOrderCommandHandler
	requestEnrollmentHandler commands.RequestEnrollmentCommandHandler
	reviewEnrollmentHandler  commands.ReviewEnrollmentCommandHandler
	removeEnrollmentHandler  commands.RemoveEnrollmentCommandHandler

	getOrdersHandler          queries.GetOrdersQueryHandler
	getClaimableGroupsHandler queries.GetClaimableGroupsQueryHandler
	getMerchantDetailHandler  queries.GetMerchantDetailQueryHandler

	logger *slog.Logger
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	pickupOrderHandler commands.PickupOrderCommandHandler,
	claimOrdersHandler commands.ClaimOrdersCommandHandler,
	releaseOrdersHandler commands.ReleaseOrdersCommandHandler,
	markOrdersReadyHandler commands.MarkOrdersReadyCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	requestEnrollmentHandler commands.RequestEnrollmentCommandHandler,
	reviewEnrollmentHandler commands.ReviewEnrollmentCommandHandler,
	removeEnrollmentHandler commands.RemoveEnrollmentCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getClaimableGroupsHandler queries.GetClaimableGroupsQueryHandler,
	getMerchantDetailHandler queries.GetMerchantDetailQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:         placeOrderHandler,
		deleteOrderHandler:        deleteOrderHandler,
		pickupOrderHandler:        pickupOrderHandler,
		claimOrdersHandler:        claimOrdersHandler,
		releaseOrdersHandler:      releaseOrdersHandler,
		markOrdersReadyHandler:    markOrdersReadyHandler,
		rateOrderHandler:          rateOrderHandler,
		requestEnrollmentHandler:  requestEnrollmentHandler,
		reviewEnrollmentHandler:   reviewEnrollmentHandler,
		removeEnrollmentHandler:   removeEnrollmentHandler,
		getOrdersHandler:          getOrdersHandler,
		getClaimableGroupsHandler: getClaimableGroupsHandler,
		getMerchantDetailHandler:  getMerchantDetailHandler,
		logger:                    logger,
	}
}

// RegisterRoutes mounts every marketplace endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.DELETE("/orders/:orderID", s.DeleteOrder)
	api.POST("/orders/:orderID/pickup", s.PickupOrder)
	api.POST("/orders/:orderID/rating", s.RateOrder)

	api.POST("/dispatch/claim", s.ClaimOrders)
	api.POST("/dispatch/release", s.ReleaseOrders)
	api.POST("/dispatch/ready", s.MarkOrdersReady)
	api.GET("/dispatch/claimable", s.GetClaimableGroups)

	api.POST("/enrollments", s.RequestEnrollment)
	api.POST("/enrollments/:enrollmentID/decision", s.ReviewEnrollment)
	api.DELETE("/enrollments/:enrollmentID", s.RemoveEnrollment)

	api.GET("/merchants/:merchantID/platforms/:platformID", s.GetMerchantDetail)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "invalid request body")
	}
	merchantID, err := parseUUID(request.MerchantID, "merchant_id")
	if err != nil {
		return s.respondError(ctx, err)
	}
	platformID, err := parseUUID(request.PlatformID, "platform_id")
	if err != nil {
		return s.respondError(ctx, err)
	}
	var discountID *kernel.UUID
	if request.DiscountID != nil {
		id, err := parseUUID(*request.DiscountID, "discount_id")
		if err != nil {
			return s.respondError(ctx, err)
		}
		discountID = &id
	}
	items := make([]commands.OrderItemRequest, 0, len(request.Items))
	for _, item := range request.Items {
		mealID, err := parseUUID(item.MealID, "meal_id")
		if err != nil {
			return s.respondError(ctx, err)
		}
		items = append(items, commands.OrderItemRequest{MealID: mealID, Quantity: item.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, userID, merchantID, platformID, discountID, items)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders. The scope parameter selects the
// role column, role_id the profile whose orders to list.
func (s *Server) GetOrders(ctx echo.Context) error {
	scope, err := scopeFromString(ctx.QueryParam("scope"))
	if err != nil {
		return s.respondError(ctx, err)
	}
	roleID, err := parseUUID(ctx.QueryParam("role_id"), "role_id")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(scope, roleID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, orderResponseFromQuery(row))
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderID. The optional role
// query parameter selects which role record the acting user deletes as;
// it defaults to customer.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}
	orderID, err := parseUUID(ctx.Param("orderID"), "orderID")
	if err != nil {
		return s.respondError(ctx, err)
	}
	actor, err := deleteActorFromString(ctx.QueryParam("role"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, userID, actor)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PickupOrder handles POST /api/v1/orders/:orderID/pickup.
func (s *Server) PickupOrder(ctx echo.Context) error {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}
	orderID, err := parseUUID(ctx.Param("orderID"), "orderID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewPickupOrderCommand(orderID, userID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err := s.pickupOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RateOrder handles POST /api/v1/orders/:orderID/rating.
func (s *Server) RateOrder(ctx echo.Context) error {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}
	orderID, err := parseUUID(ctx.Param("orderID"), "orderID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request RateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "invalid request body")
	}
	merchantScore, err := kernel.NewRatingFromString(request.MerchantScore)
	if err != nil {
		return s.respondError(ctx, err)
	}
	platformScore, err := kernel.NewRatingFromString(request.PlatformScore)
	if err != nil {
		return s.respondError(ctx, err)
	}
	var riderScore *kernel.Rating
	if request.RiderScore != nil {
		score, err := kernel.NewRatingFromString(*request.RiderScore)
		if err != nil {
			return s.respondError(ctx, err)
		}
		riderScore = &score
	}
	itemScores := make([]commands.ItemScoreRequest, 0, len(request.ItemScores))
	for _, item := range request.ItemScores {
		itemID, err := parseUUID(item.ItemID, "item_id")
		if err != nil {
			return s.respondError(ctx, err)
		}
		score, err := kernel.NewRatingFromString(item.Score)
		if err != nil {
			return s.respondError(ctx, err)
		}
		itemScores = append(itemScores, commands.ItemScoreRequest{ItemID: itemID, Score: score})
	}

	cmd, err := commands.NewRateOrderCommand(
		orderID, userID, merchantScore, platformScore, riderScore, itemScores, request.Comment,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// ClaimOrders handles POST /api/v1/dispatch/claim.
func (s *Server) ClaimOrders(ctx echo.Context) error {
	userID, selector, err := s.bindDispatch(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewClaimOrdersCommand(userID, selector)
	if err != nil {
		return s.respondError(ctx, err)
	}
	claimed, err := s.claimOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, DispatchResponse{Count: claimed})
}

// ReleaseOrders handles POST /api/v1/dispatch/release.
func (s *Server) ReleaseOrders(ctx echo.Context) error {
	userID, selector, err := s.bindDispatch(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewReleaseOrdersCommand(userID, selector)
	if err != nil {
		return s.respondError(ctx, err)
	}
	released, err := s.releaseOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, DispatchResponse{Count: released})
}

// MarkOrdersReady handles POST /api/v1/dispatch/ready.
func (s *Server) MarkOrdersReady(ctx echo.Context) error {
	userID, selector, err := s.bindDispatch(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrdersReadyCommand(userID, selector)
	if err != nil {
		return s.respondError(ctx, err)
	}
	marked, err := s.markOrdersReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, DispatchResponse{Count: marked})
}

// GetClaimableGroups handles GET /api/v1/dispatch/claimable.
func (s *Server) GetClaimableGroups(ctx echo.Context) error {
	riderID, err := parseUUID(ctx.QueryParam("rider_id"), "rider_id")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetClaimableGroupsQuery(riderID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	groups, err := s.getClaimableGroupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]ClaimableGroupResponse, 0, len(groups))
	for _, group := range groups {
		response = append(response, ClaimableGroupResponse{
			MerchantID:   group.MerchantID.String(),
			MerchantName: group.MerchantName,
			CustomerID:   group.CustomerID.String(),
			Address:      group.Address,
			OrderCount:   group.OrderCount,
			TotalPrice:   group.TotalPrice,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// RequestEnrollment handles POST /api/v1/enrollments.
func (s *Server) RequestEnrollment(ctx echo.Context) error {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request EnrollmentRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "invalid request body")
	}
	kind, err := party.EnrollmentKindFromString(request.Kind)
	if err != nil {
		return s.respondError(ctx, err)
	}
	platformID, err := parseUUID(request.PlatformID, "platform_id")
	if err != nil {
		return s.respondError(ctx, err)
	}

	enrollmentID := kernel.NewUUID()
	cmd, err := commands.NewRequestEnrollmentCommand(enrollmentID, kind, userID, platformID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err := s.requestEnrollmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, EnrollmentResponse{EnrollmentID: enrollmentID.String()})
}

// ReviewEnrollment handles POST /api/v1/enrollments/:enrollmentID/decision.
func (s *Server) ReviewEnrollment(ctx echo.Context) error {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}
	enrollmentID, err := parseUUID(ctx.Param("enrollmentID"), "enrollmentID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request EnrollmentDecisionRequest
	if err := ctx.Bind(&request); err != nil {
		return s.respondBadRequest(ctx, "invalid request body")
	}
	decision, err := decisionFromString(request.Decision)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewReviewEnrollmentCommand(enrollmentID, userID, decision)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err := s.reviewEnrollmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveEnrollment handles DELETE /api/v1/enrollments/:enrollmentID.
func (s *Server) RemoveEnrollment(ctx echo.Context) error {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return s.respondError(ctx, err)
	}
	enrollmentID, err := parseUUID(ctx.Param("enrollmentID"), "enrollmentID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveEnrollmentCommand(enrollmentID, userID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err := s.removeEnrollmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetMerchantDetail handles GET /api/v1/merchants/:merchantID/platforms/:platformID.
func (s *Server) GetMerchantDetail(ctx echo.Context) error {
	merchantID, err := parseUUID(ctx.Param("merchantID"), "merchantID")
	if err != nil {
		return s.respondError(ctx, err)
	}
	platformID, err := parseUUID(ctx.Param("platformID"), "platformID")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetMerchantDetailQuery(merchantID, platformID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	detail, err := s.getMerchantDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, merchantDetailResponseFromQuery(detail))
}

func (s *Server) actingUser(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(userIDHeader)
	if header == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(userIDHeader + " header")
	}
	return parseUUID(header, userIDHeader+" header")
}

// parseUUID maps a malformed identifier onto the validation taxonomy so the
// response is a 400, not a 500.
func parseUUID(value, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func (s *Server) bindDispatch(ctx echo.Context) (kernel.UUID, order.Selector, error) {
	userID, err := s.actingUser(ctx)
	if err != nil {
		return kernel.UUID{}, order.Selector{}, err
	}

	var request DispatchRequest
	if err := ctx.Bind(&request); err != nil {
		return kernel.UUID{}, order.Selector{}, errs.NewValueIsInvalidError("request body")
	}

	if request.OrderID != nil {
		orderID, err := parseUUID(*request.OrderID, "order_id")
		if err != nil {
			return kernel.UUID{}, order.Selector{}, err
		}
		selector, err := order.SelectByOrder(orderID)
		return userID, selector, err
	}
	if request.MerchantID != nil && request.CustomerID != nil {
		merchantID, err := parseUUID(*request.MerchantID, "merchant_id")
		if err != nil {
			return kernel.UUID{}, order.Selector{}, err
		}
		customerID, err := parseUUID(*request.CustomerID, "customer_id")
		if err != nil {
			return kernel.UUID{}, order.Selector{}, err
		}
		selector, err := order.SelectByGroup(merchantID, customerID)
		return userID, selector, err
	}
	return kernel.UUID{}, order.Selector{},
		errs.NewValueIsRequiredError("order_id or merchant_id and customer_id")
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(status, ErrorResponse{Code: status, Message: "internal error"})
	}
	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func (s *Server) respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func scopeFromString(value string) (queries.OrderScope, error) {
	switch value {
	case "customer":
		return queries.ScopeCustomer, nil
	case "merchant":
		return queries.ScopeMerchant, nil
	case "rider":
		return queries.ScopeRider, nil
	case "platform":
		return queries.ScopePlatform, nil
	default:
		return queries.ScopeUnknown, errs.NewValueIsInvalidError("scope")
	}
}

func deleteActorFromString(value string) (commands.DeleteActor, error) {
	switch value {
	case "", "customer":
		return commands.DeleteActorCustomer, nil
	case "merchant":
		return commands.DeleteActorMerchant, nil
	case "platform":
		return commands.DeleteActorPlatform, nil
	default:
		return commands.DeleteActorUnknown, errs.NewValueIsInvalidError("role")
	}
}

func decisionFromString(value string) (commands.EnrollmentDecision, error) {
	switch value {
	case "approve":
		return commands.DecisionApprove, nil
	case "reject":
		return commands.DecisionReject, nil
	default:
		return commands.DecisionUnknown, errs.NewValueIsInvalidError("decision")
	}
}
