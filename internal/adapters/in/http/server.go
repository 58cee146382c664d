// Package http exposes the order operations over a thin echo-based REST API.
// Controllers translate JSON payloads into commands and queries and map
// domain errors onto HTTP status codes; all business logic stays in the
// application layer.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeDestinationHandler commands.ChangeDestinationCommandHandler
	deliverOrderHandler      commands.DeliverOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler

	// Query handlers
	getOrderByIDHandler     queries.GetOrderByIDQueryHandler
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeDestinationHandler commands.ChangeDestinationCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeDestinationHandler: changeDestinationHandler,
		deliverOrderHandler:      deliverOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getOrderByNumberHandler:  getOrderByNumberHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrderByID)
	v1.GET("/orders/number/:number", s.GetOrderByNumber)
	v1.PATCH("/orders/:id/destination", s.ChangeDestination)
	v1.POST("/orders/:id/deliver", s.DeliverOrder)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items, err := itemsFromRequest(request.Items)
	if err != nil {
		return s.renderError(ctx, err)
	}

	origin, err := locationFromRequest(request.Origin)
	if err != nil {
		return s.renderError(ctx, err)
	}

	destination, err := locationFromRequest(request.Destination)
	if err != nil {
		return s.renderError(ctx, err)
	}

	policy, err := order.NewDeliveryPolicy(
		request.Policy.AlcoholDelivery,
		request.Policy.ContactlessDelivery,
		request.Policy.Reserved,
		request.Policy.ReservedStartTime,
		request.Policy.PickupRequestTime,
	)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(items, origin, destination, policy)
	if err != nil {
		return s.renderError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	model, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queryToResponse(model))
}

// GetOrderByNumber handles GET /api/v1/orders/number/:number - retrieves one
// order by its business identifier.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("number"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	model, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queryToResponse(model))
}

// ChangeDestination handles PATCH /api/v1/orders/:id/destination - moves the
// drop-off point of a created order to new coordinates.
func (s *Server) ChangeDestination(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var request ChangeDestinationRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	latLng, err := kernel.NewLatLng(request.Latitude, request.Longitude)
	if err != nil {
		return s.renderError(ctx, err)
	}

	entrance := kernel.NewEntranceInfo(
		request.EntrancePassword,
		request.EntranceGuide,
		request.EntranceRequestMessage,
	)

	cmd, err := commands.NewChangeDestinationCommand(id, latLng, request.DetailAddress, entrance)
	if err != nil {
		return s.renderError(ctx, err)
	}

	updated, err := s.changeDestinationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver - marks an order as
// delivered.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewDeliverOrderCommand(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	delivered, err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(delivered))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

// renderError maps domain errors onto HTTP status codes. Transient
// refinement failures surface as 503 so clients know the request may be
// retried as-is.
func (s *Server) renderError(ctx echo.Context, err error) error {
	status := statusFromError(err)
	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func statusFromError(err error) int {
	switch {
	case errs.IsRetryable(err):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict),
		errors.Is(err, errs.ErrLocationChangeNotAllowed),
		errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
