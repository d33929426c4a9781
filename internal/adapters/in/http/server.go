// Package http implements the inbound HTTP adapter. It binds the generated
// ServerInterface to the application's command and query handlers and maps
// the error taxonomy onto HTTP status codes:
//
//	ObjectNotFound         -> 404
//	HubMismatch            -> 403
//	OrderFinalized         -> 409
//	ConcurrentModification -> 409
//	StoreReadFailed        -> 500
//	StoreWriteFailed       -> 500
//
// everything else (validation failures) -> 400.
package http

import (
	"errors"
	"net/http"
	"time"

	"hubfleet/internal/core/application/usecases/commands"
	"hubfleet/internal/core/application/usecases/queries"
	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/core/domain/model/order"
	"hubfleet/internal/generated/servers"
	"hubfleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// HubHeader carries the caller's hub scope, resolved by the session layer in
// front of this service.
const HubHeader = "X-Hub-Id"

// hubScopeKey is the echo context key the middleware stores the parsed hub
// under.
const hubScopeKey = "hubScope"

// HubScopeMiddleware parses the hub header into the request context. An
// absent header leaves the scope zero; listings then come back empty and
// transitions fail validation. A malformed header is rejected outright.
func HubScopeMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(HubHeader)
			if header == "" {
				ctx.Set(hubScopeKey, kernel.HubID{})
				return next(ctx)
			}

			hub, err := kernel.NewHubID(header)
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid " + HubHeader + " header",
				})
			}

			ctx.Set(hubScopeKey, hub)
			return next(ctx)
		}
	}
}

// hubScope reads the hub parsed by HubScopeMiddleware. Zero when the
// middleware is not installed or the header was absent.
func hubScope(ctx echo.Context) kernel.HubID {
	if hub, ok := ctx.Get(hubScopeKey).(kernel.HubID); ok {
		return hub
	}
	return kernel.HubID{}
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getOrderByIDHandler    queries.GetOrderByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getOrderByIDHandler:    getOrderByIDHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - the checkout ingress.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromBytes(newOrder.CustomerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	items := make([]order.Item, 0, len(newOrder.Items))
	for _, line := range newOrder.Items {
		productID, idErr := kernel.UUIDFromBytes(line.ProductId[:])
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid product id",
			})
		}

		item, itemErr := order.NewItem(productID, line.Name, line.Quantity, line.UnitPrice)
		if itemErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid order line: " + itemErr.Error(),
			})
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		hubScope(ctx),
		customerID,
		items,
		time.Now().UTC(),
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetActiveOrders handles GET /api/v1/orders/active - one page of the
// caller's hub's active orders.
func (s *Server) GetActiveOrders(ctx echo.Context, params servers.GetActiveOrdersParams) error {
	page := 1
	if params.Page != nil {
		page = *params.Page
	}
	size := 10
	if params.Size != nil {
		size = *params.Size
	}

	query, err := queries.NewGetActiveOrdersQuery(hubScope(ctx), page, size)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid pagination: " + err.Error(),
		})
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = servers.ActiveOrder{
			Id:         o.ID.Bytes(),
			CustomerId: o.CustomerID.Bytes(),
			HubId:      o.HubID,
			Total:      o.Total,
			OrderDate:  o.OrderDate,
			Status:     servers.OrderStatus(o.Status),
			ItemCount:  o.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderById handles GET /api/v1/orders/{orderId} - order detail.
func (s *Server) GetOrderById(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderByIDQuery(orderID, hubScope(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]servers.OrderItem, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = servers.OrderItem{
			ProductId: item.ProductID.Bytes(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:         detail.ID.Bytes(),
		CustomerId: detail.CustomerID.Bytes(),
		HubId:      detail.HubID,
		Items:      items,
		Total:      detail.Total,
		OrderDate:  detail.OrderDate,
		Status:     servers.OrderStatus(detail.Status),
	})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - requests
// a terminal transition.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var update servers.OrderStatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(string(update.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown status: " + string(update.Status),
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, hubScope(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// toOrderResponse maps the order aggregate onto its wire representation.
func toOrderResponse(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, servers.OrderItem{
			ProductId: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return servers.Order{
		Id:         o.ID().Bytes(),
		CustomerId: o.CustomerID().Bytes(),
		HubId:      o.HubID().String(),
		Items:      items,
		Total:      o.Total(),
		OrderDate:  o.OrderDate(),
		Status:     servers.OrderStatus(o.Status().String()),
	}
}

// writeError translates a taxonomy error into its HTTP response. The message
// is the error text; the class alone decides the status code.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusBadRequest
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrHubMismatch):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrOrderFinalized), errors.Is(err, errs.ErrConcurrentModification):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrStoreReadFailed), errors.Is(err, errs.ErrStoreWriteFailed):
		code = http.StatusInternalServerError
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Do not leak driver details to callers.
		message = "Internal error"
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
