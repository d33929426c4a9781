package queries

import (
	"errors"
	"time"

	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/pkg/guard"
)

var (
	ErrGetOrderByIDQueryIsNotConstructed = errors.New(
		"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
	)
)

// GetOrderByIDQuery retrieves one order with its lines, scoped to the
// caller's hub: an order routed through another hub is reported as a hub
// mismatch, not returned.
type GetOrderByIDQuery struct {
	orderID   kernel.UUID
	callerHub kernel.HubID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a validated detail query.
func NewGetOrderByIDQuery(orderID kernel.UUID, callerHub kernel.HubID) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}
	if err := callerHub.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		orderID:   orderID,
		callerHub: callerHub,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to read.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CallerHub returns the hub scope of the caller.
func (q GetOrderByIDQuery) CallerHub() kernel.HubID {
	return q.callerHub
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderDetailResponse is the full order view including its lines.
type OrderDetailResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	HubID      string
	Items      []OrderItemResponse
	Total      int64
	OrderDate  time.Time
	Status     string
}

// OrderItemResponse is one order line in the detail view.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	UnitPrice int64
}
