package commands

import (
	"errors"
	"time"

	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/core/domain/model/order"
	"hubfleet/internal/pkg/errs"
	"hubfleet/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand is the checkout ingress: it carries everything needed
// to create an order in active status, bound to one hub.
type CreateOrderCommand struct {
	orderID    kernel.UUID
	hubID      kernel.HubID
	customerID kernel.UUID
	items      []order.Item
	orderDate  time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order creation request.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	hubID kernel.HubID,
	customerID kernel.UUID,
	items []order.Item,
	orderDate time.Time,
) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := hubID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := customerID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	if orderDate.IsZero() {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("orderDate")
	}

	return CreateOrderCommand{
		orderID:    orderID,
		hubID:      hubID,
		customerID: customerID,
		items:      items,
		orderDate:  orderDate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// HubID returns the distribution hub the order is routed through.
func (c CreateOrderCommand) HubID() kernel.HubID {
	return c.hubID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// OrderDate returns the checkout timestamp.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
