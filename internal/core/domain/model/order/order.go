package order

import (
	"errors"
	"fmt"
	"time"

	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Item is one line of an order: a product reference with quantity and the
// unit price captured at checkout time, in minor currency units.
type Item struct {
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice int64
}

// NewItem creates a validated order line.
func NewItem(productID kernel.UUID, name string, quantity int, unitPrice int64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%d is negative", unitPrice))
	}
	return Item{productID: productID, name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID { return i.productID }

// Name returns the product name as captured at checkout.
func (i Item) Name() string { return i.name }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the per-unit price in minor currency units.
func (i Item) UnitPrice() int64 { return i.unitPrice }

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() int64 { return int64(i.quantity) * i.unitPrice }

// Order is the aggregate root for a customer order routed through a
// distribution hub.
//
// Invariants:
//   - id and hubID are immutable after creation
//   - status is one of active, delivered, canceled; active is the sole
//     non-terminal state
//   - a terminal order never transitions again
//   - status is the only mutable field; everything else is descriptive
//     payload fixed at checkout
type Order struct {
	id         kernel.UUID
	hubID      kernel.HubID
	customerID kernel.UUID
	items      []Item
	total      int64
	orderDate  time.Time
	status     Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in Active status, bound to exactly one hub.
// Called by the checkout ingress; the total is derived from the items so it
// cannot disagree with them.
func NewOrder(
	id kernel.UUID,
	hubID kernel.HubID,
	customerID kernel.UUID,
	items []Item,
	orderDate time.Time,
) (*Order, error) {
	o := &Order{
		status:        Active,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setHubID(hubID),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		o.total += item.Subtotal()
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence, including its stored
// status and total. The status must be one of the three legal values.
func RestoreOrder(
	id kernel.UUID,
	hubID kernel.HubID,
	customerID kernel.UUID,
	items []Item,
	total int64,
	orderDate time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setHubID(hubID),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setOrderDate(orderDate),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.total = total
	return o, nil
}

// Validate ensures the Order was created through a constructor. Called when
// reconstructing orders from persistence and before any write.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// HubID returns the distribution hub the order is routed through.
func (o *Order) HubID() kernel.HubID {
	return o.hubID
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the order total in minor currency units.
func (o *Order) Total() int64 {
	return o.total
}

// OrderDate returns the checkout timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// BelongsToHub reports whether the order is routed through the given hub.
// The transition use case checks this before inspecting the status, so a
// caller outside the hub never learns whether the order is finalized.
func (o *Order) BelongsToHub(hub kernel.HubID) bool {
	return o.hubID.IsEqual(hub)
}

// TransitionTo moves the order to a terminal status.
//
// Rules:
//   - target must be Delivered or Canceled; Active is never a legal target
//   - a terminal order rejects every further transition with an
//     OrderFinalizedError, regardless of the requested target
//
// The aggregate mutation is in-memory; the repository makes it durable with
// a conditional write keyed on the prior status.
func (o *Order) TransitionTo(target Status) error {
	if err := target.ValidateTarget(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewOrderFinalizedError(o.id.String(), o.status.String())
	}

	if err := o.status.Validate(); err != nil {
		return err
	}

	o.status = target
	return nil
}

// Deliver marks the order as delivered.
func (o *Order) Deliver() error {
	return o.TransitionTo(Delivered)
}

// Cancel marks the order as canceled.
func (o *Order) Cancel() error {
	return o.TransitionTo(Canceled)
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setHubID validates and sets the routing hub. Immutable after creation.
func (o *Order) setHubID(hubID kernel.HubID) error {
	if err := hubID.Validate(); err != nil {
		return err
	}
	o.hubID = hubID
	return nil
}

// setCustomerID validates and sets the customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems validates and copies the order lines. At least one line is
// required; zero-value Item structs are rejected.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item.quantity == 0 {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d was not created via NewItem", i))
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setOrderDate validates and sets the checkout timestamp.
func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

// setStatus validates and sets the stored status during rehydration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
