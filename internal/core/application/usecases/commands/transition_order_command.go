package commands

import (
	"errors"

	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/core/domain/model/order"
	"hubfleet/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand requests moving one order to a terminal status on
// behalf of a shipper scoped to a hub. The target is restricted to Delivered
// or Canceled at construction time; the status machine itself never sees an
// unrecognized target.
type TransitionOrderCommand struct {
	orderID   kernel.UUID
	target    order.Status
	callerHub kernel.HubID

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a validated transition request.
// callerHub is the hub scope resolved for the caller by the authentication
// layer, not user input.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	callerHub kernel.HubID,
) (TransitionOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return TransitionOrderCommand{}, err
	}
	if err := target.ValidateTarget(); err != nil {
		return TransitionOrderCommand{}, err
	}
	if err := callerHub.Validate(); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID:   orderID,
		target:    target,
		callerHub: callerHub,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested terminal status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// CallerHub returns the hub scope of the requesting shipper.
func (c TransitionOrderCommand) CallerHub() kernel.HubID {
	return c.callerHub
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}
