package order

import (
	"fmt"

	"hubfleet/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Active ──┬──> Delivered
//	         └──> Canceled
//
// Active is the only non-terminal state. Delivered and Canceled are terminal:
// once an order reaches either, no further transition is ever allowed.
// Status is a value object; persistence and transport use the lowercase
// string forms.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active is the initial status assigned at checkout. Active orders are
	// visible in hub listings and eligible for exactly one transition.
	Active

	// Delivered indicates the shipper completed the order. Terminal.
	Delivered

	// Canceled indicates the order was called off before delivery. Terminal.
	Canceled
)

// getStatusStrings returns the string representation for every Status value,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Active:    "active",
		Delivered: "delivered",
		Canceled:  "canceled",
	}
}

// getValidStatusStrings returns only the statuses an order may legally hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:    "active",
		Delivered: "delivered",
		Canceled:  "canceled",
	}
}

// StatusFromString parses a persisted or transported status string.
// Only "active", "delivered", and "canceled" are accepted; anything else is
// rejected before it can reach the store.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the three legal values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase status name, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// ValidateTarget checks that the status is a legal transition target.
// Only the terminal states may be requested; in particular an order can never
// be moved back to (or re-set to) active.
func (s Status) ValidateTarget() error {
	if s != Delivered && s != Canceled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid transition target", s.String()),
		)
	}
	return nil
}
