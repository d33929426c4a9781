package kernel

import (
	"strings"

	"hubfleet/internal/pkg/errs"
)

// ErrHubIDIsNotConstructed indicates a zero-value HubID that bypassed NewHubID.
var ErrHubIDIsNotConstructed = errs.NewValueIsRequiredError("HubID must be created via NewHubID")

// maxHubIDLength bounds hub identifiers at the value-object level; the
// orders table carries the matching column width.
const maxHubIDLength = 64

// HubID identifies the distribution hub an order is routed through. The hub
// is assigned once at order creation and never changes; every shipper-facing
// operation is scoped to exactly one HubID.
//
// HubID is an immutable value object. The zero value is invalid; construct
// through NewHubID.
type HubID struct {
	value string
}

// NewHubID creates a HubID from its string form (e.g. "hub_hcm").
// Leading and trailing whitespace is rejected rather than trimmed, since hub
// identifiers arrive from an already-normalized identity layer.
func NewHubID(value string) (HubID, error) {
	if value == "" {
		return HubID{}, errs.NewValueIsRequiredError("hubId")
	}
	if strings.TrimSpace(value) != value {
		return HubID{}, errs.NewValueIsInvalidError("hubId")
	}
	if len(value) > maxHubIDLength {
		return HubID{}, errs.NewValueIsOutOfRangeError("hubId length", len(value), 1, maxHubIDLength)
	}
	return HubID{value: value}, nil
}

// String returns the hub identifier as stored and transmitted.
func (h HubID) String() string {
	return h.value
}

// IsEqual reports whether two hub identifiers refer to the same hub.
func (h HubID) IsEqual(other HubID) bool {
	return h.value == other.value
}

// IsZero reports whether the HubID is the invalid zero value. Listing
// operations use this to short-circuit to an empty result for callers
// without a resolvable hub.
func (h HubID) IsZero() bool {
	return h.value == ""
}

// Validate checks that the HubID was constructed through NewHubID.
func (h HubID) Validate() error {
	if h.value == "" {
		return ErrHubIDIsNotConstructed
	}
	return nil
}
