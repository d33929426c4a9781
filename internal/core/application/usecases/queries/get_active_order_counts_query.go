package queries

import (
	"errors"

	"hubfleet/internal/pkg/guard"
)

var (
	ErrGetActiveOrderCountsQueryIsNotConstructed = errors.New(
		"GetActiveOrderCountsQuery must be created via NewGetActiveOrderCountsQuery constructor",
	)
)

// GetActiveOrderCountsQuery retrieves the active-order count per hub.
// A parameterless query used by the periodic workload report.
type GetActiveOrderCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrderCountsQuery creates the counts query.
func NewGetActiveOrderCountsQuery() GetActiveOrderCountsQuery {
	return GetActiveOrderCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrderCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrderCountsQueryIsNotConstructed)
}

// ActiveOrderCountResponse is one hub's active-order count.
type ActiveOrderCountResponse struct {
	HubID string
	Count int
}
