// Package queries contains the read-side operations. Query handlers read
// directly through the database connection with raw SQL; they never go
// through the write-side repositories and have no side effects.
package queries

import (
	"errors"
	"time"

	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/pkg/errs"
	"hubfleet/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// Pagination bounds for active-order listings.
const (
	MinPage = 1
	MinSize = 1
	MaxSize = 30
)

// GetActiveOrdersQuery retrieves one page of a hub's active orders, ordered
// by id descending. The hub may be the zero value: callers whose hub could
// not be resolved see an empty listing rather than an error.
type GetActiveOrdersQuery struct {
	hubID kernel.HubID
	page  int
	size  int

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a validated listing query. page is
// 1-based; size is bounded to [1, 30].
func NewGetActiveOrdersQuery(hubID kernel.HubID, page, size int) (GetActiveOrdersQuery, error) {
	if page < MinPage {
		return GetActiveOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, MinPage, "unbounded")
	}
	if size < MinSize || size > MaxSize {
		return GetActiveOrdersQuery{}, errs.NewValueIsOutOfRangeError("size", size, MinSize, MaxSize)
	}

	return GetActiveOrdersQuery{
		hubID: hubID,
		page:  page,
		size:  size,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// HubID returns the hub scope of the listing. May be zero.
func (q GetActiveOrdersQuery) HubID() kernel.HubID {
	return q.hubID
}

// Page returns the 1-based page number.
func (q GetActiveOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetActiveOrdersQuery) Size() int {
	return q.size
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// ActiveOrderResponse is one row of the active-orders listing: the order
// header without its lines, sized for hub dashboards.
type ActiveOrderResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	HubID      string
	Total      int64
	OrderDate  time.Time
	Status     string
	ItemCount  int
}
