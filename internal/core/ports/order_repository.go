package ports

import (
	"context"

	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/core/domain/model/order"
)

// OrderRepository is the sole gateway to order persistence. Failures follow
// the errs taxonomy: missing rows are ObjectNotFoundError, lost conditional
// writes are ConcurrentModificationError, and driver failures are re-tagged
// as StoreReadError or StoreWriteError. Nothing is retried at this level.
type OrderRepository interface {
	// Add persists a new order aggregate. The order must be valid and not
	// already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByHub retrieves the page of active orders routed through the
	// given hub, ordered by id descending. page is 1-based; size is the page
	// length. No matching rows yields an empty slice, not an error, and a
	// zero hub short-circuits to an empty slice so callers without a
	// resolvable hub see no orders.
	GetActiveByHub(ctx context.Context, hubID kernel.HubID, page, size int) ([]*order.Order, error)

	// UpdateStatus performs a single conditional write: the row's status is
	// set to next only if it still equals expected at write time. A write
	// that matches zero rows reports ConcurrentModificationError so the
	// caller can distinguish "changed underneath me" from "updated".
	UpdateStatus(ctx context.Context, id kernel.UUID, expected, next order.Status) error
}
