package queries

import (
	"context"
	"time"

	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/core/domain/model/order"
	"hubfleet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the hub-scoped active-order listing.
// Results are ordered by id descending so consecutive pages with no
// intervening writes are disjoint, contiguous slices of the same set.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active-order
// listings.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the listing query. A zero hub returns an empty slice
// without touching the database; so does a page beyond the data. Read I/O
// failures are tagged StoreReadFailed.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]ActiveOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ActiveOrderResponse, 0)
	if query.HubID().IsZero() {
		return orders, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.hub_id,
			o.total,
			o.order_date,
			o.status,
			COUNT(i.id) AS item_count
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.hub_id = ? AND o.status = ?
		GROUP BY o.id, o.customer_id, o.hub_id, o.total, o.order_date, o.status
		ORDER BY o.id DESC
		OFFSET ? LIMIT ?
	`, query.HubID().String(), order.Active.String(), (query.Page()-1)*query.Size(), query.Size()).Rows()
	if err != nil {
		return nil, errs.NewStoreReadError("list active orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			hubID      string
			total      int64
			orderDate  time.Time
			status     string
			itemCount  int
		)

		if err = rows.Scan(&id, &customerID, &hubID, &total, &orderDate, &status, &itemCount); err != nil {
			return nil, errs.NewStoreReadError("scan active order row", err)
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		custID, custErr := kernel.UUIDFromBytes(customerID[:])
		if custErr != nil {
			return nil, custErr
		}

		orders = append(orders, ActiveOrderResponse{
			ID:         orderID,
			CustomerID: custID,
			HubID:      hubID,
			Total:      total,
			OrderDate:  orderDate,
			Status:     status,
			ItemCount:  itemCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreReadError("iterate active order rows", err)
	}

	return orders, nil
}
