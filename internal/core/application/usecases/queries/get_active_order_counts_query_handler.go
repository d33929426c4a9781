package queries

import (
	"context"

	"hubfleet/internal/core/domain/model/order"
	"hubfleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetActiveOrderCountsQueryHandler aggregates active-order counts by hub,
// giving ops visibility into per-hub workload.
type GetActiveOrderCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrderCountsQueryHandler creates a handler for the counts
// query.
func NewGetActiveOrderCountsQueryHandler(db *gorm.DB) GetActiveOrderCountsQueryHandler {
	return GetActiveOrderCountsQueryHandler{db: db}
}

// Handle executes the aggregation. Hubs with no active orders do not appear
// in the result.
func (h GetActiveOrderCountsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrderCountsQuery,
) ([]ActiveOrderCountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]ActiveOrderCountResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT hub_id, COUNT(*) AS active_orders
		FROM orders
		WHERE status = ?
		GROUP BY hub_id
		ORDER BY hub_id
	`, order.Active.String()).Rows()
	if err != nil {
		return nil, errs.NewStoreReadError("count active orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var count ActiveOrderCountResponse
		if err = rows.Scan(&count.HubID, &count.Count); err != nil {
			return nil, errs.NewStoreReadError("scan active order count row", err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreReadError("iterate active order count rows", err)
	}

	return counts, nil
}
