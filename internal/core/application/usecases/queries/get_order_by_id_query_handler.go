package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads a single order with its lines. The hub
// check runs before anything about the order is returned, with the same
// discipline as the transition use case: a caller outside the hub gets a
// hub mismatch and nothing else.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for order detail reads.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle reads the order header, enforces hub scope, then reads the lines.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	var (
		id         uuid.UUID
		customerID uuid.UUID
		hubID      string
		total      int64
		orderDate  time.Time
		status     string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, hub_id, total, order_date, status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &customerID, &hubID, &total, &orderDate, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetailResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderDetailResponse{}, errs.NewStoreReadError("get order", err)
	}

	if hubID != query.CallerHub().String() {
		return OrderDetailResponse{}, errs.NewHubMismatchError(hubID, query.CallerHub().String())
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}

	items, err := h.readItems(ctx, query.OrderID())
	if err != nil {
		return OrderDetailResponse{}, err
	}

	return OrderDetailResponse{
		ID:         orderID,
		CustomerID: custID,
		HubID:      hubID,
		Items:      items,
		Total:      total,
		OrderDate:  orderDate,
		Status:     status,
	}, nil
}

func (h GetOrderByIDQueryHandler) readItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, name, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, errs.NewStoreReadError("get order items", err)
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			name      string
			quantity  int
			unitPrice int64
		)

		if err = rows.Scan(&productID, &name, &quantity, &unitPrice); err != nil {
			return nil, errs.NewStoreReadError("scan order item row", err)
		}

		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, OrderItemResponse{
			ProductID: prodID,
			Name:      name,
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStoreReadError("iterate order item rows", err)
	}

	return items, nil
}
