package orderrepo

import (
	"context"
	"errors"

	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/core/domain/model/order"
	"hubfleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreWriteError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStoreReadError("get order", err)
	}

	return toDomain(dto)
}

// GetActiveByHub retrieves one page of active orders for a hub, newest id
// first. A zero hub yields an empty result without touching the database.
func (r *GormOrderRepository) GetActiveByHub(
	ctx context.Context,
	hubID kernel.HubID,
	page, size int,
) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)
	if hubID.IsZero() {
		return orders, nil
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("hub_id = ? AND status = ?", hubID.String(), order.Active.String()).
		Order("id DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStoreReadError("list active orders", err)
	}

	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus performs the compare-and-swap status write. The UPDATE is
// conditional on the status column still holding the expected value; a
// concurrent transition that committed first makes this match zero rows,
// which is reported as a concurrent modification rather than a silent no-op.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, next order.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), expected.String()).
		Update("status", next.String())
	if result.Error != nil {
		return errs.NewStoreWriteError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentModificationError("order status", id.String())
	}

	return nil
}
