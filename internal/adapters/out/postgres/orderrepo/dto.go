// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository side of the order store
// contract, converting between the domain aggregate and its relational
// representation.
package orderrepo

import (
	"time"

	"hubfleet/internal/core/domain/model/kernel"
	"hubfleet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. The status column is
// check-constrained to the three legal values so no unrecognized status can
// reach storage even outside this codebase, and hub_id is indexed for the
// hub-scoped listing query.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	HubID      string    `gorm:"type:varchar(64);index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null"`
	Items      []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	Total      int64     `gorm:"not null"`
	OrderDate  time.Time `gorm:"not null"`
	Status     string    `gorm:"type:varchar(16);not null;check:status IN ('active','delivered','canceled')"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line. Lines are immutable payload; they are written
// once with the order and never touched by the status machine.
type ItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		HubID:      aggregate.HubID().String(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Items:      itemDTOs,
		Total:      aggregate.Total(),
		OrderDate:  aggregate.OrderDate(),
		Status:     aggregate.Status().String(),
	}
}

// toDomain converts a database row to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	hubID, err := kernel.NewHubID(dto.HubID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, hubID, customerID, items, dto.Total, dto.OrderDate, status)
}
