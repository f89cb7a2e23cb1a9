package model

import (
	"time"

	"github.com/google/uuid"

	"quickbite/internal/domain/entity"
)

// OrderModel mirrors the 'orders' table. The stored total is the sum of its
// line snapshots; both are written in the same transaction.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryAddress string    `gorm:"type:text;not null"`
	TotalCents      int64     `gorm:"not null;check:total_cents >= 0"`
	Status          string    `gorm:"type:varchar(16);not null;default:'placed'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items      []OrderItemModel        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Assignment *CourierAssignmentModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity maps the persistence model to a pure domain entity.
func (m *OrderModel) ToEntity() *entity.Order {
	order := &entity.Order{
		ID:              m.ID,
		CustomerID:      m.CustomerID,
		RestaurantID:    m.RestaurantID,
		DeliveryAddress: m.DeliveryAddress,
		TotalCents:      m.TotalCents,
		Status:          entity.OrderStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	for i := range m.Items {
		order.Items = append(order.Items, entity.OrderItem{
			OrderID:          m.Items[i].OrderID,
			ItemID:           m.Items[i].ItemID,
			Quantity:         m.Items[i].Quantity,
			PriceAtTimeCents: m.Items[i].PriceAtTimeCents,
		})
	}
	if m.Assignment != nil {
		order.Assignment = m.Assignment.ToEntity()
	}

	return order
}

// OrderModelFromEntity maps a domain entity to the persistence model.
// The assignment is persisted separately and not included here.
func OrderModelFromEntity(order *entity.Order) *OrderModel {
	m := &OrderModel{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		RestaurantID:    order.RestaurantID,
		DeliveryAddress: order.DeliveryAddress,
		TotalCents:      order.TotalCents,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}

	for i := range order.Items {
		m.Items = append(m.Items, OrderItemModel{
			OrderID:          order.Items[i].OrderID,
			ItemID:           order.Items[i].ItemID,
			Quantity:         order.Items[i].Quantity,
			PriceAtTimeCents: order.Items[i].PriceAtTimeCents,
		})
	}

	return m
}

// OrderItemModel mirrors the 'order_items' table. PriceAtTimeCents is the
// item price snapshotted when the order was placed.
type OrderItemModel struct {
	OrderID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity         int       `gorm:"not null;check:quantity >= 1"`
	PriceAtTimeCents int64     `gorm:"not null;check:price_at_time_cents >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// CourierAssignmentModel mirrors the 'courier_assignments' table. The order
// ID is the primary key, so an order can never carry two assignments.
type CourierAssignmentModel struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedAt  time.Time `gorm:"not null"`
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourierAssignmentModel) TableName() string {
	return "courier_assignments"
}

// ToEntity maps the persistence model to a pure domain entity.
func (m *CourierAssignmentModel) ToEntity() *entity.CourierAssignment {
	return &entity.CourierAssignment{
		OrderID:     m.OrderID,
		CourierID:   m.CourierID,
		AssignedAt:  m.AssignedAt,
		PickedUpAt:  m.PickedUpAt,
		DeliveredAt: m.DeliveredAt,
	}
}

// AssignmentModelFromEntity maps a domain entity to the persistence model.
func AssignmentModelFromEntity(assignment *entity.CourierAssignment) *CourierAssignmentModel {
	return &CourierAssignmentModel{
		OrderID:     assignment.OrderID,
		CourierID:   assignment.CourierID,
		AssignedAt:  assignment.AssignedAt,
		PickedUpAt:  assignment.PickedUpAt,
		DeliveredAt: assignment.DeliveredAt,
	}
}
