package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is placed by one customer against one restaurant and aggregates
// order items. TotalCents is computed from the line items at creation time.
type Order struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	RestaurantID    uuid.UUID
	DeliveryAddress string
	TotalCents      int64
	Status          OrderStatus
	Items           []OrderItem
	Assignment      *CourierAssignment // Nil until a courier is assigned.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem records one line of an order. PriceAtTimeCents snapshots the item
// price at order creation and is never updated afterward, so later catalog
// price changes do not affect existing orders.
type OrderItem struct {
	OrderID          uuid.UUID
	ItemID           uuid.UUID
	Quantity         int
	PriceAtTimeCents int64
}
