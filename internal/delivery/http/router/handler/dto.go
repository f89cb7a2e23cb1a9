// Package handler contains the echo HTTP handlers of the API.
package handler

import (
	"time"

	"github.com/google/uuid"

	"quickbite/internal/domain/entity"
)

// UserResponse is the wire shape of an account. The password hash never
// leaves the persistence boundary.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	IsVerified  bool      `json:"is_verified"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Phone:       user.Phone,
		Address:     user.Address,
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		IsVerified:  user.IsVerified,
		IsSuperuser: user.IsSuperuser,
		CreatedAt:   user.CreatedAt,
	}
}

// TokenResponse is the wire shape of an issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

// LocationResponse is the wire shape of a geographic point.
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RestaurantResponse is the wire shape of a restaurant.
type RestaurantResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Address        string           `json:"address"`
	Phone          string           `json:"phone,omitempty"`
	Email          string           `json:"email,omitempty"`
	Description    string           `json:"description,omitempty"`
	ImageURL       string           `json:"image_url,omitempty"`
	OperatingHours string           `json:"operating_hours,omitempty"`
	Rating         *float64         `json:"rating"`
	IsOpen         bool             `json:"is_open"`
	Location       LocationResponse `json:"location"`
	CreatedAt      time.Time        `json:"created_at"`
}

func newRestaurantResponse(restaurant *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:             restaurant.ID,
		Name:           restaurant.Name,
		Address:        restaurant.Address,
		Phone:          restaurant.Phone,
		Email:          restaurant.Email,
		Description:    restaurant.Description,
		ImageURL:       restaurant.ImageURL,
		OperatingHours: restaurant.OperatingHours,
		Rating:         restaurant.Rating,
		IsOpen:         restaurant.IsOpen,
		Location: LocationResponse{
			Latitude:  restaurant.Location.Lat(),
			Longitude: restaurant.Location.Lon(),
		},
		CreatedAt: restaurant.CreatedAt,
	}
}

func newRestaurantListResponse(restaurants []*entity.Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		out = append(out, newRestaurantResponse(restaurant))
	}

	return out
}

// ItemResponse is the wire shape of a menu item.
type ItemResponse struct {
	ID            uuid.UUID `json:"id"`
	RestaurantID  uuid.UUID `json:"restaurant_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	PriceCents    int64     `json:"price_cents"`
	ImageURL      string    `json:"image_url,omitempty"`
	IsAvailable   bool      `json:"is_available"`
	IsRecommended bool      `json:"is_recommended"`
	CreatedAt     time.Time `json:"created_at"`
}

func newItemResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		RestaurantID:  item.RestaurantID,
		Name:          item.Name,
		Description:   item.Description,
		PriceCents:    item.PriceCents,
		ImageURL:      item.ImageURL,
		IsAvailable:   item.IsAvailable,
		IsRecommended: item.IsRecommended,
		CreatedAt:     item.CreatedAt,
	}
}

func newItemListResponse(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newItemResponse(item))
	}

	return out
}

// OrderItemResponse is the wire shape of one order line.
type OrderItemResponse struct {
	ItemID           uuid.UUID `json:"item_id"`
	Quantity         int       `json:"quantity"`
	PriceAtTimeCents int64     `json:"price_at_time_cents"`
}

// OrderResponse is the wire shape of an order.
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	CustomerID      uuid.UUID           `json:"customer_id"`
	RestaurantID    uuid.UUID           `json:"restaurant_id"`
	DeliveryAddress string              `json:"delivery_address"`
	TotalCents      int64               `json:"total_cents"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	Assignment      *AssignmentResponse `json:"assignment,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

func newOrderResponse(order *entity.Order) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		RestaurantID:    order.RestaurantID,
		DeliveryAddress: order.DeliveryAddress,
		TotalCents:      order.TotalCents,
		Status:          string(order.Status),
		Items:           make([]OrderItemResponse, 0, len(order.Items)),
		CreatedAt:       order.CreatedAt,
	}

	for i := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ItemID:           order.Items[i].ItemID,
			Quantity:         order.Items[i].Quantity,
			PriceAtTimeCents: order.Items[i].PriceAtTimeCents,
		})
	}
	if order.Assignment != nil {
		assignment := newAssignmentResponse(order.Assignment)
		resp.Assignment = &assignment
	}

	return resp
}

func newOrderListResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, newOrderResponse(order))
	}

	return out
}

// AssignmentResponse is the wire shape of a courier assignment.
type AssignmentResponse struct {
	OrderID     uuid.UUID  `json:"order_id"`
	CourierID   uuid.UUID  `json:"courier_id"`
	AssignedAt  time.Time  `json:"assigned_at"`
	PickedUpAt  *time.Time `json:"picked_up_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

func newAssignmentResponse(assignment *entity.CourierAssignment) AssignmentResponse {
	return AssignmentResponse{
		OrderID:     assignment.OrderID,
		CourierID:   assignment.CourierID,
		AssignedAt:  assignment.AssignedAt,
		PickedUpAt:  assignment.PickedUpAt,
		DeliveredAt: assignment.DeliveredAt,
	}
}

// PositionResponse is the wire shape of one courier position sample.
type PositionResponse struct {
	ID         uuid.UUID `json:"id"`
	CourierID  uuid.UUID `json:"courier_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}

func newPositionResponse(position *entity.CourierPosition) PositionResponse {
	return PositionResponse{
		ID:         position.ID,
		CourierID:  position.CourierID,
		Latitude:   position.Point.Lat(),
		Longitude:  position.Point.Lon(),
		RecordedAt: position.RecordedAt,
	}
}

func newPositionListResponse(positions []*entity.CourierPosition) []PositionResponse {
	out := make([]PositionResponse, 0, len(positions))
	for _, position := range positions {
		out = append(out, newPositionResponse(position))
	}

	return out
}

// MessageResponse is a plain acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}
