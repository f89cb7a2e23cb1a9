package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"quickbite/internal/delivery/http/middleware"
	"quickbite/internal/delivery/http/response"
	"quickbite/internal/domain/entity"
	"quickbite/internal/usecase"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one requested line of a new order.
type OrderLineRequest struct {
	ItemID   string `json:"item_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest represents the request body for placing an order.
type CreateOrderRequest struct {
	RestaurantID    string             `json:"restaurant_id" validate:"required,uuid"`
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents the request body for a status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=placed accepted ready picked_up done cancelled"`
}

// Create handles order placement.
func (h *OrderHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return response.BadRequest(c, "invalid restaurant id")
	}

	lines := make([]usecase.OrderLineInput, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, err := uuid.Parse(line.ItemID)
		if err != nil {
			return response.BadRequest(c, "invalid item id")
		}
		lines = append(lines, usecase.OrderLineInput{
			ItemID:   itemID,
			Quantity: line.Quantity,
		})
	}

	order, err := h.orderUC.Create(c.Request().Context(), actor, usecase.CreateOrderInput{
		RestaurantID:    restaurantID,
		DeliveryAddress: req.DeliveryAddress,
		Lines:           lines,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, newOrderResponse(order))
}

// List handles the order listing visible to the actor.
func (h *OrderHandler) List(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	input := usecase.ListOrdersInput{Options: parseListOptions(c)}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(raw)
		if !status.IsValid() {
			return response.BadRequest(c, "invalid order status")
		}
		input.Status = &status
	}

	orders, err := h.orderUC.List(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newOrderListResponse(orders))
}

// Get handles a single order read.
func (h *OrderHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid order id")
	}

	order, err := h.orderUC.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newOrderResponse(order))
}

// UpdateStatus advances an order along the fulfillment state machine.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), actor, id, entity.OrderStatus(req.Status))
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newOrderResponse(order))
}

// Delete handles order removal.
func (h *OrderHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid order id")
	}

	if err := h.orderUC.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return response.NoContent(c)
}
