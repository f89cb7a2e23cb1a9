package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"quickbite/internal/delivery/http/middleware"
	"quickbite/internal/delivery/http/response"
	"quickbite/internal/domain/repository"
	"quickbite/internal/usecase"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ItemUC usecase.ItemUsecase
	Logger *slog.Logger
}

// ItemHandler holds dependencies for menu item handlers.
type ItemHandler struct {
	itemUC usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler.
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		itemUC: params.ItemUC,
		logger: params.Logger,
	}
}

// CreateItemRequest represents the request body for creating a menu item.
type CreateItemRequest struct {
	RestaurantID  string `json:"restaurant_id" validate:"required,uuid"`
	Name          string `json:"name" validate:"required,min=1,max=100"`
	Description   string `json:"description"`
	PriceCents    int64  `json:"price_cents" validate:"min=0"`
	ImageURL      string `json:"image_url" validate:"omitempty,url"`
	IsAvailable   *bool  `json:"is_available"`
	IsRecommended bool   `json:"is_recommended"`
}

// UpdateItemRequest represents the request body for updating a menu item.
type UpdateItemRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description   *string `json:"description"`
	PriceCents    *int64  `json:"price_cents" validate:"omitempty,min=0"`
	ImageURL      *string `json:"image_url" validate:"omitempty,url"`
	IsAvailable   *bool   `json:"is_available"`
	IsRecommended *bool   `json:"is_recommended"`
}

// Create handles menu item creation.
func (h *ItemHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	var req CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return response.BadRequest(c, "invalid restaurant id")
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	item, err := h.itemUC.Create(c.Request().Context(), actor, usecase.CreateItemInput{
		RestaurantID:  restaurantID,
		Name:          req.Name,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		ImageURL:      req.ImageURL,
		IsAvailable:   isAvailable,
		IsRecommended: req.IsRecommended,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, newItemResponse(item))
}

// List handles the menu item listing.
func (h *ItemHandler) List(c echo.Context) error {
	filter := repository.ItemFilter{Name: c.QueryParam("name")}

	if raw := c.QueryParam("restaurant_id"); raw != "" {
		restaurantID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "invalid restaurant id")
		}
		filter.RestaurantID = &restaurantID
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "invalid min_price")
		}
		filter.MinPriceCents = &v
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "invalid max_price")
		}
		filter.MaxPriceCents = &v
	}

	items, err := h.itemUC.List(c.Request().Context(), usecase.ListItemsInput{
		Filter:  filter,
		Options: parseListOptions(c),
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newItemListResponse(items))
}

// Get handles a single menu item read.
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid item id")
	}

	item, err := h.itemUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newItemResponse(item))
}

// Update handles menu item updates.
func (h *ItemHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid item id")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	item, err := h.itemUC.Update(c.Request().Context(), actor, id, usecase.UpdateItemInput{
		Name:          req.Name,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		ImageURL:      req.ImageURL,
		IsAvailable:   req.IsAvailable,
		IsRecommended: req.IsRecommended,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newItemResponse(item))
}

// Delete handles menu item removal.
func (h *ItemHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid item id")
	}

	if err := h.itemUC.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return response.NoContent(c)
}
