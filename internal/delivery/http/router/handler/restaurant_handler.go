package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"

	"quickbite/internal/delivery/http/middleware"
	"quickbite/internal/delivery/http/response"
	"quickbite/internal/domain/repository"
	"quickbite/internal/usecase"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler holds dependencies for restaurant catalog handlers.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler.
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// CreateRestaurantRequest represents the request body for creating a restaurant.
type CreateRestaurantRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=100"`
	Address        string  `json:"address" validate:"required"`
	Phone          string  `json:"phone" validate:"omitempty,max=32"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"image_url" validate:"omitempty,url"`
	OperatingHours string  `json:"operating_hours"`
	IsOpen         *bool   `json:"is_open"`
	Latitude       float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" validate:"min=-180,max=180"`
}

// UpdateRestaurantRequest represents the request body for updating a restaurant.
type UpdateRestaurantRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Address        *string  `json:"address"`
	Phone          *string  `json:"phone" validate:"omitempty,max=32"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	Description    *string  `json:"description"`
	ImageURL       *string  `json:"image_url" validate:"omitempty,url"`
	OperatingHours *string  `json:"operating_hours"`
	Rating         *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	IsOpen         *bool    `json:"is_open"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// Create handles restaurant creation.
func (h *RestaurantHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	var req CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid restaurant input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	isOpen := true
	if req.IsOpen != nil {
		isOpen = *req.IsOpen
	}

	restaurant, err := h.restaurantUC.Create(c.Request().Context(), actor, usecase.CreateRestaurantInput{
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		OperatingHours: req.OperatingHours,
		IsOpen:         isOpen,
		Location:       orb.Point{req.Longitude, req.Latitude},
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, newRestaurantResponse(restaurant))
}

// List handles the restaurant catalog listing.
func (h *RestaurantHandler) List(c echo.Context) error {
	restaurants, err := h.restaurantUC.List(c.Request().Context(), usecase.ListRestaurantsInput{
		Filter:  repository.RestaurantFilter{Name: c.QueryParam("name")},
		Options: parseListOptions(c),
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newRestaurantListResponse(restaurants))
}

// Get handles a single restaurant read.
func (h *RestaurantHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid restaurant id")
	}

	restaurant, err := h.restaurantUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newRestaurantResponse(restaurant))
}

// Update handles restaurant updates.
func (h *RestaurantHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid restaurant id")
	}

	var req UpdateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid restaurant input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	input := usecase.UpdateRestaurantInput{
		Name:           req.Name,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		OperatingHours: req.OperatingHours,
		Rating:         req.Rating,
		IsOpen:         req.IsOpen,
	}
	if req.Latitude != nil && req.Longitude != nil {
		point := orb.Point{*req.Longitude, *req.Latitude}
		input.Location = &point
	}

	restaurant, err := h.restaurantUC.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newRestaurantResponse(restaurant))
}

// Delete handles restaurant removal.
func (h *RestaurantHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid restaurant id")
	}

	if err := h.restaurantUC.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return response.NoContent(c)
}
