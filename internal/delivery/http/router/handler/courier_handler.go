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
	"quickbite/internal/usecase"
)

// CourierHandlerParams holds dependencies for CourierHandler, injected by Fx.
type CourierHandlerParams struct {
	fx.In

	CourierUC usecase.CourierUsecase
	Logger    *slog.Logger
}

// CourierHandler holds dependencies for courier dispatch handlers.
type CourierHandler struct {
	courierUC usecase.CourierUsecase
	logger    *slog.Logger
}

// NewCourierHandler is the constructor for CourierHandler.
func NewCourierHandler(params CourierHandlerParams) *CourierHandler {
	return &CourierHandler{
		courierUC: params.CourierUC,
		logger:    params.Logger,
	}
}

// AssignCourierRequest represents the request body for a courier assignment.
// CourierID may be omitted by couriers assigning themselves.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id" validate:"omitempty,uuid"`
}

// RecordPositionRequest represents one reported position sample.
type RecordPositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// Assign attaches a courier to an order.
func (h *CourierHandler) Assign(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid order id")
	}

	var req AssignCourierRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	courierID := actor.ID
	if req.CourierID != "" {
		courierID, err = uuid.Parse(req.CourierID)
		if err != nil {
			return response.BadRequest(c, "invalid courier id")
		}
	}

	assignment, err := h.courierUC.Assign(c.Request().Context(), actor, usecase.AssignCourierInput{
		OrderID:   orderID,
		CourierID: courierID,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, newAssignmentResponse(assignment))
}

// GetAssignment returns the assignment attached to an order.
func (h *CourierHandler) GetAssignment(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid order id")
	}

	assignment, err := h.courierUC.GetAssignment(c.Request().Context(), actor, orderID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newAssignmentResponse(assignment))
}

// RecordPosition appends a position sample to the acting courier's trail.
func (h *CourierHandler) RecordPosition(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	var req RecordPositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid position input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	position, err := h.courierUC.RecordPosition(c.Request().Context(), actor, usecase.RecordPositionInput{
		Point: orb.Point{req.Longitude, req.Latitude},
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, newPositionResponse(position))
}

// ListPositions returns a courier's position trail, newest first.
func (h *CourierHandler) ListPositions(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	courierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid courier id")
	}

	positions, err := h.courierUC.ListPositions(c.Request().Context(), actor, usecase.ListPositionsInput{
		CourierID: courierID,
		Options:   parseListOptions(c),
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newPositionListResponse(positions))
}
