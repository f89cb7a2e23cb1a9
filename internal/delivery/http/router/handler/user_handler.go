package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"quickbite/internal/delivery/http/middleware"
	"quickbite/internal/delivery/http/response"
	"quickbite/internal/usecase"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for profile handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest represents the request body for a profile update.
type UpdateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	Address  *string `json:"address"`
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// GetMe returns the authenticated account.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	return response.JSON(c, http.StatusOK, newUserResponse(user))
}

// UpdateMe applies profile changes to the authenticated account.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	updated, err := h.userUC.UpdateProfile(c.Request().Context(), user.ID, usecase.UpdateProfileInput{
		Username: req.Username,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newUserResponse(updated))
}

// ChangePassword rotates the authenticated account's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "authentication required")
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	err := h.userUC.ChangePassword(c.Request().Context(), user.ID, usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, MessageResponse{Message: "password changed"})
}
