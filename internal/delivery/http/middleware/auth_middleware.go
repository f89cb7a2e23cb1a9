package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"quickbite/internal/delivery/http/response"
	"quickbite/internal/domain/authz"
	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
)

const (
	keyCurrentUser = "currentUser"
	keyActor       = "actor"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer access token and loads the account behind
// it. Authorization decisions use the stored account, not the token claims,
// so role changes and deactivation take effect immediately.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "invalid token format, must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString, service.TokenTypeAccess)
		if err != nil {
			return err
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.Unauthorized(c, "token references an unknown account")
			}

			return err
		}

		if !user.IsActive {
			return response.Forbidden(c, "account is deactivated")
		}
		if !user.IsVerified {
			return response.Forbidden(c, "email address is not confirmed")
		}

		c.Set(keyCurrentUser, user)
		c.Set(keyActor, authz.Actor{
			ID:          user.ID,
			Role:        user.Role,
			IsSuperuser: user.IsSuperuser,
		})

		return next(c)
	}
}

// GetCurrentUser returns the account loaded by Authenticate.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyCurrentUser).(*entity.User)

	return user, ok
}

// GetActor returns the authorization actor set by Authenticate.
func GetActor(c echo.Context) (authz.Actor, bool) {
	actor, ok := c.Get(keyActor).(authz.Actor)

	return actor, ok
}
