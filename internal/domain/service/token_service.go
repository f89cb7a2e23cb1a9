package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"quickbite/internal/domain/entity"
)

// TokenType discriminates the purpose a token was minted for.
// Validation rejects tokens presented for a different purpose.
type TokenType string

const (
	TokenTypeAccess       TokenType = "access"
	TokenTypeRefresh      TokenType = "refresh"
	TokenTypeConfirmation TokenType = "confirmation"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID      uuid.UUID
	Role        entity.Role
	IsSuperuser bool
	Type        TokenType
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// GenerateConfirmationToken creates a short-lived token used to verify
	// the user's email address.
	GenerateConfirmationToken(user *entity.User) (string, error)

	// ValidateToken checks the validity of a token string and enforces that
	// it carries the expected type.
	ValidateToken(tokenString string, expected TokenType) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
