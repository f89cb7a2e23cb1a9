// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"quickbite/config"
	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access and confirmation tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	confirmTTL    time.Duration // Time-to-live for email confirmation tokens.
}

// jwtClaims is the wire shape of the token payload.
type jwtClaims struct {
	Role        string `json:"role,omitempty"`
	IsSuperuser bool   `json:"is_superuser,omitempty"`
	Type        string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
		confirmTTL:    cfg.Auth.ConfirmTokenTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(user, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(user, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateConfirmationToken creates a short-lived token for email verification.
func (s *jwtService) GenerateConfirmationToken(user *entity.User) (string, error) {
	return s.generateToken(user, s.confirmTTL, s.accessSecret, service.TokenTypeConfirmation)
}

// ValidateToken parses the token, verifies its signature and expiry, and
// enforces that it carries the expected type.
func (s *jwtService) ValidateToken(tokenString string, expected service.TokenType) (*service.Claims, error) {
	secret := s.accessSecret
	if expected == service.TokenTypeRefresh {
		secret = s.refreshSecret
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}
	if claims.Type != string(expected) {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected token type " + claims.Type)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("malformed subject claim")
	}

	return &service.Claims{
		UserID:           userID,
		Role:             entity.Role(claims.Role),
		IsSuperuser:      claims.IsSuperuser,
		Type:             service.TokenType(claims.Type),
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(user *entity.User, ttl time.Duration, secret string, tokenType service.TokenType) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		Type: string(tokenType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	// Only the access token carries role claims for stateless authorization.
	if tokenType == service.TokenTypeAccess {
		claims.Role = string(user.Role)
		claims.IsSuperuser = user.IsSuperuser
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}
