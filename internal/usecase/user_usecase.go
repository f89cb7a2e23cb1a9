// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"quickbite/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new account.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
	Phone    string
	Address  string
	Role     entity.Role
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the optional profile fields of a PATCH.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	Username *string
	Phone    *string
	Address  *string
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns a fresh token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account and session business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and enqueues a confirmation email.
	// The very first account ever created becomes a verified superuser.
	Register(ctx context.Context, input RegisterUserInput) (*RegisterOutput, error)

	// Login authenticates by email and password and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// ConfirmEmail marks the account behind the confirmation token as verified.
	// Confirming an already verified account succeeds without change; the
	// returned flag reports that case.
	ConfirmEmail(ctx context.Context, token string) (alreadyConfirmed bool, err error)

	// RefreshTokens exchanges a valid refresh token for a new token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout acknowledges a logout. Tokens are stateless, so this only
	// validates the presented access token.
	Logout(ctx context.Context, accessToken string) error

	// GetProfile returns the account of the given user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies the non-nil fields of input to the user's account.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)

	// ChangePassword verifies the current password and stores a new hash.
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
}
