// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"quickbite/config"
	deliverycontext "quickbite/internal/delivery/context"
	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/domain/service"
	"quickbite/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailQueue    service.MailQueue
	frontendURL  string
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	MailQueue    service.MailQueue
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailQueue:    params.MailQueue,
		frontendURL:  params.Config.FrontendURL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account inside a transaction so the first-account
// check and the insert observe the same state.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Any("role", input.Role))

	role := input.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + string(role))
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		userRepo := txRepo.NewUserRepository()

		total, err := userRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count users during registration")
		}

		newUser := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			Phone:        input.Phone,
			Address:      input.Address,
			PasswordHash: hashedPassword,
			Role:         role,
			IsActive:     true,
		}

		// The very first account bootstraps the system and skips email
		// confirmation.
		if total == 0 {
			newUser.IsSuperuser = true
			newUser.IsVerified = true
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.sendConfirmationEmail(ctx, registeredUser)

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID), slog.Bool("superuser", registeredUser.IsSuperuser))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// sendConfirmationEmail enqueues the verification mail. Enqueue failures are
// logged and swallowed so registration itself never fails on the mail path.
func (srv *userService) sendConfirmationEmail(ctx context.Context, user *entity.User) {
	if user.IsVerified {
		return
	}

	token, err := srv.tokenService.GenerateConfirmationToken(user)
	if err != nil {
		srv.log(ctx).Error("Failed to generate confirmation token", slog.Any("userID", user.ID), slog.Any("error", err))

		return
	}

	job := &service.EmailJob{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        user.Email,
		Subject:   "Confirm your email",
		Body: fmt.Sprintf(
			"Hi %s,\n\nPlease confirm your email address by opening the link below:\n\n%s/confirm-email?token=%s\n",
			user.Username, srv.frontendURL, token,
		),
	}

	if err := srv.mailQueue.Enqueue(ctx, job); err != nil {
		srv.log(ctx).Warn("Failed to enqueue confirmation email", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}

// Login authenticates by email and password and issues a token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}
	if !user.IsVerified {
		return nil, domainerrors.ErrAccountNotVerified
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// ConfirmEmail marks the account behind the token as verified. Repeated
// confirmations succeed without change.
func (srv *userService) ConfirmEmail(ctx context.Context, token string) (bool, error) {
	claims, err := srv.tokenService.ValidateToken(token, service.TokenTypeConfirmation)
	if err != nil {
		return false, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, domainerrors.ErrTokenInvalid.WrapMessage("confirmation token references unknown user")
		}

		return false, errors.Wrap(err, "failed to load user during email confirmation")
	}

	if user.IsVerified {
		srv.log(ctx).Debug("Email already confirmed", slog.Any("userID", user.ID))

		return true, nil
	}

	user.IsVerified = true
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return false, errors.Wrap(err, "failed to mark user verified")
	}

	srv.log(ctx).Info("Email confirmed", slog.Any("userID", user.ID))

	return false, nil
}

// Logout only validates the token. There is no revocation store; clients
// discard their tokens.
func (srv *userService) Logout(ctx context.Context, accessToken string) error {
	if _, err := srv.tokenService.ValidateToken(accessToken, service.TokenTypeAccess); err != nil {
		return err
	}

	srv.log(ctx).Debug("User logged out")

	return nil
}

// RefreshTokens exchanges a valid refresh token for a new pair. The account
// is re-read so deactivation takes effect at the next refresh.
func (srv *userService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("refresh token references unknown user")
		}

		return nil, errors.Wrap(err, "failed to load user during token refresh")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountInactive
	}

	newAccess, newRefresh, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during refresh")
	}

	return &usecase.RefreshOutput{AccessToken: newAccess, RefreshToken: newRefresh}, nil
}

// GetProfile returns the account of the given user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user profile")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input to the user's account.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for profile update")
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", user.ID))

	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrPasswordMismatch
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = newHash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store new password hash")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return nil
}
