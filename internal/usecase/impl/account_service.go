// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"orderguard/config"
	deliverycontext "orderguard/internal/delivery/context"
	"orderguard/internal/domain/entity"
	domainerrors "orderguard/internal/domain/errors"
	"orderguard/internal/domain/repository"
	"orderguard/internal/domain/service"
	"orderguard/internal/errors"
	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultMaxLoginAttempts = 5
	defaultLockoutDuration  = 2 * time.Hour
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	auth             *PurchaseAuthorizer
	maxLoginAttempts int
	lockoutDuration  time.Duration
	logger           *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Authorizer       *PurchaseAuthorizer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maxAttempts := defaultMaxLoginAttempts
	lockout := defaultLockoutDuration
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.MaxLoginAttempts > 0 {
			maxAttempts = params.Config.Auth.MaxLoginAttempts
		}
		if params.Config.Auth.LockoutDuration > 0 {
			lockout = params.Config.Auth.LockoutDuration
		}
	}

	return &accountService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		auth:             params.Authorizer,
		maxLoginAttempts: maxAttempts,
		lockoutDuration:  lockout,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a customer account awaiting email verification.
func (srv *accountService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := entity.NewCustomer(strings.TrimSpace(input.Name), email, hashedPassword, srv.auth.Now())
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserEmailTaken) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials and issues a token pair. Failed attempts are
// counted and lock the account once the configured maximum is reached.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load login user")
	}

	now := srv.auth.Now()
	if err := srv.checkLoginAllowed(user, now); err != nil {
		srv.log(ctx).Warn("Login refused", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		if err := srv.registerFailedLogin(ctx, user.ID, now); err != nil {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if user.LoginAttempts > 0 || user.LockoutUntil != nil {
		user, err = srv.resetLoginAttempts(ctx, user.ID, now)
		if err != nil {
			return nil, err
		}
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: now,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// checkLoginAllowed refuses locked, inactive and suspended accounts. Pending
// accounts may log in so they can finish verification.
func (srv *accountService) checkLoginAllowed(user *entity.User, now time.Time) error {
	if user.IsLocked(now) {
		return domainerrors.NewAccountDenial(domainerrors.ErrAccountLocked,
			"no active lockout", "locked until "+user.LockoutUntil.UTC().Format(time.RFC3339))
	}

	switch user.Status {
	case entity.AccountStatusInactive, entity.AccountStatusSuspended:
		return domainerrors.NewAccountDenial(domainerrors.ErrAccountInactive,
			"status "+string(entity.AccountStatusActive), "status "+string(user.Status))
	default:
		return nil
	}
}

func (srv *accountService) registerFailedLogin(ctx context.Context, userID uuid.UUID, now time.Time) error {
	var locked bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to lock user")
		}
		locked = user.RegisterFailedLogin(now, srv.maxLoginAttempts, srv.lockoutDuration)

		return errors.Wrap(userRepo.Update(ctx, user), "failed to record login attempt")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record failed login", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute login attempt transaction")
	}

	if locked {
		srv.log(ctx).Warn("Account locked after repeated login failures",
			slog.Any("userID", userID),
			slog.Duration("lockout", srv.lockoutDuration),
		)
	}

	return nil
}

// resetLoginAttempts clears the failure counter on the locked row so that
// writes committed while the password was being checked are preserved. The
// row is re-checked because the account may have been suspended meanwhile.
func (srv *accountService) resetLoginAttempts(ctx context.Context, userID uuid.UUID, now time.Time) (*entity.User, error) {
	var current *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to lock user")
		}
		if err := srv.checkLoginAllowed(user, now); err != nil {
			return err
		}
		user.ResetLoginAttempts(now)
		current = user

		return errors.Wrap(userRepo.Update(ctx, user), "failed to reset login attempts")
	})
	if err != nil {
		srv.log(ctx).Warn("Login attempt reset failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	return current, nil
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout invalidates a session by deleting its refresh token.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// VerifyEmail marks the user's email verified and activates a pending account.
func (srv *accountService) VerifyEmail(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.NewResourceNotFound("user", userID.String())
			}

			return errors.Wrap(err, "failed to load user")
		}

		user.EmailVerified = true
		if user.Status == entity.AccountStatusPendingVerification {
			user.Status = entity.AccountStatusActive
		}
		user.UpdatedAt = srv.auth.Now()

		return errors.Wrap(userRepo.Update(ctx, user), "failed to save user")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify email")
	}
	srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID), slog.String("status", string(user.Status)))

	return user, nil
}

// SetAccountStatus changes another user's account status. Only roles holding
// system_management may do this.
func (srv *accountService) SetAccountStatus(
	ctx context.Context, actorID uuid.UUID, input *usecase.SetAccountStatusInput,
) (*entity.User, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown account status " + string(input.Status))
	}

	actor, err := srv.auth.Actor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	check := Check{
		Action:     entity.ActionSpecial,
		Resources:  []entity.Resource{entity.ResourceSystemManagement},
		ResourceID: input.UserID.String(),
	}
	if _, err := srv.auth.Authorize(ctx, actor, check); err != nil {
		return nil, err
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		user, err = userRepo.FindByIDForUpdate(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.NewResourceNotFound("user", input.UserID.String())
			}

			return errors.Wrap(err, "failed to load user")
		}

		user.Status = input.Status
		user.UpdatedAt = srv.auth.Now()

		return errors.Wrap(userRepo.Update(ctx, user), "failed to save user")
	})
	if err := srv.auth.Finish(ctx, actor, check, "", err); err != nil {
		return nil, errors.Wrap(err, "failed to set account status")
	}
	srv.log(ctx).Info("Account status changed",
		slog.Any("userID", user.ID),
		slog.String("status", string(user.Status)),
		slog.Any("actorID", actor.ID),
	)

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
