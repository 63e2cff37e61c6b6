// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"orderguard/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new customer.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput defines the data for refreshing an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data for logging out.
type LogoutInput struct {
	RefreshToken string
}

// SetAccountStatusInput is an administrative change of a user's account status.
type SetAccountStatusInput struct {
	UserID uuid.UUID
	Status entity.AccountStatus
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

// RefreshTokenOutput contains the new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AccountUsecase defines the interface for account-related business operations.
type AccountUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	VerifyEmail(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	SetAccountStatus(ctx context.Context, actorID uuid.UUID, input *SetAccountStatusInput) (*entity.User, error)
}
