package handler

import (
	"log/slog"
	"net/http"
	"time"

	"orderguard/internal/delivery/http/response"
	"orderguard/internal/domain/entity"
	"orderguard/internal/errors"
	"orderguard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenRequest carries a refresh token.
type TokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// VerifyEmailRequest is the body of POST /auth/verify-email.
type VerifyEmailRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// SetStatusRequest is the body of PUT /api/v1/admin/users/:userId/status.
type SetStatusRequest struct {
	Status entity.AccountStatus `json:"status" validate:"required,oneof=active inactive suspended pending_verification"`
}

// UserResponse is a user without credentials or lockout bookkeeping.
type UserResponse struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Role            entity.Role            `json:"role"`
	Status          entity.AccountStatus   `json:"status"`
	EmailVerified   bool                   `json:"emailVerified"`
	PurchaseHistory entity.PurchaseHistory `json:"purchaseHistory"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// LoginResponse is the token pair issued at login.
type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            user.Role,
		Status:          user.Status,
		EmailVerified:   user.EmailVerified,
		PurchaseHistory: user.PurchaseHistory,
		CreatedAt:       user.CreatedAt,
	}
}

// Register handles the user registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(output.User))
}

// Login handles the user login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         newUserResponse(output.User),
	})
}

// VerifyEmail marks a user's email as verified.
func (h *AccountHandler) VerifyEmail(c echo.Context) error {
	var req VerifyEmailRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.VerifyEmail(c.Request().Context(), req.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// RefreshToken handles the token refresh request.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var req TokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"accessToken": output.AccessToken})
}

// Logout ends the session of a refresh token.
func (h *AccountHandler) Logout(c echo.Context) error {
	var req TokenRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// SetAccountStatus changes another user's account status.
func (h *AccountHandler) SetAccountStatus(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	var req SetStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.SetAccountStatus(c.Request().Context(), actor, &usecase.SetAccountStatusInput{
		UserID: userID,
		Status: req.Status,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
