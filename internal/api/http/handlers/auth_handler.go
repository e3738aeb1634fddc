package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/chat-identity/internal/api/dto"
	"github.com/spec-kit/chat-identity/internal/auth"
	"github.com/spec-kit/chat-identity/internal/service"
	apperrors "github.com/spec-kit/chat-identity/pkg/util"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Phone == "" || req.Password == "" {
		return apperrors.NewValidationError("phone and password required", nil)
	}

	session, err := h.auth.Register(c.UserContext(), req.Phone, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.Success(authResponse(session)))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Phone == "" || req.Password == "" {
		return apperrors.NewValidationError("phone and password required", nil)
	}

	session, err := h.auth.Login(c.UserContext(), req.Phone, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.SuccessMessage("login successful", authResponse(session)))
}

// Me handles GET /api/auth/me for authenticated callers.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Account == nil {
		return apperrors.NewUnauthorized("not authenticated")
	}

	account := principal.Account
	return c.JSON(dto.Success(dto.AccountResponse{
		UserID:    account.ID,
		Phone:     account.Phone,
		Nickname:  account.DisplayName,
		Avatar:    account.AvatarRef,
		Status:    string(account.Status),
		CreatedAt: account.CreatedAt,
	}))
}

func authResponse(session *service.Session) dto.AuthResponse {
	return dto.AuthResponse{
		UserID:      session.AccountID,
		AccessToken: session.AccessToken,
		ClientID:    session.ClientID,
		Nickname:    session.DisplayName,
		Avatar:      session.AvatarRef,
	}
}
