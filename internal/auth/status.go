package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/chat-identity/internal/domain"
)

// RequireActiveAccount rejects authenticated callers whose account is not in
// the ACTIVE state. Token validity itself is already settled upstream.
func RequireActiveAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Account == nil {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if principal.Account.Status != domain.AccountStatusActive {
			return fiber.NewError(http.StatusForbidden, "account is not active")
		}
		return c.Next()
	}
}
