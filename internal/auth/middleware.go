package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Middleware validates bearer tokens against the active session and
// stores the username in locals. A token signed for a session that has
// since logged out is rejected.
func Middleware(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerFromHeader(c.Get("Authorization"))
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		username, err := svc.ValidateToken(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		state := svc.State()
		if !state.IsAuthenticated || state.Username != username {
			return fiber.NewError(fiber.StatusUnauthorized, "session expired")
		}

		c.Locals("username", username)
		return c.Next()
	}
}

func bearerFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
