package auth

import (
	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/login", func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "username and password required")
		}

		token, ok := svc.Login(c.Context(), req.Username, req.Password)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return c.JSON(fiber.Map{"token": token, "session": svc.State()})
	})

	r.Post("/logout", Middleware(svc), func(c *fiber.Ctx) error {
		svc.Logout(c.Context())
		return c.JSON(fiber.Map{"loggedOut": true})
	})

	r.Get("/session", func(c *fiber.Ctx) error {
		return c.JSON(svc.State())
	})
}
