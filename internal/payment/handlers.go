package payment

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, registry *Registry) {
	r.Get("/gateways", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"gateways": registry.Available(),
			"default":  DefaultGateway,
		})
	})
}
