package customer

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.Context()))
	})

	r.Get("/analytics", authMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(svc.Analytics(c.Context()))
	})

	r.Get("/:id", authMiddleware, func(c *fiber.Ctx) error {
		profile, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "customer not found")
		}
		return c.JSON(profile)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var updates map[string]any
		if err := c.BodyParser(&updates); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		updated, err := svc.Update(c.Context(), c.Params("id"), updates)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "customer not found")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(updated)
	})
}
