package testimonial

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.Context(), c.QueryBool("featured")))
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req models.Testimonial
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		testimonial, err := svc.Create(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(testimonial)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var updates map[string]any
		if err := c.BodyParser(&updates); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		testimonial, err := svc.Update(c.Context(), c.Params("id"), updates)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "testimonial not found")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(testimonial)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		removed, err := svc.Delete(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !removed {
			return fiber.NewError(fiber.StatusNotFound, "testimonial not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
