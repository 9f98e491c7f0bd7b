package trip

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		filter := Filter{
			Featured: c.QueryBool("featured"),
			Category: c.Query("category"),
		}
		return c.JSON(svc.List(c.Context(), filter))
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		trip, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		return c.JSON(trip)
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req models.Trip
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		trip, err := svc.Create(c.Context(), req)
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(trip)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var updates map[string]any
		if err := c.BodyParser(&updates); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		trip, err := svc.Update(c.Context(), c.Params("id"), updates)
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(trip)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		removed, err := svc.Delete(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !removed {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func writeStoreError(c *fiber.Ctx, err error) error {
	var verr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "trip not found")
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  verr.Error(),
			"errors": verr.Violations,
		})
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
