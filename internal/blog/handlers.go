package blog

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		filter := Filter{
			Published: c.QueryBool("published"),
			Tag:       c.Query("tag"),
		}
		return c.JSON(svc.List(c.Context(), filter))
	})

	r.Get("/:slug", func(c *fiber.Ctx) error {
		post, err := svc.Read(c.Context(), c.Params("slug"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "blog not found")
		}
		return c.JSON(post)
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req models.BlogPost
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		post, err := svc.Create(c.Context(), req)
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var updates map[string]any
		if err := c.BodyParser(&updates); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		post, err := svc.Update(c.Context(), c.Params("id"), updates)
		if err != nil {
			return writeStoreError(c, err)
		}
		return c.JSON(post)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		removed, err := svc.Delete(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if !removed {
			return fiber.NewError(fiber.StatusNotFound, "blog not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func writeStoreError(c *fiber.Ctx, err error) error {
	var verr *store.ValidationError
	var dup *store.DuplicateSlugError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "blog not found")
	case errors.As(err, &dup):
		return fiber.NewError(fiber.StatusConflict, dup.Error())
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  verr.Error(),
			"errors": verr.Violations,
		})
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
