package booking

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req Request
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := svc.Book(c.Context(), req)
		if err != nil {
			var verr *store.ValidationError
			var seats *NotEnoughSeatsError
			var declined *PaymentDeclinedError
			switch {
			case errors.Is(err, store.ErrNotFound):
				return fiber.NewError(fiber.StatusNotFound, "trip not found")
			case errors.As(err, &seats):
				return fiber.NewError(fiber.StatusConflict, seats.Error())
			case errors.As(err, &verr):
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
					"error":  verr.Error(),
					"errors": verr.Violations,
				})
			case errors.As(err, &declined):
				return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
					"error":   declined.Reason,
					"gateway": declined.Gateway,
				})
			default:
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(svc.store.Bookings(c.Context()))
	})

	r.Get("/:id", authMiddleware, func(c *fiber.Ctx) error {
		booking, err := svc.store.BookingByID(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "booking not found")
		}
		return c.JSON(booking)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var updates map[string]any
		if err := c.BodyParser(&updates); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		booking, err := svc.store.UpdateBooking(c.Context(), c.Params("id"), updates)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "booking not found")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(booking)
	})
}
