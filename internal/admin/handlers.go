package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SOHAMSUPEKAR24/travle1/internal/models"
	"github.com/SOHAMSUPEKAR24/travle1/internal/monitor"
	"github.com/SOHAMSUPEKAR24/travle1/internal/store"
)

// RegisterRoutes mounts the back-office surface. The caller is expected
// to wrap the group in the auth middleware.
func RegisterRoutes(r fiber.Router, ds *store.DataStore, mon *monitor.Monitor) {
	r.Get("/export", func(c *fiber.Ctx) error {
		payload, err := ds.Export(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="travelbaba-export.json"`)
		return c.SendString(payload)
	})

	r.Post("/import", func(c *fiber.Ctx) error {
		if !ds.Import(c.Context(), string(c.Body())) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid import payload")
		}
		return c.JSON(fiber.Map{"imported": true})
	})

	r.Get("/system/health", func(c *fiber.Ctx) error {
		return c.JSON(mon.CheckHealth(c.Context()))
	})

	r.Get("/system/errors", func(c *fiber.Ctx) error {
		return c.JSON(mon.Errors(monitor.Level(c.Query("level"))))
	})

	r.Delete("/system/errors", func(c *fiber.Ctx) error {
		mon.ClearErrors(c.Context())
		return c.JSON(fiber.Map{"cleared": true})
	})

	r.Get("/system/metrics", func(c *fiber.Ctx) error {
		return c.JSON(mon.PerfMetrics(c.Query("operation")))
	})

	r.Get("/settings", func(c *fiber.Ctx) error {
		return c.JSON(ds.Settings(c.Context()))
	})

	r.Put("/settings", func(c *fiber.Ctx) error {
		var req models.Settings
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		settings, err := ds.UpdateSettings(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(settings)
	})

	r.Get("/reports/bookings.xlsx", func(c *fiber.Ctx) error {
		buf, err := BuildBookingsReport(c.Context(), ds)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="bookings.xlsx"`)
		return c.Send(buf.Bytes())
	})
}
