package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/solenelark/glowlog/internal/models"
	"github.com/solenelark/glowlog/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(value), nil
}

// parseDateQuery reads an optional ?date=YYYY-MM-DD query, defaulting to the
// server's current day.
func (handler *Handler) parseDateQuery(c *fiber.Ctx) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return services.DateAtLocation(time.Now(), handler.location), nil
	}
	return services.ParseDay(raw, handler.location)
}

func parseWindowQuery(c *fiber.Ctx) (models.TimeOfDay, error) {
	window := models.TimeOfDay(strings.TrimSpace(c.Query("window")))
	if window == "" {
		window = models.TimeMorning
	}
	if !models.IsStepWindow(window) {
		return "", fiber.ErrBadRequest
	}
	return window, nil
}
