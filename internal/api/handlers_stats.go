package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) StatsOverview(c *fiber.Ctx) error {
	user := currentUser(c)

	windowDays := 0
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			return apiError(c, fiber.StatusBadRequest, "days must be between 1 and 365")
		}
		windowDays = parsed
	}

	overview, err := handler.statsService.BuildOverview(user.ID, time.Now(), windowDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build stats")
	}

	products, err := handler.productService.ListResolved(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load products")
	}
	conflicts, err := handler.productService.ShelfConflicts(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to detect conflicts")
	}
	overview.ApplyShelfSummary(products, conflicts)

	return c.JSON(overview)
}
