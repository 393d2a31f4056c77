package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) SearchCatalog(c *fiber.Ctx) error {
	entries, err := handler.repositories.Catalog.Search(c.Query("q"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to search catalog")
	}
	return c.JSON(fiber.Map{"entries": entries})
}
