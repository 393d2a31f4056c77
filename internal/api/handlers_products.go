package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/solenelark/glowlog/internal/models"
	"github.com/solenelark/glowlog/internal/services"
)

func (handler *Handler) ListProducts(c *fiber.Ctx) error {
	user := currentUser(c)

	products, err := handler.productService.ListResolved(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load products")
	}
	return c.JSON(fiber.Map{"products": products})
}

func (handler *Handler) CreateProduct(c *fiber.Ctx) error {
	user := currentUser(c)

	product, err := handler.parseProductInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	product.UserID = user.ID

	if err := handler.repositories.Products.Create(&product); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save product")
	}

	resolved, err := handler.productService.FindResolved(user.ID, product.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load product")
	}
	return c.Status(fiber.StatusCreated).JSON(resolved)
}

func (handler *Handler) UpdateProduct(c *fiber.Ctx) error {
	user := currentUser(c)

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid product id")
	}

	existing, found, err := handler.repositories.Products.FindByID(user.ID, productID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load product")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "product not found")
	}

	update, err := handler.parseProductInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	existing.Name = update.Name
	existing.Brand = update.Brand
	existing.Category = update.Category
	existing.ActiveIngredients = update.ActiveIngredients
	existing.FullIngredients = update.FullIngredients
	existing.TimeOfDay = update.TimeOfDay
	existing.PAOMonths = update.PAOMonths
	existing.CatalogID = update.CatalogID
	existing.StartedAt = update.StartedAt

	if err := handler.repositories.Products.Save(&existing); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save product")
	}

	resolved, err := handler.productService.FindResolved(user.ID, existing.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load product")
	}
	return c.JSON(resolved)
}

func (handler *Handler) DeleteProduct(c *fiber.Ctx) error {
	user := currentUser(c)

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid product id")
	}

	_, found, err := handler.repositories.Products.FindByID(user.ID, productID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load product")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "product not found")
	}

	if err := handler.repositories.Products.Delete(user.ID, productID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete product")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) StopProduct(c *fiber.Ctx) error {
	return handler.changeProductLifecycle(c, handler.productService.Stop)
}

func (handler *Handler) RestartProduct(c *fiber.Ctx) error {
	return handler.changeProductLifecycle(c, handler.productService.Restart)
}

// ShelfConflicts reports every rule hit between active products on the shelf.
func (handler *Handler) ShelfConflicts(c *fiber.Ctx) error {
	user := currentUser(c)

	conflicts, err := handler.productService.ShelfConflicts(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to detect conflicts")
	}
	return c.JSON(fiber.Map{"conflicts": conflicts})
}

// ProductConflicts previews conflicts for one product against the rest of the
// shelf, including a stopped product the user is considering restarting.
func (handler *Handler) ProductConflicts(c *fiber.Ctx) error {
	user := currentUser(c)

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid product id")
	}

	conflicts, err := handler.productService.ProductConflicts(user.ID, productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return apiError(c, fiber.StatusNotFound, "product not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to detect conflicts")
	}
	return c.JSON(fiber.Map{"conflicts": conflicts})
}

func (handler *Handler) changeProductLifecycle(c *fiber.Ctx, change func(uint, uint, time.Time) (models.Product, error)) error {
	user := currentUser(c)

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid product id")
	}

	product, err := change(user.ID, productID, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return apiError(c, fiber.StatusNotFound, "product not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update product")
	}
	return c.JSON(product)
}

func (handler *Handler) parseProductInput(c *fiber.Ctx) (models.Product, error) {
	var input productInput
	if err := c.BodyParser(&input); err != nil {
		return models.Product{}, errors.New("invalid input")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Product{}, errors.New("product name required")
	}

	window := input.TimeOfDay
	if window == "" {
		window = models.TimeBoth
	}
	if !models.IsProductWindow(window) {
		return models.Product{}, errors.New("time_of_day must be morning, evening or both")
	}

	startedAt, err := handler.parseOptionalDay(input.StartedAt)
	if err != nil {
		return models.Product{}, errors.New("invalid started_at date")
	}

	if input.CatalogID != nil {
		_, found, err := handler.repositories.Catalog.FindByID(*input.CatalogID)
		if err != nil {
			return models.Product{}, errors.New("invalid catalog entry")
		}
		if !found {
			return models.Product{}, errors.New("catalog entry not found")
		}
	}

	return models.Product{
		Name:              name,
		Brand:             strings.TrimSpace(input.Brand),
		Category:          models.NormalizeCategory(input.Category),
		ActiveIngredients: strings.TrimSpace(input.ActiveIngredients),
		FullIngredients:   strings.TrimSpace(input.FullIngredients),
		TimeOfDay:         window,
		PAOMonths:         input.PAOMonths,
		CatalogID:         input.CatalogID,
		StartedAt:         startedAt,
	}, nil
}
