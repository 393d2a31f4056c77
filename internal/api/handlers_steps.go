package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/solenelark/glowlog/internal/models"
	"github.com/solenelark/glowlog/internal/services"
)

func (handler *Handler) ListSteps(c *fiber.Ctx) error {
	user := currentUser(c)

	steps, err := handler.repositories.Steps.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load steps")
	}
	return c.JSON(fiber.Map{"steps": steps})
}

func (handler *Handler) CreateStep(c *fiber.Ctx) error {
	user := currentUser(c)

	var input stepInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	step := models.RoutineStep{
		UserID:    user.ID,
		Name:      input.Name,
		Category:  input.Category,
		TimeOfDay: input.TimeOfDay,
		Schedule:  input.Schedule,
		ProductID: input.ProductID,
	}
	if err := handler.stepService.Create(&step); err != nil {
		return stepValidationError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(step)
}

func (handler *Handler) UpdateStep(c *fiber.Ctx) error {
	user := currentUser(c)

	stepID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid step id")
	}

	var input stepInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	update := models.RoutineStep{
		Name:      input.Name,
		Category:  input.Category,
		TimeOfDay: input.TimeOfDay,
		Schedule:  input.Schedule,
		ProductID: input.ProductID,
	}
	step, err := handler.stepService.Update(user.ID, stepID, update)
	if err != nil {
		if errors.Is(err, services.ErrStepNotFound) {
			return apiError(c, fiber.StatusNotFound, "step not found")
		}
		return stepValidationError(c, err)
	}

	return c.JSON(step)
}

func (handler *Handler) DeleteStep(c *fiber.Ctx) error {
	user := currentUser(c)

	stepID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid step id")
	}

	if err := handler.stepService.Delete(user.ID, stepID); err != nil {
		if errors.Is(err, services.ErrStepNotFound) {
			return apiError(c, fiber.StatusNotFound, "step not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete step")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ReorderSteps(c *fiber.Ctx) error {
	user := currentUser(c)

	var input reorderInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !models.IsStepWindow(input.Window) {
		return apiError(c, fiber.StatusBadRequest, "invalid window")
	}

	if err := handler.routineService.Reorder(user.ID, input.Window, input.Order); err != nil {
		if errors.Is(err, services.ErrReorderStepSet) {
			return apiError(c, fiber.StatusBadRequest, "order must list every step in the window exactly once")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to reorder steps")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func stepValidationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrStepNameRequired):
		return apiError(c, fiber.StatusBadRequest, "step name required")
	case errors.Is(err, services.ErrStepWindow):
		return apiError(c, fiber.StatusBadRequest, "time_of_day must be morning or evening")
	}
	return apiError(c, fiber.StatusInternalServerError, "failed to save step")
}
