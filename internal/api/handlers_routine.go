package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/solenelark/glowlog/internal/models"
	"github.com/solenelark/glowlog/internal/services"
)

// RoutineToday returns the checklist for one window of one day: the steps
// whose schedule is active, each joined with its completion state.
func (handler *Handler) RoutineToday(c *fiber.Ctx) error {
	user := currentUser(c)

	date, err := handler.parseDateQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	window, err := parseWindowQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid window")
	}

	steps, progress, err := handler.routineService.StepsForDate(user.ID, date, window)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load routine")
	}

	return c.JSON(fiber.Map{
		"date":     services.FormatDay(date),
		"window":   window,
		"steps":    steps,
		"progress": progress,
	})
}

func (handler *Handler) ToggleStep(c *fiber.Ctx) error {
	user := currentUser(c)

	input, date, err := handler.parseToggleInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.routineService.ToggleCompletion(user.ID, input.StepID, date, input.ProductUsed); err != nil {
		if errors.Is(err, services.ErrStepNotFound) {
			return apiError(c, fiber.StatusNotFound, "step not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle step")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) SkipStep(c *fiber.Ctx) error {
	user := currentUser(c)

	input, date, err := handler.parseToggleInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.routineService.Skip(user.ID, input.StepID, date); err != nil {
		if errors.Is(err, services.ErrStepNotFound) {
			return apiError(c, fiber.StatusNotFound, "step not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to skip step")
	}

	return c.JSON(fiber.Map{"ok": true})
}

// FinishRoutine marks every remaining unactioned step in the window skipped.
func (handler *Handler) FinishRoutine(c *fiber.Ctx) error {
	user := currentUser(c)

	var input finishInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !models.IsStepWindow(input.Window) {
		return apiError(c, fiber.StatusBadRequest, "invalid window")
	}
	date, err := handler.parseOptionalDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	skipped, err := handler.routineService.FinishRoutine(user.ID, input.Window, date)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to finish routine")
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"skipped": skipped,
	})
}

func (handler *Handler) parseToggleInput(c *fiber.Ctx) (toggleInput, time.Time, error) {
	var input toggleInput
	if err := c.BodyParser(&input); err != nil {
		return toggleInput{}, time.Time{}, err
	}
	if input.StepID == 0 {
		return toggleInput{}, time.Time{}, errors.New("step_id required")
	}
	date, err := handler.parseOptionalDay(input.Date)
	if err != nil {
		return toggleInput{}, time.Time{}, err
	}
	return input, date, nil
}

func (handler *Handler) parseOptionalDay(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return services.DateAtLocation(time.Now(), handler.location), nil
	}
	return services.ParseDay(raw, handler.location)
}
