package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/solenelark/glowlog/internal/services"
)

const (
	recoveryAttemptLimit  = 5
	recoveryAttemptWindow = 15 * time.Minute
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.ConfirmPassword != "" && input.Password != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}

	user, recoveryCode, err := handler.authService.Register(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			return apiError(c, fiber.StatusBadRequest, "invalid email")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "weak password")
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already registered")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to register")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":            true,
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

// RecoverPassword trades a one-time recovery code for a fresh password and a
// replacement code. Attempts are throttled per client address since the code
// is the only proof of ownership.
func (handler *Handler) RecoverPassword(c *fiber.Ctx) error {
	var input recoverPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.RecoveryCode) == "" {
		return apiError(c, fiber.StatusBadRequest, "recovery code required")
	}
	if input.ConfirmPassword != "" && input.NewPassword != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}

	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.recoveryLimiter.tooManyRecent(limiterKey, now, recoveryAttemptLimit, recoveryAttemptWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many attempts")
	}

	user, newCode, err := handler.authService.RecoverPassword(input.RecoveryCode, input.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "weak password")
		case errors.Is(err, services.ErrRecoveryCodeNotFound):
			handler.recoveryLimiter.addFailure(limiterKey, now, recoveryAttemptWindow)
			return apiError(c, fiber.StatusUnauthorized, "invalid recovery code")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to recover account")
	}
	handler.recoveryLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"ok":            true,
		"recovery_code": newCode,
	})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user := currentUser(c)

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.ConfirmPassword != "" && input.NewPassword != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}

	err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "weak password")
		case errors.Is(err, services.ErrInvalidCredentials):
			return apiError(c, fiber.StatusUnauthorized, "invalid current password")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to change password")
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) RegenerateRecoveryCode(c *fiber.Ctx) error {
	user := currentUser(c)

	code, err := handler.authService.RegenerateRecoveryCode(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to regenerate recovery code")
	}

	return c.JSON(fiber.Map{
		"ok":            true,
		"recovery_code": code,
	})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.JSON(fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}
