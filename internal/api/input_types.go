package api

import "github.com/solenelark/glowlog/internal/models"

type credentialsInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	RememberMe      bool   `json:"remember_me"`
}

type recoverPasswordInput struct {
	RecoveryCode    string `json:"recovery_code"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type stepInput struct {
	Name      string              `json:"name"`
	Category  models.StepCategory `json:"category"`
	TimeOfDay models.TimeOfDay    `json:"time_of_day"`
	Schedule  models.Schedule     `json:"schedule"`
	ProductID *uint               `json:"product_id"`
}

type reorderInput struct {
	Window models.TimeOfDay `json:"window"`
	Order  []uint           `json:"order"`
}

type toggleInput struct {
	StepID      uint   `json:"step_id"`
	Date        string `json:"date"`
	ProductUsed string `json:"product_used"`
}

type finishInput struct {
	Window models.TimeOfDay `json:"window"`
	Date   string           `json:"date"`
}

type productInput struct {
	Name              string              `json:"name"`
	Brand             string              `json:"brand"`
	Category          models.StepCategory `json:"category"`
	ActiveIngredients string              `json:"active_ingredients"`
	FullIngredients   string              `json:"full_ingredients"`
	TimeOfDay         models.TimeOfDay    `json:"time_of_day"`
	PAOMonths         int                 `json:"pao_months"`
	CatalogID         *uint               `json:"catalog_id"`
	StartedAt         string              `json:"started_at"`
}
