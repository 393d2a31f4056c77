package services

import (
	"errors"
	"strings"

	"github.com/solenelark/glowlog/internal/models"
)

var (
	ErrStepNameRequired = errors.New("step name required")
	ErrStepWindow       = errors.New("step time_of_day must be morning or evening")
)

type StepStore interface {
	RoutineStepReader
	Create(step *models.RoutineStep) error
	Save(step *models.RoutineStep) error
	DeleteWithCompletions(userID uint, stepID uint) error
	CountByUserWindow(userID uint, window models.TimeOfDay) (int, error)
}

type StepService struct {
	steps StepStore
}

func NewStepService(steps StepStore) *StepService {
	return &StepService{steps: steps}
}

// Create validates the step and appends it at the end of its window.
func (service *StepService) Create(step *models.RoutineStep) error {
	if err := validateStep(step); err != nil {
		return err
	}

	count, err := service.steps.CountByUserWindow(step.UserID, step.TimeOfDay)
	if err != nil {
		return err
	}
	step.Position = count
	return service.steps.Create(step)
}

func (service *StepService) Update(userID uint, stepID uint, update models.RoutineStep) (models.RoutineStep, error) {
	step, found, err := service.steps.FindByID(userID, stepID)
	if err != nil {
		return models.RoutineStep{}, err
	}
	if !found {
		return models.RoutineStep{}, ErrStepNotFound
	}

	previousWindow := step.TimeOfDay

	step.Name = update.Name
	step.Category = update.Category
	step.TimeOfDay = update.TimeOfDay
	step.Schedule = update.Schedule
	step.ProductID = update.ProductID
	if err := validateStep(&step); err != nil {
		return models.RoutineStep{}, err
	}

	// A step moving between windows keeps positions unambiguous by joining
	// the new window at the end, same as a freshly created step.
	if step.TimeOfDay != previousWindow {
		count, err := service.steps.CountByUserWindow(userID, step.TimeOfDay)
		if err != nil {
			return models.RoutineStep{}, err
		}
		step.Position = count
	}

	if err := service.steps.Save(&step); err != nil {
		return models.RoutineStep{}, err
	}
	return step, nil
}

// Delete removes the step together with its completion records.
func (service *StepService) Delete(userID uint, stepID uint) error {
	_, found, err := service.steps.FindByID(userID, stepID)
	if err != nil {
		return err
	}
	if !found {
		return ErrStepNotFound
	}
	return service.steps.DeleteWithCompletions(userID, stepID)
}

func validateStep(step *models.RoutineStep) error {
	step.Name = strings.TrimSpace(step.Name)
	if step.Name == "" {
		return ErrStepNameRequired
	}
	if !models.IsStepWindow(step.TimeOfDay) {
		return ErrStepWindow
	}
	step.Category = models.NormalizeCategory(step.Category)
	return nil
}
