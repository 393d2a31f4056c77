package services

import (
	"errors"
	"time"

	"github.com/solenelark/glowlog/internal/models"
)

var (
	ErrStepNotFound   = errors.New("routine step not found")
	ErrReorderStepSet = errors.New("reorder list must name exactly the steps in the window")
)

type RoutineStepReader interface {
	ListByUser(userID uint) ([]models.RoutineStep, error)
	ListByUserWindow(userID uint, window models.TimeOfDay) ([]models.RoutineStep, error)
	FindByID(userID uint, stepID uint) (models.RoutineStep, bool, error)
}

type RoutineStepWriter interface {
	SavePosition(stepID uint, position int) error
}

type CompletionStore interface {
	ListByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.CompletionRecord, error)
	FindByStepAndDay(stepID uint, dayStart time.Time, dayEnd time.Time) (models.CompletionRecord, bool, error)
	Create(record *models.CompletionRecord) error
	Save(record *models.CompletionRecord) error
	Delete(recordID uint) error
}

type RoutineService struct {
	steps       RoutineStepReader
	stepWriter  RoutineStepWriter
	completions CompletionStore
	location    *time.Location
}

func NewRoutineService(steps RoutineStepReader, stepWriter RoutineStepWriter, completions CompletionStore, location *time.Location) *RoutineService {
	if location == nil {
		location = time.UTC
	}
	return &RoutineService{steps: steps, stepWriter: stepWriter, completions: completions, location: location}
}

// StepsForDate produces the today view: active steps in the window joined with
// that date's completion records, plus the routine progress summary.
func (service *RoutineService) StepsForDate(userID uint, date time.Time, window models.TimeOfDay) ([]TodayStep, RoutineProgress, error) {
	steps, err := service.steps.ListByUser(userID)
	if err != nil {
		return nil, RoutineProgress{}, err
	}

	dayStart, dayEnd := DayRange(date, service.location)
	completions, err := service.completions.ListByUserAndDay(userID, dayStart, dayEnd)
	if err != nil {
		return nil, RoutineProgress{}, err
	}

	todaySteps := BuildTodaySteps(steps, completions, dayStart, window)
	return todaySteps, BuildRoutineProgress(todaySteps), nil
}

// ToggleCompletion flips a step's completed state for the date. A pending or
// skipped step becomes completed; a completed step returns to pending by
// deleting its record, so two toggles restore the original state.
func (service *RoutineService) ToggleCompletion(userID uint, stepID uint, date time.Time, productUsed string) error {
	step, found, err := service.steps.FindByID(userID, stepID)
	if err != nil {
		return err
	}
	if !found {
		return ErrStepNotFound
	}

	dayStart, dayEnd := DayRange(date, service.location)
	record, exists, err := service.completions.FindByStepAndDay(step.ID, dayStart, dayEnd)
	if err != nil {
		return err
	}

	if exists && record.Status == models.StatusCompleted {
		return service.completions.Delete(record.ID)
	}

	if exists {
		record.Status = models.StatusCompleted
		record.ProductUsed = productUsed
		return service.completions.Save(&record)
	}

	fresh := models.CompletionRecord{
		UserID:      userID,
		StepID:      step.ID,
		Date:        dayStart,
		Status:      models.StatusCompleted,
		ProductUsed: productUsed,
	}
	return service.completions.Create(&fresh)
}

// Skip marks the step skipped for the date, overwriting any prior record.
// Re-applying the same skip is a no-op so retrying callers stay safe.
func (service *RoutineService) Skip(userID uint, stepID uint, date time.Time) error {
	step, found, err := service.steps.FindByID(userID, stepID)
	if err != nil {
		return err
	}
	if !found {
		return ErrStepNotFound
	}

	dayStart, dayEnd := DayRange(date, service.location)
	record, exists, err := service.completions.FindByStepAndDay(step.ID, dayStart, dayEnd)
	if err != nil {
		return err
	}

	if exists {
		if record.Status == models.StatusSkipped {
			return nil
		}
		record.Status = models.StatusSkipped
		return service.completions.Save(&record)
	}

	fresh := models.CompletionRecord{
		UserID: userID,
		StepID: step.ID,
		Date:   dayStart,
		Status: models.StatusSkipped,
	}
	return service.completions.Create(&fresh)
}

// FinishRoutine bulk-skips every active, unactioned step in the window,
// leaving completed and already-skipped steps untouched.
func (service *RoutineService) FinishRoutine(userID uint, window models.TimeOfDay, date time.Time) (int, error) {
	todaySteps, _, err := service.StepsForDate(userID, date, window)
	if err != nil {
		return 0, err
	}

	skipped := 0
	for _, todayStep := range todaySteps {
		if todayStep.Actioned() {
			continue
		}
		if err := service.Skip(userID, todayStep.Step.ID, date); err != nil {
			return skipped, err
		}
		skipped++
	}
	return skipped, nil
}

// Reorder renumbers exactly the steps of one time-of-day window to a dense
// 0..n-1 sequence following orderedIDs. Steps in the other window keep their
// positions.
func (service *RoutineService) Reorder(userID uint, window models.TimeOfDay, orderedIDs []uint) error {
	steps, err := service.steps.ListByUserWindow(userID, window)
	if err != nil {
		return err
	}

	if len(orderedIDs) != len(steps) {
		return ErrReorderStepSet
	}
	stepByID := make(map[uint]models.RoutineStep, len(steps))
	for _, step := range steps {
		stepByID[step.ID] = step
	}

	for position, stepID := range orderedIDs {
		step, ok := stepByID[stepID]
		if !ok {
			return ErrReorderStepSet
		}
		delete(stepByID, stepID)
		if step.Position == position {
			continue
		}
		if err := service.stepWriter.SavePosition(step.ID, position); err != nil {
			return err
		}
	}
	return nil
}
