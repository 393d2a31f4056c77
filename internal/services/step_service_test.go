package services

import (
	"errors"
	"testing"

	"github.com/solenelark/glowlog/internal/models"
)

type fakeStepCRUD struct {
	fakeStepStore
	nextID  uint
	deleted []uint
}

func (store *fakeStepCRUD) Create(step *models.RoutineStep) error {
	store.nextID++
	step.ID = store.nextID
	store.steps = append(store.steps, *step)
	return nil
}

func (store *fakeStepCRUD) Save(step *models.RoutineStep) error {
	for index := range store.steps {
		if store.steps[index].ID == step.ID {
			store.steps[index] = *step
			return nil
		}
	}
	return errors.New("step not found")
}

func (store *fakeStepCRUD) DeleteWithCompletions(userID uint, stepID uint) error {
	for index := range store.steps {
		if store.steps[index].UserID == userID && store.steps[index].ID == stepID {
			store.steps = append(store.steps[:index], store.steps[index+1:]...)
			store.deleted = append(store.deleted, stepID)
			return nil
		}
	}
	return errors.New("step not found")
}

func (store *fakeStepCRUD) CountByUserWindow(userID uint, window models.TimeOfDay) (int, error) {
	count := 0
	for _, step := range store.steps {
		if step.UserID == userID && step.TimeOfDay == window {
			count++
		}
	}
	return count, nil
}

func TestStepCreateAppendsToWindow(t *testing.T) {
	t.Parallel()

	store := &fakeStepCRUD{}
	store.steps = []models.RoutineStep{
		dailyStep(100, 0, models.TimeMorning),
		dailyStep(101, 1, models.TimeMorning),
		dailyStep(102, 0, models.TimeEvening),
	}
	store.nextID = 102
	service := NewStepService(store)

	step := models.RoutineStep{
		UserID:    1,
		Name:      "  Apply sunscreen  ",
		Category:  models.CategorySunscreen,
		TimeOfDay: models.TimeMorning,
		Schedule:  everyDaySchedule(),
	}
	if err := service.Create(&step); err != nil {
		t.Fatalf("create: %v", err)
	}
	if step.Position != 2 {
		t.Fatalf("new morning step position = %d, want 2", step.Position)
	}
	if step.Name != "Apply sunscreen" {
		t.Fatalf("name not trimmed: %q", step.Name)
	}
}

func TestStepCreateValidation(t *testing.T) {
	t.Parallel()

	service := NewStepService(&fakeStepCRUD{})

	blank := models.RoutineStep{UserID: 1, Name: "   ", TimeOfDay: models.TimeMorning}
	if err := service.Create(&blank); !errors.Is(err, ErrStepNameRequired) {
		t.Fatalf("expected ErrStepNameRequired, got %v", err)
	}

	badWindow := models.RoutineStep{UserID: 1, Name: "step", TimeOfDay: models.TimeBoth}
	if err := service.Create(&badWindow); !errors.Is(err, ErrStepWindow) {
		t.Fatalf("expected ErrStepWindow, got %v", err)
	}
}

func TestStepCreateNormalizesUnknownCategory(t *testing.T) {
	t.Parallel()

	store := &fakeStepCRUD{}
	service := NewStepService(store)

	step := models.RoutineStep{
		UserID:    1,
		Name:      "mystery step",
		Category:  models.StepCategory("snake-oil"),
		TimeOfDay: models.TimeEvening,
	}
	if err := service.Create(&step); err != nil {
		t.Fatalf("create: %v", err)
	}
	if step.Category != models.CategoryOther {
		t.Fatalf("unknown category should normalize to other, got %s", step.Category)
	}
}

func TestStepUpdateWindowChangeAppendsToNewWindow(t *testing.T) {
	t.Parallel()

	store := &fakeStepCRUD{}
	store.steps = []models.RoutineStep{
		dailyStep(1, 0, models.TimeMorning),
		dailyStep(2, 1, models.TimeMorning),
		dailyStep(3, 0, models.TimeEvening),
	}
	store.nextID = 3
	service := NewStepService(store)

	moved, err := service.Update(1, 1, models.RoutineStep{
		Name:      "Cleanser",
		Category:  models.CategoryCleanser,
		TimeOfDay: models.TimeEvening,
		Schedule:  everyDaySchedule(),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if moved.Position != 1 {
		t.Fatalf("moved step position = %d, want 1 (end of evening window)", moved.Position)
	}

	kept, err := service.Update(1, 2, models.RoutineStep{
		Name:      "Serum",
		Category:  models.CategorySerum,
		TimeOfDay: models.TimeMorning,
		Schedule:  everyDaySchedule(),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if kept.Position != 1 {
		t.Fatalf("same-window update must keep position, got %d", kept.Position)
	}
}

func TestStepUpdateAndDelete(t *testing.T) {
	t.Parallel()

	store := &fakeStepCRUD{}
	store.steps = []models.RoutineStep{dailyStep(1, 0, models.TimeMorning)}
	service := NewStepService(store)

	updated, err := service.Update(1, 1, models.RoutineStep{
		Name:      "Renamed",
		Category:  models.CategoryToner,
		TimeOfDay: models.TimeEvening,
		Schedule:  models.NewIntervalSchedule(2, mustParseDay(t, "2024-01-01")),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Renamed" || updated.TimeOfDay != models.TimeEvening {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Schedule.Kind != models.ScheduleInterval {
		t.Fatalf("schedule not replaced: %+v", updated.Schedule)
	}

	if _, err := service.Update(1, 42, models.RoutineStep{Name: "x", TimeOfDay: models.TimeMorning}); !errors.Is(err, ErrStepNotFound) {
		t.Fatalf("expected ErrStepNotFound, got %v", err)
	}

	if err := service.Delete(1, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != 1 {
		t.Fatalf("delete must cascade through the store, got %+v", store.deleted)
	}
}
