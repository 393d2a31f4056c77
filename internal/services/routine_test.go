package services

import (
	"testing"

	"github.com/solenelark/glowlog/internal/models"
)

func weekdayStep(id uint, position int, window models.TimeOfDay, days ...models.Weekday) models.RoutineStep {
	return models.RoutineStep{
		ID:        id,
		UserID:    1,
		Name:      "step",
		Category:  models.CategorySerum,
		TimeOfDay: window,
		Position:  position,
		Schedule:  models.NewWeeklySchedule(days...),
	}
}

func TestBuildTodayStepsFiltersAndJoins(t *testing.T) {
	t.Parallel()

	monday := mustParseDay(t, "2024-01-01")
	steps := []models.RoutineStep{
		weekdayStep(1, 1, models.TimeMorning, models.Monday),
		weekdayStep(2, 0, models.TimeMorning, models.Monday),
		// Wrong window and inactive-on-Monday steps must be filtered out.
		weekdayStep(3, 0, models.TimeEvening, models.Monday),
		weekdayStep(4, 2, models.TimeMorning, models.Tuesday),
	}
	completions := []models.CompletionRecord{
		{StepID: 1, Date: monday, Status: models.StatusCompleted, ProductUsed: "The Serum"},
		// A record for another day must not join.
		{StepID: 2, Date: mustParseDay(t, "2024-01-02"), Status: models.StatusCompleted},
	}

	today := BuildTodaySteps(steps, completions, monday, models.TimeMorning)
	if len(today) != 2 {
		t.Fatalf("expected 2 today steps, got %d", len(today))
	}

	// Sorted by position ascending.
	if today[0].Step.ID != 2 || today[1].Step.ID != 1 {
		t.Fatalf("unexpected order: %d then %d", today[0].Step.ID, today[1].Step.ID)
	}

	if today[0].IsCompleted || today[0].IsSkipped {
		t.Fatalf("step 2 should be pending")
	}
	if !today[1].IsCompleted {
		t.Fatalf("step 1 should be completed")
	}
	if today[1].ProductUsed != "The Serum" {
		t.Fatalf("expected product used to carry over, got %q", today[1].ProductUsed)
	}
}

func TestBuildRoutineProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		steps         []TodayStep
		wantCompleted int
		wantActioned  bool
	}{
		{
			name:         "empty routine",
			steps:        nil,
			wantActioned: false,
		},
		{
			name: "pending remains",
			steps: []TodayStep{
				{IsCompleted: true},
				{},
			},
			wantCompleted: 1,
			wantActioned:  false,
		},
		{
			name: "completed and skipped",
			steps: []TodayStep{
				{IsCompleted: true},
				{IsSkipped: true},
			},
			wantCompleted: 1,
			wantActioned:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := BuildRoutineProgress(tt.steps)
			if progress.Completed != tt.wantCompleted {
				t.Fatalf("completed = %d, want %d", progress.Completed, tt.wantCompleted)
			}
			if progress.Total != len(tt.steps) {
				t.Fatalf("total = %d, want %d", progress.Total, len(tt.steps))
			}
			if progress.FullyActioned != tt.wantActioned {
				t.Fatalf("fully actioned = %v, want %v", progress.FullyActioned, tt.wantActioned)
			}
		})
	}
}
