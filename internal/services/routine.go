package services

import (
	"sort"
	"time"

	"github.com/solenelark/glowlog/internal/models"
)

// TodayStep is a routine step joined with its completion record for one date.
// Derived on demand, never persisted.
type TodayStep struct {
	Step        models.RoutineStep `json:"step"`
	IsCompleted bool               `json:"is_completed"`
	IsSkipped   bool               `json:"is_skipped"`
	ProductUsed string             `json:"product_used,omitempty"`
}

func (step TodayStep) Actioned() bool {
	return step.IsCompleted || step.IsSkipped
}

type RoutineProgress struct {
	Completed     int  `json:"completed"`
	Total         int  `json:"total"`
	FullyActioned bool `json:"fully_actioned"`
}

// BuildTodaySteps filters steps to the requested time-of-day window and date,
// left-joins completion records by (step, date) and orders by position. A step
// without a record is pending: neither completed nor skipped.
func BuildTodaySteps(steps []models.RoutineStep, completions []models.CompletionRecord, date time.Time, window models.TimeOfDay) []TodayStep {
	recordByStep := make(map[uint]models.CompletionRecord, len(completions))
	for _, record := range completions {
		if SameDay(record.Date, date) {
			recordByStep[record.StepID] = record
		}
	}

	result := make([]TodayStep, 0, len(steps))
	for _, step := range steps {
		if step.TimeOfDay != window {
			continue
		}
		if !ScheduleActiveOn(step.Schedule, date) {
			continue
		}

		todayStep := TodayStep{Step: step}
		if record, ok := recordByStep[step.ID]; ok {
			todayStep.IsCompleted = record.Status == models.StatusCompleted
			todayStep.IsSkipped = record.Status == models.StatusSkipped
			todayStep.ProductUsed = record.ProductUsed
		}
		result = append(result, todayStep)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Step.Position < result[j].Step.Position
	})
	return result
}

func BuildRoutineProgress(steps []TodayStep) RoutineProgress {
	progress := RoutineProgress{Total: len(steps), FullyActioned: len(steps) > 0}
	for _, step := range steps {
		if step.IsCompleted {
			progress.Completed++
		}
		if !step.Actioned() {
			progress.FullyActioned = false
		}
	}
	return progress
}
