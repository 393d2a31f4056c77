package services

import (
	"time"

	"github.com/solenelark/glowlog/internal/models"
)

type StatsCompletionReader interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CompletionRecord, error)
}

type StatsOverview struct {
	WindowDays      int         `json:"window_days"`
	ScheduledSteps  int         `json:"scheduled_steps"`
	CompletedSteps  int         `json:"completed_steps"`
	SkippedSteps    int         `json:"skipped_steps"`
	AdherenceRate   float64     `json:"adherence_rate"`
	CurrentStreak   int         `json:"current_streak"`
	PerStep         []StepStats `json:"per_step"`
	ActiveProducts  int         `json:"active_products"`
	ConflictCount   int         `json:"conflict_count"`
	HighestSeverity string      `json:"highest_severity,omitempty"`
}

type StepStats struct {
	StepID    uint   `json:"step_id"`
	Name      string `json:"name"`
	Scheduled int    `json:"scheduled"`
	Completed int    `json:"completed"`
	Skipped   int    `json:"skipped"`
}

type StatsService struct {
	steps       RoutineStepReader
	completions StatsCompletionReader
	location    *time.Location
}

func NewStatsService(steps RoutineStepReader, completions StatsCompletionReader, location *time.Location) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{steps: steps, completions: completions, location: location}
}

// BuildOverview replays the schedule over the trailing window and compares it
// with recorded completions. Adherence counts completed over scheduled; the
// streak counts consecutive days ending today where every scheduled step was
// actioned (days with nothing scheduled extend the streak).
func (service *StatsService) BuildOverview(userID uint, now time.Time, windowDays int) (StatsOverview, error) {
	if windowDays <= 0 {
		windowDays = 30
	}

	steps, err := service.steps.ListByUser(userID)
	if err != nil {
		return StatsOverview{}, err
	}

	today := DateAtLocation(now, service.location)
	windowStart := today.AddDate(0, 0, -(windowDays - 1))
	records, err := service.completions.ListByUserRange(userID, windowStart, today.AddDate(0, 0, 1))
	if err != nil {
		return StatsOverview{}, err
	}

	recordByStepDay := make(map[uint]map[string]models.CompletionRecord, len(steps))
	for _, record := range records {
		day := FormatDay(record.Date)
		if recordByStepDay[record.StepID] == nil {
			recordByStepDay[record.StepID] = make(map[string]models.CompletionRecord)
		}
		recordByStepDay[record.StepID][day] = record
	}

	overview := StatsOverview{WindowDays: windowDays}
	perStep := make(map[uint]*StepStats, len(steps))
	for _, step := range steps {
		perStep[step.ID] = &StepStats{StepID: step.ID, Name: step.Name}
	}

	streakAlive := true
	for offset := 0; offset < windowDays; offset++ {
		day := today.AddDate(0, 0, -offset)
		dayKey := FormatDay(day)
		dayActioned := true

		for _, step := range steps {
			if !ScheduleActiveOn(step.Schedule, day) {
				continue
			}

			overview.ScheduledSteps++
			stats := perStep[step.ID]
			stats.Scheduled++

			record, ok := recordByStepDay[step.ID][dayKey]
			switch {
			case ok && record.Status == models.StatusCompleted:
				overview.CompletedSteps++
				stats.Completed++
			case ok && record.Status == models.StatusSkipped:
				overview.SkippedSteps++
				stats.Skipped++
			default:
				dayActioned = false
			}
		}

		if streakAlive && dayActioned {
			overview.CurrentStreak++
		} else {
			streakAlive = false
		}
	}

	if overview.ScheduledSteps > 0 {
		overview.AdherenceRate = float64(overview.CompletedSteps) / float64(overview.ScheduledSteps)
	}

	overview.PerStep = make([]StepStats, 0, len(steps))
	for _, step := range steps {
		overview.PerStep = append(overview.PerStep, *perStep[step.ID])
	}
	return overview, nil
}

// ApplyShelfSummary fills the product-derived fields from a conflict scan the
// caller already ran.
func (overview *StatsOverview) ApplyShelfSummary(products []models.Product, conflicts []DetectedConflict) {
	for _, product := range products {
		if !product.IsStopped() {
			overview.ActiveProducts++
		}
	}
	overview.ConflictCount = len(conflicts)
	if len(conflicts) > 0 {
		overview.HighestSeverity = conflicts[0].Rule.Severity
	}
}
