package services

import (
	"time"

	"github.com/solenelark/glowlog/internal/models"
)

// ScheduleActiveOn reports whether the schedule fires on the target calendar
// date. It is a pure predicate so callers can probe arbitrary past and future
// dates (date-picker strips, journal views).
//
// A schedule missing required fields for its kind evaluates to inactive rather
// than erroring: a partially edited schedule must not break the today view.
func ScheduleActiveOn(schedule models.Schedule, target time.Time) bool {
	switch schedule.Kind {
	case models.ScheduleCycle:
		return cycleActiveOn(schedule.Cycle, target)
	case models.ScheduleInterval:
		return intervalActiveOn(schedule.Interval, target)
	default:
		// Unknown kinds already normalize to weekly at the codec; treating
		// them as weekly here too keeps the predicate total.
		return schedule.Weekly.Contains(WeekdayOf(target))
	}
}

func cycleActiveOn(cycle models.CycleSchedule, target time.Time) bool {
	if cycle.Length < 2 || len(cycle.Days) == 0 || cycle.StartDate.IsZero() {
		return false
	}

	elapsed := DaysBetween(cycle.StartDate, target)
	if elapsed < 0 {
		return false
	}

	position := (elapsed % cycle.Length) + 1
	for _, day := range cycle.Days {
		if day == position {
			return true
		}
	}
	return false
}

func intervalActiveOn(interval models.IntervalSchedule, target time.Time) bool {
	if interval.Days < 1 || interval.StartDate.IsZero() {
		return false
	}

	elapsed := DaysBetween(interval.StartDate, target)
	if elapsed < 0 {
		return false
	}
	return elapsed%interval.Days == 0
}
