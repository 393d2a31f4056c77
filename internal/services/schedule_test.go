package services

import (
	"testing"
	"time"

	"github.com/solenelark/glowlog/internal/models"
)

func TestWeeklyScheduleFollowsWeekday(t *testing.T) {
	t.Parallel()

	schedule := models.NewWeeklySchedule(models.Monday, models.Wednesday, models.Friday)

	tests := []struct {
		day  string
		want bool
	}{
		{day: "2024-01-01", want: true},  // Monday
		{day: "2024-01-02", want: false}, // Tuesday
		{day: "2024-01-03", want: true},  // Wednesday
		{day: "2024-01-05", want: true},  // Friday
		{day: "2024-01-07", want: false}, // Sunday
	}

	for _, tt := range tests {
		if got := ScheduleActiveOn(schedule, mustParseDay(t, tt.day)); got != tt.want {
			t.Fatalf("weekly on %s = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestWeeklyScheduleEmptyDaysNeverActive(t *testing.T) {
	t.Parallel()

	schedule := models.NewWeeklySchedule()
	day := mustParseDay(t, "2024-01-01")
	for offset := 0; offset < 7; offset++ {
		if ScheduleActiveOn(schedule, day.AddDate(0, 0, offset)) {
			t.Fatalf("empty weekly schedule active on offset %d", offset)
		}
	}
}

func TestCycleScheduleWraparound(t *testing.T) {
	t.Parallel()

	schedule := models.NewCycleSchedule(4, []int{1, 2}, mustParseDay(t, "2024-01-01"))

	tests := []struct {
		day  string
		want bool
	}{
		{day: "2024-01-01", want: true},  // elapsed 0, position 1
		{day: "2024-01-02", want: true},  // position 2
		{day: "2024-01-03", want: false}, // position 3
		{day: "2024-01-04", want: false}, // position 4
		{day: "2024-01-05", want: true},  // wraps to position 1
		{day: "2024-01-06", want: true},  // position 2
		{day: "2023-12-31", want: false}, // before anchor
	}

	for _, tt := range tests {
		if got := ScheduleActiveOn(schedule, mustParseDay(t, tt.day)); got != tt.want {
			t.Fatalf("cycle on %s = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestCycleScheduleIncompleteIsInactive(t *testing.T) {
	t.Parallel()

	target := mustParseDay(t, "2024-01-01")

	tests := []struct {
		name     string
		schedule models.Schedule
	}{
		{name: "missing start date", schedule: models.NewCycleSchedule(4, []int{1}, time.Time{})},
		{name: "missing cycle days", schedule: models.NewCycleSchedule(4, nil, target)},
		{name: "length below two", schedule: models.NewCycleSchedule(1, []int{1}, target)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ScheduleActiveOn(tt.schedule, target) {
				t.Fatalf("incomplete cycle schedule reported active")
			}
		})
	}
}

func TestIntervalSchedule(t *testing.T) {
	t.Parallel()

	schedule := models.NewIntervalSchedule(3, mustParseDay(t, "2024-01-01"))

	tests := []struct {
		day  string
		want bool
	}{
		{day: "2024-01-01", want: true},
		{day: "2024-01-02", want: false},
		{day: "2024-01-03", want: false},
		{day: "2024-01-04", want: true},
		{day: "2024-01-07", want: true},
		{day: "2023-12-29", want: false}, // before anchor, even though divisible
	}

	for _, tt := range tests {
		if got := ScheduleActiveOn(schedule, mustParseDay(t, tt.day)); got != tt.want {
			t.Fatalf("interval on %s = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestIntervalScheduleIncompleteIsInactive(t *testing.T) {
	t.Parallel()

	target := mustParseDay(t, "2024-01-04")

	if ScheduleActiveOn(models.NewIntervalSchedule(0, target), target) {
		t.Fatalf("interval without days reported active")
	}
	if ScheduleActiveOn(models.NewIntervalSchedule(3, time.Time{}), target) {
		t.Fatalf("interval without start date reported active")
	}
}

func TestUnknownScheduleKindBehavesAsWeekly(t *testing.T) {
	t.Parallel()

	schedule := models.Schedule{
		Kind:   models.ScheduleKind("someday"),
		Weekly: models.WeeklySchedule{Days: []models.Weekday{models.Tuesday}},
	}

	if !ScheduleActiveOn(schedule, mustParseDay(t, "2024-01-02")) {
		t.Fatalf("unknown kind should evaluate weekly days")
	}
	if ScheduleActiveOn(schedule, mustParseDay(t, "2024-01-03")) {
		t.Fatalf("unknown kind active outside weekly days")
	}
}

func TestScheduleActiveOnIsPure(t *testing.T) {
	t.Parallel()

	schedule := models.NewCycleSchedule(3, []int{2}, mustParseDay(t, "2024-01-01"))
	day := mustParseDay(t, "2024-01-02")

	first := ScheduleActiveOn(schedule, day)
	for i := 0; i < 10; i++ {
		if ScheduleActiveOn(schedule, day) != first {
			t.Fatalf("predicate not stable across calls")
		}
	}
	if !first {
		t.Fatalf("expected position 2 to be active")
	}
}
