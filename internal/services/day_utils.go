package services

import (
	"fmt"
	"time"

	"github.com/solenelark/glowlog/internal/models"
)

const dayLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// ParseDay parses a YYYY-MM-DD string as midnight in the given location.
// Dates at this layer never carry time-of-day or timezone offsets, so a parse
// failure is a caller contract violation.
func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(dayLayout, raw, location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", raw, err)
	}
	return parsed, nil
}

func FormatDay(value time.Time) string {
	return value.Format(dayLayout)
}

// DaysBetween returns the whole-day difference to-from over calendar dates.
// Both arguments are normalized to UTC midnight first, so values from
// different locations or with time-of-day noise compare by calendar day only.
func DaysBetween(from time.Time, to time.Time) int {
	fromDay := utcMidnight(from)
	toDay := utcMidnight(to)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func WeekdayOf(date time.Time) models.Weekday {
	return models.WeekdayOfDate(date)
}

func SameDay(a time.Time, b time.Time) bool {
	return a.Format(dayLayout) == b.Format(dayLayout)
}

func utcMidnight(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
