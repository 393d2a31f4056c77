package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdayByName = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

var weekdayFromTime = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

func ParseWeekday(name string) (Weekday, error) {
	weekday, ok := weekdayByName[name]
	if !ok {
		return "", fmt.Errorf("unknown weekday %q", name)
	}
	return weekday, nil
}

func WeekdayOfDate(date time.Time) Weekday {
	return weekdayFromTime[date.Weekday()]
}

type ScheduleKind string

const (
	ScheduleWeekly   ScheduleKind = "weekly"
	ScheduleCycle    ScheduleKind = "cycle"
	ScheduleInterval ScheduleKind = "interval"
)

// Legacy kind names still present in older persisted rows.
const (
	legacyKindRegular = "regular"
	legacyKindRota    = "rota"
)

type WeeklySchedule struct {
	Days []Weekday
}

func (schedule WeeklySchedule) Contains(day Weekday) bool {
	for _, candidate := range schedule.Days {
		if candidate == day {
			return true
		}
	}
	return false
}

type CycleSchedule struct {
	Length    int
	Days      []int
	StartDate time.Time
}

type IntervalSchedule struct {
	Days      int
	StartDate time.Time
}

// Schedule is a tagged union: exactly the variant named by Kind carries data.
// An unknown or empty Kind behaves as weekly.
type Schedule struct {
	Kind     ScheduleKind
	Weekly   WeeklySchedule
	Cycle    CycleSchedule
	Interval IntervalSchedule
}

func NewWeeklySchedule(days ...Weekday) Schedule {
	return Schedule{Kind: ScheduleWeekly, Weekly: WeeklySchedule{Days: days}}
}

func NewCycleSchedule(length int, days []int, start time.Time) Schedule {
	return Schedule{Kind: ScheduleCycle, Cycle: CycleSchedule{Length: length, Days: days, StartDate: start}}
}

func NewIntervalSchedule(days int, start time.Time) Schedule {
	return Schedule{Kind: ScheduleInterval, Interval: IntervalSchedule{Days: days, StartDate: start}}
}

const scheduleDateLayout = "2006-01-02"

type scheduleWire struct {
	ScheduleType      string   `json:"schedule_type"`
	Days              []string `json:"days,omitempty"`
	CycleLength       int      `json:"cycle_length,omitempty"`
	CycleDays         []int    `json:"cycle_days,omitempty"`
	CycleStartDate    string   `json:"cycle_start_date,omitempty"`
	IntervalDays      int      `json:"interval_days,omitempty"`
	IntervalStartDate string   `json:"interval_start_date,omitempty"`

	// Legacy field names, accepted on read and never written back.
	LegacyStartDate  string `json:"schedule_start_date,omitempty"`
	LegacyRotaLength int    `json:"schedule_rota_length,omitempty"`
	LegacyRotaDays   []int  `json:"schedule_rota_days,omitempty"`
}

func (schedule Schedule) MarshalJSON() ([]byte, error) {
	wire := scheduleWire{ScheduleType: string(schedule.Kind)}
	if wire.ScheduleType == "" {
		wire.ScheduleType = string(ScheduleWeekly)
	}

	switch schedule.Kind {
	case ScheduleCycle:
		wire.CycleLength = schedule.Cycle.Length
		wire.CycleDays = schedule.Cycle.Days
		if !schedule.Cycle.StartDate.IsZero() {
			wire.CycleStartDate = schedule.Cycle.StartDate.Format(scheduleDateLayout)
		}
	case ScheduleInterval:
		wire.IntervalDays = schedule.Interval.Days
		if !schedule.Interval.StartDate.IsZero() {
			wire.IntervalStartDate = schedule.Interval.StartDate.Format(scheduleDateLayout)
		}
	default:
		wire.ScheduleType = string(ScheduleWeekly)
		wire.Days = make([]string, 0, len(schedule.Weekly.Days))
		for _, day := range schedule.Weekly.Days {
			wire.Days = append(wire.Days, string(day))
		}
	}

	return json.Marshal(wire)
}

func (schedule *Schedule) UnmarshalJSON(data []byte) error {
	wire := scheduleWire{}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	decoded, err := scheduleFromWire(wire)
	if err != nil {
		return err
	}

	*schedule = decoded
	return nil
}

func scheduleFromWire(wire scheduleWire) (Schedule, error) {
	kind := normalizeScheduleKind(wire.ScheduleType)

	switch kind {
	case ScheduleCycle:
		length := wire.CycleLength
		if length == 0 {
			length = wire.LegacyRotaLength
		}
		days := wire.CycleDays
		if len(days) == 0 {
			days = wire.LegacyRotaDays
		}
		start, err := parseOptionalScheduleDate(firstNonEmpty(wire.CycleStartDate, wire.LegacyStartDate))
		if err != nil {
			return Schedule{}, err
		}
		return Schedule{Kind: ScheduleCycle, Cycle: CycleSchedule{Length: length, Days: days, StartDate: start}}, nil
	case ScheduleInterval:
		start, err := parseOptionalScheduleDate(firstNonEmpty(wire.IntervalStartDate, wire.LegacyStartDate))
		if err != nil {
			return Schedule{}, err
		}
		return Schedule{Kind: ScheduleInterval, Interval: IntervalSchedule{Days: wire.IntervalDays, StartDate: start}}, nil
	default:
		days := make([]Weekday, 0, len(wire.Days))
		for _, name := range wire.Days {
			weekday, err := ParseWeekday(name)
			if err != nil {
				return Schedule{}, err
			}
			days = append(days, weekday)
		}
		return Schedule{Kind: ScheduleWeekly, Weekly: WeeklySchedule{Days: days}}, nil
	}
}

func normalizeScheduleKind(raw string) ScheduleKind {
	switch raw {
	case string(ScheduleCycle), legacyKindRota:
		return ScheduleCycle
	case string(ScheduleInterval), legacyKindRegular:
		return ScheduleInterval
	default:
		// Unknown kinds fall back to weekly semantics for forward compatibility.
		return ScheduleWeekly
	}
}

func parseOptionalScheduleDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(scheduleDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule date %q: %w", raw, err)
	}
	return parsed, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
