package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight,
// 0 through 1439. The rule forms capture HH:MM, so minute resolution
// is sufficient for every rule kind.
type TimeOfDay int

const minutesPerDay = 24 * 60

// NewTimeOfDay constructs a TimeOfDay from an hour and minute.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range: %d", minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses a "HH:MM" string into a TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("malformed time of day %q: %w", s, err)
	}
	return NewTimeOfDay(hour, minute)
}

// TimeOfDayOf extracts the wall-clock time of the instant, truncated to
// the minute. Seconds within a minute share that minute's coverage state.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Hour returns the hour component, 0..23.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component, 0..59.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// IsValid reports whether the value is within a single civil day.
func (t TimeOfDay) IsValid() bool { return t >= 0 && t < minutesPerDay }

// String formats the value as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// At returns the instant at this wall-clock time on the given civil day.
func (t TimeOfDay) At(d CivilDate, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour(), t.Minute(), 0, 0, loc)
}
