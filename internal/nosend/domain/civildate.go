package domain

import (
	"fmt"
	"time"
)

// CivilDate is a calendar date in the business timezone, with no
// time-of-day component. The zero value is treated as "unset".
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCivilDate constructs a CivilDate and rejects impossible dates
// (e.g. February 30th) by round-tripping through time.Date.
func NewCivilDate(year int, month time.Month, day int) (CivilDate, error) {
	d := CivilDate{Year: year, Month: month, Day: day}
	norm := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if norm.Year() != year || norm.Month() != month || norm.Day() != day {
		return CivilDate{}, fmt.Errorf("no such calendar date: %04d-%02d-%02d", year, month, day)
	}
	return d, nil
}

// ParseCivilDate parses a "YYYY-MM-DD" string into a CivilDate.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("malformed date %q: %w", s, err)
	}
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// CivilDateOf returns the calendar date of the instant in the instant's
// own location. Callers convert external timestamps into the business
// zone before rule evaluation, so no extra conversion happens here.
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// IsZero reports whether the date is unset.
func (d CivilDate) IsZero() bool { return d == CivilDate{} }

// Before reports whether d is strictly earlier than other.
func (d CivilDate) Before(other CivilDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d CivilDate) After(other CivilDate) bool { return other.Before(d) }

// Next returns the following calendar day, handling month and year
// rollover via time.Date normalization.
func (d CivilDate) Next() CivilDate {
	t := time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, time.UTC)
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// StartOfDay returns the midnight instant that begins this civil day
// in the given location.
func (d CivilDate) StartOfDay(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week this date falls on.
func (d CivilDate) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// String formats the date as "YYYY-MM-DD".
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
