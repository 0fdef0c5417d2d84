package domain

import (
	"fmt"
	"strings"
	"time"
)

// WeekdaySet is a bitmask over the seven weekdays. Bit N corresponds to
// time.Weekday(N), so Sunday is bit 0 and Saturday is bit 6.
type WeekdaySet uint8

const allWeekdays WeekdaySet = 0x7F

// NewWeekdaySet builds a set from the given weekdays. Duplicates are fine.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// Add returns a copy of the set with the given weekday included.
func (s WeekdaySet) Add(d time.Weekday) WeekdaySet {
	return s | 1<<uint(d)
}

// Has reports whether the weekday is in the set.
func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Count returns the number of weekdays in the set.
func (s WeekdaySet) Count() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no weekday is selected.
func (s WeekdaySet) IsEmpty() bool { return s&allWeekdays == 0 }

// IsFull reports whether all seven weekdays are selected.
func (s WeekdaySet) IsFull() bool { return s&allWeekdays == allWeekdays }

// Days returns the selected weekdays in Sunday..Saturday order.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// String returns the selected weekday names joined by commas, e.g. "Saturday, Sunday".
func (s WeekdaySet) String() string {
	if s.IsEmpty() {
		return "none"
	}
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}

// ParseWeekday converts a weekday name into a time.Weekday.
// Accepts full names and three-letter abbreviations (case-insensitive).
func ParseWeekday(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	case "tuesday", "tue":
		return time.Tuesday, nil
	case "wednesday", "wed":
		return time.Wednesday, nil
	case "thursday", "thu":
		return time.Thursday, nil
	case "friday", "fri":
		return time.Friday, nil
	case "saturday", "sat":
		return time.Saturday, nil
	default:
		return 0, fmt.Errorf("unsupported weekday: %q", s)
	}
}
