package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidRule is returned when a rule's own data is contradictory or
// incomplete. It is raised at construction time only; by the time a rule
// reaches evaluation its data is assumed well formed.
var ErrInvalidRule = errors.New("invalid no-send rule")

// RuleKind identifies which variant of a no-send rule is active.
//
// day_of_week - blocks the whole civil day on the listed weekdays
// time_range  - blocks a daily clock-time window, possibly spanning midnight
// date        - blocks one specific civil day
// date_range  - blocks every civil day in an inclusive date span
type RuleKind uint8

const (
	RuleKindDayOfWeek RuleKind = iota
	RuleKindTimeRange
	RuleKindDate
	RuleKindDateRange
)

// String returns a stable string representation of the rule kind.
func (k RuleKind) String() string {
	switch k {
	case RuleKindDayOfWeek:
		return "day_of_week"
	case RuleKindTimeRange:
		return "time_range"
	case RuleKindDate:
		return "date"
	case RuleKindDateRange:
		return "date_range"
	default:
		return fmt.Sprintf("RuleKind(%d)", k)
	}
}

// ParseRuleKind converts a string into a RuleKind.
// Accepts the stable names emitted by String (case-insensitive).
func ParseRuleKind(s string) (RuleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day_of_week":
		return RuleKindDayOfWeek, nil
	case "time_range":
		return RuleKindTimeRange, nil
	case "date":
		return RuleKindDate, nil
	case "date_range":
		return RuleKindDateRange, nil
	default:
		return 0, fmt.Errorf("unsupported RuleKind: %q", s)
	}
}

// Rule is a single no-send rule. Exactly one variant is active per value,
// selected by Kind; only that variant's payload fields are meaningful.
//
// Notes:
// - ID is a stable identifier assigned by the rule-authoring collaborator.
//   Constructors generate a UUID when an empty ID is supplied.
// - Name is the operator-facing display label.
// - Disabled rules are retained in rule sets for display and editing but
//   contribute nothing to evaluation.
type Rule struct {
	ID      string
	Name    string
	Enabled bool
	Kind    RuleKind

	// day_of_week payload
	Days WeekdaySet

	// time_range payload; the window is half-open [Start, End) and wraps
	// past midnight when End <= Start. Start == End blocks nothing.
	Start TimeOfDay
	End   TimeOfDay

	// date payload
	Date CivilDate

	// date_range payload; inclusive on both ends
	StartDate CivilDate
	EndDate   CivilDate
}

// NewDayOfWeekRule constructs a rule that blocks the entire civil day on
// each weekday in days. An empty set is allowed and never blocks.
func NewDayOfWeekRule(id, name string, enabled bool, days WeekdaySet) (Rule, error) {
	r := Rule{
		ID:      ruleID(id),
		Name:    strings.TrimSpace(name),
		Enabled: enabled,
		Kind:    RuleKindDayOfWeek,
		Days:    days,
	}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// NewTimeRangeRule constructs a rule that blocks the daily half-open
// window [start, end). When end <= start the window wraps past midnight.
func NewTimeRangeRule(id, name string, enabled bool, start, end TimeOfDay) (Rule, error) {
	r := Rule{
		ID:      ruleID(id),
		Name:    strings.TrimSpace(name),
		Enabled: enabled,
		Kind:    RuleKindTimeRange,
		Start:   start,
		End:     end,
	}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// NewDateRule constructs a rule that blocks one specific civil day.
func NewDateRule(id, name string, enabled bool, date CivilDate) (Rule, error) {
	r := Rule{
		ID:      ruleID(id),
		Name:    strings.TrimSpace(name),
		Enabled: enabled,
		Kind:    RuleKindDate,
		Date:    date,
	}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// NewDateRangeRule constructs a rule that blocks every civil day in
// [startDate, endDate] inclusive. An inverted span is rejected.
func NewDateRangeRule(id, name string, enabled bool, startDate, endDate CivilDate) (Rule, error) {
	r := Rule{
		ID:        ruleID(id),
		Name:      strings.TrimSpace(name),
		Enabled:   enabled,
		Kind:      RuleKindDateRange,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// ruleID returns the trimmed id, or a fresh UUID when none was supplied.
func ruleID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// Validate checks the rule for required fields and variant invariants.
func (r Rule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: id must not be empty", ErrInvalidRule)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidRule)
	}
	switch r.Kind {
	case RuleKindDayOfWeek:
		// an empty set is permitted; it simply never blocks
		return nil
	case RuleKindTimeRange:
		if !r.Start.IsValid() || !r.End.IsValid() {
			return fmt.Errorf("%w: time of day out of range", ErrInvalidRule)
		}
		return nil
	case RuleKindDate:
		if r.Date.IsZero() {
			return fmt.Errorf("%w: date must be set", ErrInvalidRule)
		}
		return nil
	case RuleKindDateRange:
		if r.StartDate.IsZero() || r.EndDate.IsZero() {
			return fmt.Errorf("%w: start and end dates must be set", ErrInvalidRule)
		}
		if r.StartDate.After(r.EndDate) {
			return fmt.Errorf("%w: start date %s is after end date %s", ErrInvalidRule, r.StartDate, r.EndDate)
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported RuleKind: %d", ErrInvalidRule, r.Kind)
	}
}
