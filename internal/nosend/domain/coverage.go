package domain

import "time"

// Covers reports whether the rule considers the instant blocked.
// It is a pure function of (rule, instant); enabled/disabled state is
// enforced by the evaluator, not here. All civil computations use the
// instant's own location.
func (r Rule) Covers(t time.Time) bool {
	switch r.Kind {
	case RuleKindDayOfWeek:
		return r.Days.Has(t.Weekday())
	case RuleKindTimeRange:
		if r.Start == r.End {
			// zero-width window blocks nothing
			return false
		}
		tod := TimeOfDayOf(t)
		if r.Start < r.End {
			return tod >= r.Start && tod < r.End
		}
		// wrapping window: [Start, 24:00) today plus [00:00, End) tomorrow
		return tod >= r.Start || tod < r.End
	case RuleKindDate:
		return CivilDateOf(t) == r.Date
	case RuleKindDateRange:
		d := CivilDateOf(t)
		return !d.Before(r.StartDate) && !d.After(r.EndDate)
	default:
		return false
	}
}

// NextBoundary returns the smallest instant strictly after the given one
// at which Covers changes value, computed analytically per rule kind.
// The second return is false when the rule's coverage can never change
// again: one-shot date rules whose days have fully passed, and rules
// whose coverage is constant (empty or seven-day weekday sets, zero-width
// time windows). Callers treat such rules as inert from here on.
func (r Rule) NextBoundary(after time.Time) (time.Time, bool) {
	loc := after.Location()
	switch r.Kind {
	case RuleKindDayOfWeek:
		if r.Days.IsEmpty() || r.Days.IsFull() {
			return time.Time{}, false
		}
		// coverage flips at the first midnight where weekday membership
		// differs from the day before; with a proper subset of the week
		// that happens within seven days
		cur := CivilDateOf(after)
		next := cur.Next()
		for i := 0; i < 7; i++ {
			if r.Days.Has(next.Weekday()) != r.Days.Has(cur.Weekday()) {
				return next.StartOfDay(loc), true
			}
			cur, next = next, next.Next()
		}
		return time.Time{}, false
	case RuleKindTimeRange:
		if r.Start == r.End {
			return time.Time{}, false
		}
		day := CivilDateOf(after)
		tomorrow := day.Next()
		return earliestAfter(after,
			r.Start.At(day, loc),
			r.End.At(day, loc),
			r.Start.At(tomorrow, loc),
			r.End.At(tomorrow, loc),
		)
	case RuleKindDate:
		return earliestAfter(after,
			r.Date.StartOfDay(loc),
			r.Date.Next().StartOfDay(loc),
		)
	case RuleKindDateRange:
		return earliestAfter(after,
			r.StartDate.StartOfDay(loc),
			r.EndDate.Next().StartOfDay(loc),
		)
	default:
		return time.Time{}, false
	}
}

// earliestAfter picks the smallest candidate strictly after the pivot.
func earliestAfter(pivot time.Time, candidates ...time.Time) (time.Time, bool) {
	var best time.Time
	for _, c := range candidates {
		if !c.After(pivot) {
			continue
		}
		if best.IsZero() || c.Before(best) {
			best = c
		}
	}
	return best, !best.IsZero()
}
