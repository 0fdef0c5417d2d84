package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yufyaj/form-sales-sys-sub000/internal/nosend/domain"
)

// Calendar anchors used throughout: 2025-12-25 is a Thursday,
// 2025-12-27 a Saturday, 2026-01-05 a Monday.

func weekendRule(t *testing.T) domain.Rule {
	t.Helper()
	r, err := domain.NewDayOfWeekRule("weekend", "weekend send block", true,
		domain.NewWeekdaySet(time.Saturday, time.Sunday))
	require.NoError(t, err)
	return r
}

func nightRule(t *testing.T) domain.Rule {
	t.Helper()
	start, err := domain.NewTimeOfDay(22, 0)
	require.NoError(t, err)
	end, err := domain.NewTimeOfDay(8, 0)
	require.NoError(t, err)
	r, err := domain.NewTimeRangeRule("night", "night send block", true, start, end)
	require.NoError(t, err)
	return r
}

func setOf(t *testing.T, rules ...domain.Rule) domain.RuleSet {
	t.Helper()
	set, err := domain.NewRuleSet(1, rules...)
	require.NoError(t, err)
	return set
}

func utc(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestEvaluate_NotBlocked(t *testing.T) {
	e := New(Options{})
	set := setOf(t, weekendRule(t))

	// Friday 23:59:59 is still a send window
	ev := e.Evaluate(set, utc(2025, time.December, 26, 23, 59, 59))

	assert.False(t, ev.Blocked)
	assert.True(t, ev.Allowed())
	assert.Empty(t, ev.Matched)
	assert.True(t, ev.NextAllowed.IsZero(), "NextAllowed must be zero when not blocked")
	assert.False(t, ev.Indefinite)
}

func TestEvaluate_WeekendBlock_NextAllowedMonday(t *testing.T) {
	e := New(Options{})
	set := setOf(t, weekendRule(t))

	at := utc(2025, time.December, 27, 0, 0, 0) // Saturday 00:00:00
	ev := e.Evaluate(set, at)

	require.True(t, ev.Blocked)
	require.Len(t, ev.Matched, 1)
	assert.Equal(t, "weekend", ev.Matched[0].ID)
	require.True(t, ev.HasNextAllowed())
	assert.Equal(t, utc(2025, time.December, 29, 0, 0, 0), ev.NextAllowed, "expected the following Monday midnight")

	// the free instant really is free, and everything before it is not
	assert.False(t, e.Evaluate(set, ev.NextAllowed).Blocked)
	for probe := at; probe.Before(ev.NextAllowed); probe = probe.Add(time.Hour) {
		assert.True(t, e.Evaluate(set, probe).Blocked, "no false gap at %v", probe)
	}
}

func TestEvaluate_WrappingWindow(t *testing.T) {
	e := New(Options{})
	set := setOf(t, nightRule(t))

	ev := e.Evaluate(set, utc(2025, time.June, 2, 23, 30, 0))
	require.True(t, ev.Blocked)
	assert.Equal(t, utc(2025, time.June, 3, 8, 0, 0), ev.NextAllowed)

	ev = e.Evaluate(set, utc(2025, time.June, 3, 3, 0, 0))
	require.True(t, ev.Blocked)
	assert.Equal(t, utc(2025, time.June, 3, 8, 0, 0), ev.NextAllowed)

	ev = e.Evaluate(set, utc(2025, time.June, 3, 12, 0, 0))
	assert.False(t, ev.Blocked)
}

func TestEvaluate_AllWeekBlock_Indefinite(t *testing.T) {
	e := New(Options{})
	always, err := domain.NewDayOfWeekRule("always", "full stop", true, domain.NewWeekdaySet(
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	))
	require.NoError(t, err)
	set := setOf(t, always)

	ev := e.Evaluate(set, utc(2025, time.June, 2, 12, 0, 0))

	require.True(t, ev.Blocked)
	assert.True(t, ev.Indefinite, "a seven-day block never yields a concrete next instant")
	assert.True(t, ev.NextAllowed.IsZero())
	assert.False(t, ev.HasNextAllowed())
}

func TestEvaluate_OverlappingRules_AllReported(t *testing.T) {
	e := New(Options{})
	thursday, err := domain.NewDayOfWeekRule("thu", "thursday block", true,
		domain.NewWeekdaySet(time.Thursday))
	require.NoError(t, err)
	christmas, err := domain.NewDateRule("xmas", "christmas block", true,
		domain.CivilDate{Year: 2025, Month: time.December, Day: 25})
	require.NoError(t, err)
	set := setOf(t, thursday, christmas)

	// 2025-12-25 is a Thursday: both rules cover, both must surface
	ev := e.Evaluate(set, utc(2025, time.December, 25, 10, 0, 0))

	require.True(t, ev.Blocked)
	require.Len(t, ev.Matched, 2)
	assert.Equal(t, "thu", ev.Matched[0].ID, "matched rules keep rule-set order")
	assert.Equal(t, "xmas", ev.Matched[1].ID)
}

func TestEvaluate_DisabledRulesNeverContribute(t *testing.T) {
	e := New(Options{})
	weekend := weekendRule(t)
	weekend.Enabled = false
	night := nightRule(t)
	night.Enabled = false
	set := setOf(t, weekend, night)

	for _, instant := range []time.Time{
		utc(2025, time.December, 27, 12, 0, 0), // Saturday
		utc(2025, time.June, 2, 23, 30, 0),     // inside the night window
	} {
		ev := e.Evaluate(set, instant)
		assert.False(t, ev.Blocked, "disabled rules must be inert at %v", instant)
	}
}

func TestEvaluate_CombinedWeekendAndHoliday(t *testing.T) {
	e := New(Options{})
	holiday, err := domain.NewDateRangeRule("holiday", "year-end closure", true,
		domain.CivilDate{Year: 2025, Month: time.December, Day: 27},
		domain.CivilDate{Year: 2026, Month: time.January, Day: 4})
	require.NoError(t, err)
	set := setOf(t, weekendRule(t), holiday)

	// Saturday inside the closure: the search must skip the closure end
	// (Sunday 2026-01-04) and land on Monday 2026-01-05
	ev := e.Evaluate(set, utc(2025, time.December, 27, 10, 0, 0))

	require.True(t, ev.Blocked)
	require.Len(t, ev.Matched, 2)
	assert.Equal(t, utc(2026, time.January, 5, 0, 0, 0), ev.NextAllowed)
}

func TestEvaluate_ZeroWidthWindowBlocksNothing(t *testing.T) {
	e := New(Options{})
	noon, err := domain.NewTimeOfDay(12, 0)
	require.NoError(t, err)
	zero, err := domain.NewTimeRangeRule("zw", "empty window", true, noon, noon)
	require.NoError(t, err)
	set := setOf(t, zero)

	ev := e.Evaluate(set, utc(2025, time.June, 2, 12, 0, 0))
	assert.False(t, ev.Blocked)
}

func TestEvaluate_HorizonExhausted_Indefinite(t *testing.T) {
	e := New(Options{Horizon: 24 * time.Hour})
	long, err := domain.NewDateRangeRule("long", "multi-year freeze", true,
		domain.CivilDate{Year: 2025, Month: time.January, Day: 1},
		domain.CivilDate{Year: 2028, Month: time.January, Day: 1})
	require.NoError(t, err)
	set := setOf(t, long)

	ev := e.Evaluate(set, utc(2025, time.June, 1, 12, 0, 0))

	require.True(t, ev.Blocked)
	assert.True(t, ev.Indefinite, "a free instant past the horizon must not be reported as concrete")
	assert.True(t, ev.NextAllowed.IsZero())
}

func TestEvaluate_BusinessZoneInstants(t *testing.T) {
	// instants arrive already converted into the business zone; civil
	// arithmetic must follow that zone, not UTC
	jst := time.FixedZone("JST", 9*60*60)
	e := New(Options{})
	set := setOf(t, weekendRule(t))

	// 15:30 UTC Friday is 00:30 Saturday in JST
	at := time.Date(2025, time.December, 26, 15, 30, 0, 0, time.UTC).In(jst)
	ev := e.Evaluate(set, at)

	require.True(t, ev.Blocked)
	require.True(t, ev.HasNextAllowed())
	assert.Equal(t, time.Date(2025, time.December, 29, 0, 0, 0, 0, jst).Unix(), ev.NextAllowed.Unix())
}

func TestEvaluate_EmptyRuleSet(t *testing.T) {
	e := New(Options{})
	set := setOf(t)

	ev := e.Evaluate(set, utc(2025, time.June, 2, 12, 0, 0))
	assert.False(t, ev.Blocked)
}
