// Package eligibility decides whether an outbound form submission is
// currently forbidden by the configured no-send rules, why, and when it
// next becomes permitted. Evaluation is a pure function of the rule set
// and the supplied instant; the package never reads a clock.
package eligibility

import (
	"time"

	"github.com/yufyaj/form-sales-sys-sub000/internal/nosend/common/log"
	"github.com/yufyaj/form-sales-sys-sub000/internal/nosend/domain"
)

// DefaultHorizon is how far ahead the next-allowed search looks before
// declaring a block indefinite. Legitimate finite schedules resolve in
// days; two years is generous enough that hitting it means the rule set
// has no scheduled end.
const DefaultHorizon = 2 * 365 * 24 * time.Hour

// boundaryStepsPerRule caps loop iterations per enabled rule. Each rule
// contributes at most a handful of boundaries per day, so four per day
// across a year of days is far beyond any real search. The cap exists
// purely to guarantee termination.
const boundaryStepsPerRule = 4 * 366

// Evaluator composes the enabled rules of a rule set into a single
// verdict per instant. Safe for concurrent use: every call only reads
// its inputs and allocates a fresh result.
type Evaluator struct {
	logger  log.Logger
	horizon time.Duration
}

// Options configures an Evaluator. Zero values fall back to a noop
// logger and DefaultHorizon.
type Options struct {
	Logger  log.Logger
	Horizon time.Duration
}

// New constructs an Evaluator.
func New(opts Options) *Evaluator {
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	if opts.Horizon <= 0 {
		opts.Horizon = DefaultHorizon
	}
	return &Evaluator{logger: opts.Logger, horizon: opts.Horizon}
}

// Evaluate returns the verdict for the rule set at the given instant.
// The instant must already be expressed in the business timezone; all
// civil-date arithmetic uses its location.
//
// When blocked, the search walks rule boundaries forward (never
// second-by-second scanning): the candidate instant advances to the
// nearest boundary any enabled rule produces, until either an uncovered
// candidate is found (the concrete NextAllowed), no rule has a further
// boundary, or the horizon is exhausted (Indefinite).
func (e *Evaluator) Evaluate(set domain.RuleSet, at time.Time) domain.Evaluation {
	enabled := set.Enabled()

	var matched []domain.Rule
	for _, r := range enabled {
		if r.Covers(at) {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return domain.EmptyEvaluation()
	}

	limit := at.Add(e.horizon)
	maxSteps := boundaryStepsPerRule * len(enabled)
	candidate := at

	for step := 0; step < maxSteps; step++ {
		next, ok := nearestBoundary(enabled, candidate)
		if !ok {
			// no rule's coverage ever changes again; the block has no
			// scheduled end
			return domain.Evaluation{Blocked: true, Matched: matched, Indefinite: true}
		}
		candidate = next
		if candidate.After(limit) {
			e.logger.Warn(map[string]any{
				"at":      at,
				"horizon": e.horizon.String(),
				"rules":   len(enabled),
			}, "No free instant within search horizon")
			return domain.Evaluation{Blocked: true, Matched: matched, Indefinite: true}
		}
		if !anyCovers(enabled, candidate) {
			return domain.Evaluation{Blocked: true, Matched: matched, NextAllowed: candidate}
		}
	}

	e.logger.Warn(map[string]any{
		"at":    at,
		"steps": maxSteps,
		"rules": len(enabled),
	}, "Boundary step cap reached before a free instant")
	return domain.Evaluation{Blocked: true, Matched: matched, Indefinite: true}
}

// nearestBoundary returns the smallest boundary strictly after the pivot
// across all rules, skipping rules with no further boundary.
func nearestBoundary(rules []domain.Rule, pivot time.Time) (time.Time, bool) {
	var best time.Time
	for _, r := range rules {
		b, ok := r.NextBoundary(pivot)
		if !ok {
			continue
		}
		if best.IsZero() || b.Before(best) {
			best = b
		}
	}
	return best, !best.IsZero()
}

// anyCovers reports whether any rule covers the instant.
func anyCovers(rules []domain.Rule, t time.Time) bool {
	for _, r := range rules {
		if r.Covers(t) {
			return true
		}
	}
	return false
}
