// Package gate is the server-side authority on send eligibility. The UI
// disables its send button from the same evaluation, but client display
// is never trusted as the sole gate: the record-creation workflow calls
// Check again at the moment the submission is actually committed.
package gate

import (
	"fmt"
	"time"

	"github.com/yufyaj/form-sales-sys-sub000/internal/nosend/common/clock"
	"github.com/yufyaj/form-sales-sys-sub000/internal/nosend/common/log"
	"github.com/yufyaj/form-sales-sys-sub000/internal/nosend/domain"
)

// Gate evaluates a rule set against the current clock reading in the
// business timezone.
type Gate struct {
	clock     clock.Clock
	evaluator Evaluator
	cache     VerdictCache
	location  *time.Location
	logger    log.Logger
}

// Options configures a Gate. Evaluator is required; Clock defaults to
// the system clock, Location to time.Local, Logger to noop, and Cache
// may be nil to disable memoization.
type Options struct {
	Clock     clock.Clock
	Evaluator Evaluator
	Cache     VerdictCache
	Location  *time.Location
	Logger    log.Logger
}

// New constructs a Gate.
func New(opts Options) *Gate {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Gate{
		clock:     opts.Clock,
		evaluator: opts.Evaluator,
		cache:     opts.Cache,
		location:  opts.Location,
		logger:    opts.Logger,
	}
}

// Check evaluates the rule set at the current instant. Verdicts are
// memoized per (revision, second): countdown UIs poll once per second
// and many sessions share the same rule set, so repeated calls within a
// second hit the cache instead of re-running the boundary search.
func (g *Gate) Check(set domain.RuleSet) domain.Evaluation {
	now := g.clock.Now().In(g.location)
	key := verdictKey(set.Revision, now)

	if g.cache != nil {
		if ev, ok := g.cache.Get(key); ok {
			return ev
		}
	}

	ev := g.evaluator.Evaluate(set, now)

	if g.cache != nil {
		g.cache.Put(key, ev)
	}
	if ev.Blocked {
		g.logger.Debug(map[string]any{
			"at":         now,
			"matched":    len(ev.Matched),
			"indefinite": ev.Indefinite,
		}, "Send blocked by no-send rules")
	}
	return ev
}

// verdictKey derives the cache key from the rule-set revision and the
// query instant truncated to the second.
func verdictKey(revision uint64, t time.Time) string {
	return fmt.Sprintf("%d:%d", revision, t.Unix())
}
