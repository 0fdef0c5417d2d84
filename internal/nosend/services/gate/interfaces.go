package gate

import (
	"time"

	"github.com/yufyaj/form-sales-sys-sub000/internal/nosend/domain"
)

// Evaluator produces a verdict for a rule set at an explicit instant.
type Evaluator interface {
	Evaluate(set domain.RuleSet, at time.Time) domain.Evaluation
}

// VerdictCache memoizes evaluations for polling callers. Keys encode the
// rule-set revision and the query second, so edits to the rule set
// naturally miss and stale verdicts age out of the LRU.
type VerdictCache interface {
	Get(key string) (domain.Evaluation, bool)
	Put(key string, ev domain.Evaluation)
}
