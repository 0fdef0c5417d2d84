package domain

import "time"

// Evaluation is the outcome of evaluating a rule set at one instant.
// Pure value type, no external dependencies.
type Evaluation struct {
	// Blocked is true when at least one enabled rule covers the instant.
	Blocked bool
	// Matched lists every enabled rule covering the instant, in rule-set
	// order. A moment can be blocked by several overlapping rules at
	// once and all reasons must surface, not just the first.
	Matched []Rule
	// NextAllowed is the first instant at which no enabled rule covers,
	// when one exists within the search horizon. Zero when not blocked
	// or when the block is indefinite.
	NextAllowed time.Time
	// Indefinite is true when no free instant exists within the search
	// horizon; callers display "no scheduled end" rather than a
	// fabricated concrete time.
	Indefinite bool
}

// Allowed is a convenience accessor.
func (e Evaluation) Allowed() bool { return !e.Blocked }

// HasNextAllowed reports whether a concrete next free instant was found.
func (e Evaluation) HasNextAllowed() bool {
	return e.Blocked && !e.Indefinite && !e.NextAllowed.IsZero()
}

// EmptyEvaluation returns a not-blocked evaluation.
func EmptyEvaluation() Evaluation { return Evaluation{} }
