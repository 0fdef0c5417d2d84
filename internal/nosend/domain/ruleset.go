package domain

import "fmt"

// RuleSet is an ordered snapshot of no-send rules owned by the
// persistence collaborator. The evaluator only borrows it for the
// duration of one call and never mutates it.
//
// Revision identifies the persisted generation of the set; the owning
// collaborator bumps it on every edit, which lets verdict caches key
// their entries without inspecting rule contents.
type RuleSet struct {
	Rules    []Rule
	Revision uint64
}

// NewRuleSet constructs a RuleSet after validating every rule. A rule
// set with contradictory rule data never reaches evaluation.
func NewRuleSet(revision uint64, rules ...Rule) (RuleSet, error) {
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return RuleSet{}, fmt.Errorf("rule %d (%s): %w", i, r.Name, err)
		}
	}
	return RuleSet{Rules: rules, Revision: revision}, nil
}

// Enabled returns the enabled rules in their configured order.
// Disabled rules stay in the set for display but are inert.
func (s RuleSet) Enabled() []Rule {
	out := make([]Rule, 0, len(s.Rules))
	for _, r := range s.Rules {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the total number of rules, enabled or not.
func (s RuleSet) Len() int { return len(s.Rules) }
