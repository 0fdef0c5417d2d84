package eligibility

import (
	"fmt"

	"github.com/yufyaj/form-sales-sys-sub000/internal/nosend/domain"
)

// Describe renders a matched rule as one human-readable sentence for the
// display collaborator. Each simultaneously-active rule gets its own
// sentence so every reason can be shown at once.
func Describe(r domain.Rule) string {
	switch r.Kind {
	case domain.RuleKindDayOfWeek:
		if r.Days.IsEmpty() {
			return fmt.Sprintf("%s: no weekdays selected, sending is not restricted (day-of-week rule)", r.Name)
		}
		return fmt.Sprintf("%s: sending is blocked all day on %s (day-of-week rule)", r.Name, r.Days)
	case domain.RuleKindTimeRange:
		if r.Start == r.End {
			return fmt.Sprintf("%s: empty time window, sending is not restricted (time-window rule)", r.Name)
		}
		if r.End < r.Start {
			return fmt.Sprintf("%s: sending is blocked from %s to %s the next day (time-window rule)", r.Name, r.Start, r.End)
		}
		return fmt.Sprintf("%s: sending is blocked from %s to %s each day (time-window rule)", r.Name, r.Start, r.End)
	case domain.RuleKindDate:
		return fmt.Sprintf("%s: sending is blocked for the whole day of %s (single-date rule)", r.Name, r.Date)
	case domain.RuleKindDateRange:
		return fmt.Sprintf("%s: sending is blocked from %s through %s (date-range rule)", r.Name, r.StartDate, r.EndDate)
	default:
		return fmt.Sprintf("%s: unrecognized rule kind", r.Name)
	}
}
