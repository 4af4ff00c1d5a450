package alerts

import (
	"sort"
	"time"

	"github.com/KromaEnergia/api-contracts/internal/contract"
)

// Alert is a contract overview annotated with how many days remain until
// its due date. Negative means overdue.
type Alert struct {
	contract.Overview
	DaysUntilDueDate int `json:"days_until_due_date"`
}

// Deadline is the exclusive upper bound for a days_filter: contracts due
// within the next daysFilter days (inclusive) pass, so the cutoff sits at
// the start of the day after the last included one. No lower bound is
// applied, so overdue contracts always pass.
func Deadline(today time.Time, daysFilter int) time.Time {
	return truncateToDay(today).AddDate(0, 0, daysFilter+1)
}

// Annotate computes days_until_due_date for each overview and sorts the
// result ascending, overdue and soonest first.
func Annotate(overviews []contract.Overview, today time.Time) []Alert {
	day := truncateToDay(today)
	alerts := make([]Alert, 0, len(overviews))
	for _, o := range overviews {
		due := truncateToDay(o.DueDate)
		alerts = append(alerts, Alert{
			Overview:         o,
			DaysUntilDueDate: int(due.Sub(day).Hours() / 24),
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysUntilDueDate < alerts[j].DaysUntilDueDate
	})
	return alerts
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
