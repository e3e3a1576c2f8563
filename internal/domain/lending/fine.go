package lending

import "time"

// FineCalculator computes overdue fines. Pure: safe to call both for a
// preview ("what would the fine be today") and for final settlement.
type FineCalculator struct {
	DailyRate float64
}

// Assess returns the whole days overdue and the resulting fine. Both are
// zero when returnedAt is on or before dueDate. Timestamps are compared at
// day granularity in UTC, matching the date-typed due_date column.
func (f FineCalculator) Assess(dueDate, returnedAt time.Time) (overdueDays int, fine float64) {
	days := int(DateOf(returnedAt).Sub(DateOf(dueDate)).Hours() / 24)
	if days <= 0 {
		return 0, 0
	}
	return days, float64(days) * f.DailyRate
}

// DateOf truncates a timestamp to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
