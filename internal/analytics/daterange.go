// Package analytics is the derived-analytics engine: pure computations
// that turn the raw transaction log into stats, scores, forecasts,
// comparisons, goal projections, insights and achievements.
//
// Every function here is referentially transparent. Inputs are never
// mutated, the system clock is never read (callers pass a reference
// time), and malformed input degrades to zero values instead of
// returning errors.
package analytics

import (
	"time"

	"expensetracker/internal/models"

	"github.com/shopspring/decimal"
)

// MonthLabelLayout renders a month bucket label, e.g. "Jan 25". Snapshot
// history is keyed by this label, so it must stay stable.
const MonthLabelLayout = "Jan 06"

// Range is an inclusive calendar-day interval.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MonthRange returns the calendar month containing t, from the first day
// to the last day inclusive.
func MonthRange(t time.Time) Range {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Range{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// CurrentMonthRange returns the month range anchored to now.
func CurrentMonthRange(now time.Time) Range {
	return MonthRange(now)
}

// PreviousMonthRange returns the calendar month immediately before now's.
func PreviousMonthRange(now time.Time) Range {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return MonthRange(firstOfMonth.AddDate(0, -1, 0))
}

// monthsBack returns the month range i calendar months before now's
// month. Arithmetic runs on the first of the month so short months never
// skew the walk backwards.
func monthsBack(now time.Time, i int) Range {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return MonthRange(firstOfMonth.AddDate(0, -i, 0))
}

// InRange reports whether an ISO calendar-date string falls within the
// range, inclusive on both ends. Malformed dates are simply not in any
// range; parsing never surfaces an error to the caller.
func InRange(dateStr string, r Range) bool {
	d, err := time.ParseInLocation(models.DateLayout, dateStr, r.Start.Location())
	if err != nil {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

// MonthLabel renders the bucket label for the month containing t.
func MonthLabel(t time.Time) string {
	return t.Format(MonthLabelLayout)
}

// BucketByMonth aggregates transactions into n consecutive calendar-month
// buckets ending at the current month, oldest first.
func BucketByMonth(transactions []models.Transaction, n int, now time.Time) []models.MonthBucket {
	buckets := make([]models.MonthBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		r := monthsBack(now, i)
		income := decimal.Zero
		expense := decimal.Zero
		for j := range transactions {
			t := &transactions[j]
			if !InRange(t.Date, r) {
				continue
			}
			switch t.Type {
			case models.TransactionTypeIncome:
				income = income.Add(t.Amount)
			case models.TransactionTypeExpense:
				expense = expense.Add(t.Amount)
			}
		}
		buckets = append(buckets, models.MonthBucket{
			Label:   MonthLabel(r.Start),
			Income:  income,
			Expense: expense,
		})
	}
	return buckets
}
