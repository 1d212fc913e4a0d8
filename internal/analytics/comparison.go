package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
)

// ComputeMonthStats aggregates the transactions inside a range into one
// side of a comparison.
func ComputeMonthStats(transactions []models.Transaction, r Range) models.MonthStats {
	income := decimal.Zero
	expenses := decimal.Zero
	count := 0

	for i := range transactions {
		t := &transactions[i]
		if !InRange(t.Date, r) {
			continue
		}
		count++
		switch t.Type {
		case models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	return models.MonthStats{
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
		Count:    count,
	}
}

// ComputeComparison builds a period-over-period delta report. The current
// range is selected by mode; the prior range is always the canonical last
// calendar month, even when the current range is custom. Comparing a
// custom range against the month before that range would arguably be more
// useful, but the prior-is-last-month behavior is a user-visible contract
// and changing it silently would break stored expectations.
func ComputeComparison(transactions []models.Transaction, mode string, custom *Range, now time.Time) models.Comparison {
	currentRange := CurrentMonthRange(now)
	switch mode {
	case models.ComparisonModeLastMonth:
		currentRange = PreviousMonthRange(now)
	case models.ComparisonModeCustom:
		if custom != nil {
			currentRange = *custom
		}
	}

	current := ComputeMonthStats(transactions, currentRange)
	prior := ComputeMonthStats(transactions, PreviousMonthRange(now))

	return models.Comparison{
		Current:      current,
		Prior:        prior,
		IncomeDelta:  pctChange(current.Income, prior.Income),
		ExpenseDelta: pctChange(current.Expenses, prior.Expenses),
		NetDelta:     pctChange(current.Net, prior.Net.Abs()),
	}
}

// pctChange is (a-b)/|b|*100 with a zero base guarded to 0.
func pctChange(a, b decimal.Decimal) float64 {
	if b.IsZero() {
		return 0
	}
	pct, _ := a.Sub(b).Div(b.Abs()).Mul(oneHundred).Float64()
	return pct
}
