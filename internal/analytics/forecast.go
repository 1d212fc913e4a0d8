package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
)

// ComputeForecast projects the current month's cash flow from pace to
// date. The extrapolation is deliberately a straight line, with no
// seasonality and no smoothing, so a spend-heavy first week reads as an
// alarming month, which is the intended signal.
func ComputeForecast(transactions []models.Transaction, now time.Time) models.Forecast {
	thisMonth := CurrentMonthRange(now)
	dayOfMonth := now.Day()
	daysInMonth := thisMonth.End.Day()

	incomeToDate := decimal.Zero
	expenseToDate := decimal.Zero
	for i := range transactions {
		t := &transactions[i]
		if !InRange(t.Date, thisMonth) {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			incomeToDate = incomeToDate.Add(t.Amount)
		case models.TransactionTypeExpense:
			expenseToDate = expenseToDate.Add(t.Amount)
		}
	}

	days := decimal.NewFromInt(int64(dayOfMonth))
	monthDays := decimal.NewFromInt(int64(daysInMonth))

	dailySpendRate := decimal.Zero
	dailyIncomeRate := decimal.Zero
	if dayOfMonth > 0 {
		dailySpendRate = expenseToDate.Div(days)
		dailyIncomeRate = incomeToDate.Div(days)
	}

	projectedExpense := dailySpendRate.Mul(monthDays)
	projectedIncome := dailyIncomeRate.Mul(monthDays)
	projectedSavings := projectedIncome.Sub(projectedExpense)

	remainingBudget := projectedIncome.Sub(expenseToDate)
	if remainingBudget.IsNegative() {
		remainingBudget = decimal.Zero
	}

	return models.Forecast{
		IncomeToDate:     incomeToDate,
		ExpenseToDate:    expenseToDate,
		ProjectedIncome:  projectedIncome.Round(0).IntPart(),
		ProjectedExpense: projectedExpense.Round(0).IntPart(),
		ProjectedSavings: projectedSavings.Round(0).IntPart(),
		DailySpendRate:   dailySpendRate.Round(0).IntPart(),
		DaysLeft:         daysInMonth - dayOfMonth,
		RemainingBudget:  remainingBudget,
	}
}
