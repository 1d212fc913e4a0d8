package models

import "github.com/shopspring/decimal"

// Forecast is the current-month cash flow projection. Pace to date is
// extrapolated linearly over the whole month; projected values are
// rounded to whole units.
type Forecast struct {
	IncomeToDate     decimal.Decimal `json:"income_to_date"`
	ExpenseToDate    decimal.Decimal `json:"expense_to_date"`
	ProjectedIncome  int64           `json:"projected_income"`
	ProjectedExpense int64           `json:"projected_expense"`
	ProjectedSavings int64           `json:"projected_savings"`
	DailySpendRate   int64           `json:"daily_spend_rate"`
	DaysLeft         int             `json:"days_left"`
	RemainingBudget  decimal.Decimal `json:"remaining_budget"`
}
