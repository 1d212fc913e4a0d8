package models

import "github.com/shopspring/decimal"

// Stats is the core derived record every other analytics consumer reads.
// It is computed from the full transaction log and the income target,
// never persisted.
//
// Totals are exact decimal sums. Ratios are percentages with guarded
// division: any zero denominator yields 0, never NaN or Inf.
type Stats struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	TotalInvestments decimal.Decimal `json:"total_investments"`
	TotalOutflow     decimal.Decimal `json:"total_outflow"`
	Balance          decimal.Decimal `json:"balance"`

	// SavingsRate is (income - expenses) / income * 100, one decimal.
	// Investments are deliberately not subtracted here; Balance nets
	// them out instead.
	SavingsRate float64 `json:"savings_rate"`

	// IncomeAchievement is income as a percentage of the income target,
	// capped at 100.
	IncomeAchievement float64 `json:"income_achievement"`

	// 70/20/10 allocation of the income target.
	SuggestedExpenseLimit   decimal.Decimal `json:"suggested_expense_limit"`
	SuggestedInvestmentGoal decimal.Decimal `json:"suggested_investment_goal"`
	SuggestedBuffer         decimal.Decimal `json:"suggested_buffer"`

	// Actual / suggested * 100 for each allocation band.
	ExpenseVsLogic float64 `json:"expense_vs_logic"`
	InvestVsLogic  float64 `json:"invest_vs_logic"`
	BufferVsLogic  float64 `json:"buffer_vs_logic"`
}

// MonthBucket is one calendar month's aggregated income and expense
// totals, used for trend series.
type MonthBucket struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
