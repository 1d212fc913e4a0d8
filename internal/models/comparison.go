package models

import "github.com/shopspring/decimal"

// Comparison modes select the range the "current" side of a monthly
// comparison covers.
const (
	ComparisonModeThisMonth = "thisMonth"
	ComparisonModeLastMonth = "lastMonth"
	ComparisonModeCustom    = "custom"
)

// IsValidComparisonMode checks if a comparison mode string is valid.
func IsValidComparisonMode(mode string) bool {
	return mode == ComparisonModeThisMonth || mode == ComparisonModeLastMonth || mode == ComparisonModeCustom
}

// MonthStats aggregates one period of a comparison.
type MonthStats struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
	Count    int             `json:"count"`
}

// Comparison is a period-over-period delta report. Deltas are
// percentages guarded against zero priors.
type Comparison struct {
	Current      MonthStats `json:"current"`
	Prior        MonthStats `json:"prior"`
	IncomeDelta  float64    `json:"income_delta"`
	ExpenseDelta float64    `json:"expense_delta"`
	NetDelta     float64    `json:"net_delta"`
}
