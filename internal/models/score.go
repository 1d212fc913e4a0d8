package models

// Savings score grade bands. Grade, label and color are a fixed step
// function of the total.
const (
	GradeExcellent = "A"
	GradeGood      = "B"
	GradeFair      = "C"
	GradePoor      = "D"
	GradeCritical  = "F"
)

// ScoreBreakdown holds the four 0-25 point components of the savings
// score.
type ScoreBreakdown struct {
	BudgetScore  int `json:"budget_score"`
	SavingsScore int `json:"savings_score"`
	InvestScore  int `json:"invest_score"`
	BufferScore  int `json:"buffer_score"`
}

// SavingsScore is the 0-100 composite financial health grade.
type SavingsScore struct {
	Total     int            `json:"total"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Grade     string         `json:"grade"`
	Label     string         `json:"label"`
	Color     string         `json:"color"`
}
