package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
)

// CompletionLabelLayout renders estimated completion months, e.g. "Mar 2027".
const CompletionLabelLayout = "Jan 2006"

// ProjectGoal enriches a goal with derived progress fields. A goal with a
// non-positive target projects to zero progress rather than failing.
func ProjectGoal(goal models.Goal, now time.Time) models.GoalProjection {
	projection := models.GoalProjection{Goal: goal}

	target := goal.TargetAmount
	current := goal.CurrentAmount

	if target.IsPositive() {
		pct, _ := current.Div(target).Mul(oneHundred).Round(1).Float64()
		if pct > 100 {
			pct = 100
		}
		projection.ProgressPct = pct
		projection.IsAchieved = current.GreaterThanOrEqual(target)
	}

	remaining := target.Sub(current)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	projection.Remaining = remaining

	if deadline, err := time.ParseInLocation(models.DateLayout, goal.Deadline, now.Location()); err == nil {
		monthsLeft := wholeMonthsBetween(now, deadline)
		projection.MonthsLeft = &monthsLeft

		if monthsLeft > 0 {
			required := remaining.Div(decimal.NewFromInt(int64(monthsLeft))).Ceil().IntPart()
			projection.RequiredMonthlySaving = &required
		}
	}

	if goal.MonthlyContribution.IsPositive() && remaining.IsPositive() {
		months := int(remaining.Div(goal.MonthlyContribution).Ceil().IntPart())
		label := now.AddDate(0, months, 0).Format(CompletionLabelLayout)
		projection.EstimatedCompletion = &label
	}

	return projection
}

// wholeMonthsBetween counts full calendar months from now to the
// deadline, floored at zero.
func wholeMonthsBetween(now, deadline time.Time) int {
	months := (deadline.Year()-now.Year())*12 + int(deadline.Month()) - int(now.Month())
	if deadline.Day() < now.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months
}
