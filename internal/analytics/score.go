package analytics

import (
	"math"

	"expensetracker/internal/models"
)

// ComputeSavingsScore grades stats into a 0-100 composite. Each breakdown
// component is clamped to its 0-25 band before summing, so no single
// dimension can dominate the total.
func ComputeSavingsScore(stats models.Stats) models.SavingsScore {
	// Budget adherence: full points at or below the 70% expense cap,
	// half a point off per percent over it.
	budgetScore := clampComponent(25 - int(math.Round((stats.ExpenseVsLogic-70)*0.5)))

	// Savings rate: a 20% rate earns full points.
	savingsScore := clampComponent(int(math.Round(stats.SavingsRate / 20 * 25)))

	// Investment ratio: full points when investments meet the suggested
	// 20%-of-income goal.
	investScore := clampComponent(int(math.Round(stats.InvestVsLogic / 100 * 25)))

	// Buffer: full points when the buffer reaches its target.
	bufferScore := clampComponent(int(math.Round(math.Min(stats.BufferVsLogic, 100) / 100 * 25)))

	total := budgetScore + savingsScore + investScore + bufferScore
	if total < 0 {
		total = 0
	} else if total > 100 {
		total = 100
	}

	grade, label, color := gradeForTotal(total)

	return models.SavingsScore{
		Total: total,
		Breakdown: models.ScoreBreakdown{
			BudgetScore:  budgetScore,
			SavingsScore: savingsScore,
			InvestScore:  investScore,
			BufferScore:  bufferScore,
		},
		Grade: grade,
		Label: label,
		Color: color,
	}
}

func clampComponent(score int) int {
	if score < 0 {
		return 0
	}
	if score > 25 {
		return 25
	}
	return score
}

// gradeForTotal maps the total to its fixed grade band.
func gradeForTotal(total int) (grade, label, color string) {
	switch {
	case total >= 80:
		return models.GradeExcellent, "Excellent", "#10b981"
	case total >= 60:
		return models.GradeGood, "Good", "#6366f1"
	case total >= 40:
		return models.GradeFair, "Fair", "#f59e0b"
	case total >= 20:
		return models.GradePoor, "Poor", "#ef4444"
	default:
		return models.GradeCritical, "Critical", "#ef4444"
	}
}
