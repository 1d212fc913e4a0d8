package analytics

import (
	"time"

	"expensetracker/internal/models"
)

// ComputeAchievements evaluates the five fixed badges. Streak badges
// require strictly positive net cash flow in every trailing month: a
// month with no transactions nets to zero, which does not count, so an
// empty history earns nothing.
func ComputeAchievements(transactions []models.Transaction, stats models.Stats, now time.Time) []models.Achievement {
	return []models.Achievement{
		{
			ID:          models.AchievementBudget3,
			Emoji:       "🏆",
			Title:       "3 Months Budget Control",
			Description: "Maintained positive savings for 3 consecutive months",
			Earned:      positiveNetStreak(transactions, 3, now),
		},
		{
			ID:          models.AchievementEmergency,
			Emoji:       "🛡️",
			Title:       "Emergency Fund Complete",
			Description: "Emergency buffer exceeds 100% of target",
			Earned:      stats.BufferVsLogic >= 100,
		},
		{
			ID:          models.AchievementInvest20,
			Emoji:       "📈",
			Title:       "Investment Above 20%",
			Description: "Investments reached 20%+ of income target",
			Earned:      stats.InvestVsLogic >= 100,
		},
		{
			ID:          models.AchievementSave6,
			Emoji:       "🎯",
			Title:       "6 Months Consistent Saving",
			Description: "Positive net savings for 6 months straight",
			Earned:      positiveNetStreak(transactions, 6, now),
		},
		{
			ID:          models.AchievementRate30,
			Emoji:       "✨",
			Title:       "Super Saver",
			Description: "Savings rate above 30%",
			Earned:      stats.SavingsRate >= 30,
		},
	}
}

// positiveNetStreak reports whether each of the trailing `months`
// calendar months (current month included) netted income > expenses.
func positiveNetStreak(transactions []models.Transaction, months int, now time.Time) bool {
	for i := 0; i < months; i++ {
		r := monthsBack(now, i)
		income, expense := sumByType(transactions, r)
		if !income.Sub(expense).IsPositive() {
			return false
		}
	}
	return true
}
