package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
)

// ComputeInsights evaluates the fixed rule battery against stats,
// month-over-month deltas and per-category spend. Rule families run in a
// fixed order and the list is truncated to MaxInsights, so the most
// structural findings always survive the cap.
func ComputeInsights(transactions []models.Transaction, categories []models.Category, stats models.Stats, now time.Time) []models.Insight {
	insights := make([]models.Insight, 0, models.MaxInsights)

	insights = appendBudgetInsights(insights, stats)
	insights = appendSavingsRateInsights(insights, stats)
	insights = appendMonthOverMonthInsights(insights, transactions, now)
	insights = appendCategorySpikeInsights(insights, transactions, categories, now)
	insights = appendBufferInsights(insights, stats)
	insights = appendInvestmentNudges(insights, stats)

	if len(insights) > models.MaxInsights {
		insights = insights[:models.MaxInsights]
	}
	return insights
}

// Rule 1: budget alert. Exceeding the 70% cap and approaching it are
// mutually exclusive.
func appendBudgetInsights(insights []models.Insight, stats models.Stats) []models.Insight {
	if stats.ExpenseVsLogic > 100 {
		return append(insights, models.Insight{
			ID:    "budget-exceeded",
			Type:  models.InsightTypeDanger,
			Emoji: "🚨",
			Title: "Budget Exceeded",
			Message: fmt.Sprintf("Your expenses (%s) have exceeded the recommended 70%% rule cap of %s.",
				formatAmount(stats.TotalExpenses), formatAmount(stats.SuggestedExpenseLimit)),
		})
	}
	if stats.ExpenseVsLogic > 80 {
		return append(insights, models.Insight{
			ID:    "budget-warning",
			Type:  models.InsightTypeWarning,
			Emoji: "⚠️",
			Title: "Approaching Budget Limit",
			Message: fmt.Sprintf("You've used %.0f%% of your recommended expense budget. Slow down spending.",
				stats.ExpenseVsLogic),
		})
	}
	return insights
}

// Rule 2: savings rate bands, only meaningful with income.
func appendSavingsRateInsights(insights []models.Insight, stats models.Stats) []models.Insight {
	if !stats.TotalIncome.IsPositive() {
		return insights
	}
	switch {
	case stats.SavingsRate >= 30:
		insights = append(insights, models.Insight{
			ID:    "saving-great",
			Type:  models.InsightTypeSuccess,
			Emoji: "🎉",
			Title: "Excellent Savings Rate",
			Message: fmt.Sprintf("Your savings rate is %.1f%% — well above the recommended 20%%. Keep it up!",
				stats.SavingsRate),
		})
	case stats.SavingsRate >= 0 && stats.SavingsRate < 10:
		insights = append(insights, models.Insight{
			ID:    "saving-low",
			Type:  models.InsightTypeWarning,
			Emoji: "📉",
			Title: "Low Savings Rate",
			Message: fmt.Sprintf("You're saving only %.1f%% of income. Aim for at least 20%% to build financial security.",
				stats.SavingsRate),
		})
	case stats.SavingsRate < 0:
		insights = append(insights, models.Insight{
			ID:    "saving-negative",
			Type:  models.InsightTypeDanger,
			Emoji: "🔴",
			Title: "Negative Net Balance",
			Message: fmt.Sprintf("You're spending more than you earn! Net deficit: %s.",
				formatAmount(stats.Balance.Abs())),
		})
	}
	return insights
}

// Rules 3 and 4: month-over-month expense and income deltas.
func appendMonthOverMonthInsights(insights []models.Insight, transactions []models.Transaction, now time.Time) []models.Insight {
	thisMonth := CurrentMonthRange(now)
	lastMonth := PreviousMonthRange(now)

	thisIncome, thisExpense := sumByType(transactions, thisMonth)
	lastIncome, lastExpense := sumByType(transactions, lastMonth)

	if lastExpense.IsPositive() {
		pct := deltaPct(thisExpense, lastExpense)
		if pct > 20 {
			insights = append(insights, models.Insight{
				ID:    "mom-expense-spike",
				Type:  models.InsightTypeWarning,
				Emoji: "📊",
				Title: "Expense Spike Detected",
				Message: fmt.Sprintf("Expenses are up %.1f%% vs last month (%s → %s).",
					pct, formatAmount(lastExpense), formatAmount(thisExpense)),
			})
		} else if pct < -15 {
			insights = append(insights, models.Insight{
				ID:    "mom-expense-down",
				Type:  models.InsightTypeSuccess,
				Emoji: "📉",
				Title: "Spending Reduced",
				Message: fmt.Sprintf("Great control! Expenses dropped %.1f%% vs last month.",
					math.Abs(pct)),
			})
		}
	}

	if lastIncome.IsPositive() && thisIncome.IsPositive() {
		pct := deltaPct(thisIncome, lastIncome)
		if pct > 10 {
			insights = append(insights, models.Insight{
				ID:    "mom-income-up",
				Type:  models.InsightTypeSuccess,
				Emoji: "💹",
				Title: "Income Growing",
				Message: fmt.Sprintf("Income rose %.1f%% month-over-month. Consider allocating the extra to investments.",
					pct),
			})
		}
	}

	return insights
}

// Rule 5: per-category spikes. Fan-out is unbounded here; the global cap
// truncates. Outflow categories only, since investment categories spend
// money too and a doubled SIP is still worth a look.
func appendCategorySpikeInsights(insights []models.Insight, transactions []models.Transaction, categories []models.Category, now time.Time) []models.Insight {
	thisMonth := CurrentMonthRange(now)
	lastMonth := PreviousMonthRange(now)

	for i := range categories {
		cat := &categories[i]
		if !cat.IsOutflowKind() {
			continue
		}

		thisSpend := sumByCategory(transactions, cat.ID, thisMonth)
		lastSpend := sumByCategory(transactions, cat.ID, lastMonth)

		if lastSpend.IsPositive() && thisSpend.Div(lastSpend).GreaterThan(decimal.NewFromInt(2)) {
			insights = append(insights, models.Insight{
				ID:    "cat-spike-" + cat.ID.String(),
				Type:  models.InsightTypeWarning,
				Emoji: cat.Icon,
				Title: fmt.Sprintf("%s Spending Doubled", cat.Name),
				Message: fmt.Sprintf("%s spending is 2x compared to last month (%s → %s).",
					cat.Name, formatAmount(lastSpend), formatAmount(thisSpend)),
			})
		}
	}
	return insights
}

// Rule 6: emergency buffer coverage in months of expenses.
func appendBufferInsights(insights []models.Insight, stats models.Stats) []models.Insight {
	bufferMonths := 0.0
	if stats.TotalExpenses.IsPositive() {
		bufferMonths, _ = stats.Balance.Div(stats.TotalExpenses).Float64()
	}

	if bufferMonths < 1 && stats.Balance.IsPositive() {
		return append(insights, models.Insight{
			ID:      "buffer-low",
			Type:    models.InsightTypeWarning,
			Emoji:   "🛡️",
			Title:   "Build Emergency Fund",
			Message: "Your buffer covers less than 1 month of expenses. Aim for 3-6 months.",
		})
	}
	if bufferMonths >= 3 {
		return append(insights, models.Insight{
			ID:    "buffer-good",
			Type:  models.InsightTypeSuccess,
			Emoji: "🛡️",
			Title: "Emergency Fund Strong",
			Message: fmt.Sprintf("Your buffer covers %.1f months of expenses — you're well protected.",
				bufferMonths),
		})
	}
	return insights
}

// Rules 7 and 8: investment nudges.
func appendInvestmentNudges(insights []models.Insight, stats models.Stats) []models.Insight {
	if stats.TotalIncome.IsPositive() && stats.TotalInvestments.IsZero() {
		insights = append(insights, models.Insight{
			ID:    "invest-none",
			Type:  models.InsightTypeInfo,
			Emoji: "💡",
			Title: "Start Investing",
			Message: fmt.Sprintf("You haven't logged any investments this period. Even %s (20%% of goal) can compound significantly.",
				formatAmount(stats.SuggestedInvestmentGoal)),
		})
	}

	if stats.SavingsRate > 50 && stats.TotalInvestments.LessThan(stats.SuggestedInvestmentGoal) {
		insights = append(insights, models.Insight{
			ID:    "over-saving",
			Type:  models.InsightTypeInfo,
			Emoji: "🏦",
			Title: "High Cash Holdings",
			Message: fmt.Sprintf("You're saving %.1f%% but investments are low. Consider deploying idle cash into investments.",
				stats.SavingsRate),
		})
	}
	return insights
}

func sumByType(transactions []models.Transaction, r Range) (income, expense decimal.Decimal) {
	income = decimal.Zero
	expense = decimal.Zero
	for i := range transactions {
		t := &transactions[i]
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
	return income, expense
}

func sumByCategory(transactions []models.Transaction, categoryID uuid.UUID, r Range) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		t := &transactions[i]
		if t.CategoryID == nil || *t.CategoryID != categoryID {
			continue
		}
		if !InRange(t.Date, r) {
			continue
		}
		total = total.Add(t.Amount)
	}
	return total
}

// deltaPct mirrors the one-decimal rounding the insight messages show, so
// threshold comparisons and displayed values never disagree.
func deltaPct(current, last decimal.Decimal) float64 {
	pct, _ := current.Sub(last).Div(last).Mul(oneHundred).Round(1).Float64()
	return pct
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(0)
}
