package analytics

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"expensetracker/internal/models"
)

// 70/20/10 allocation rule: the income target splits into a suggested
// expense cap, investment goal and emergency buffer.
var (
	expenseShare = decimal.NewFromFloat(0.70)
	investShare  = decimal.NewFromFloat(0.20)
	bufferShare  = decimal.NewFromFloat(0.10)
)

var oneHundred = decimal.NewFromInt(100)

// ComputeStats reduces the full transaction log into the core stats
// record. Transactions whose category is tagged with the investment kind
// are carved out of expenses and counted as investment outflow; that
// split is load-bearing for every downstream ratio.
func ComputeStats(transactions []models.Transaction, categories []models.Category, incomeTarget decimal.Decimal) models.Stats {
	investmentIDs := investmentCategoryIDs(categories)

	income := decimal.Zero
	expenses := decimal.Zero
	investments := decimal.Zero

	for i := range transactions {
		t := &transactions[i]
		isInvestment := t.CategoryID != nil && investmentIDs[*t.CategoryID]

		if isInvestment {
			investments = investments.Add(t.Amount)
		}
		switch {
		case t.Type == models.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case t.Type == models.TransactionTypeExpense && !isInvestment:
			expenses = expenses.Add(t.Amount)
		}
	}

	totalOutflow := expenses.Add(investments)
	balance := income.Sub(totalOutflow)

	savingsRate := 0.0
	if income.IsPositive() {
		savingsRate, _ = income.Sub(expenses).Div(income).Mul(oneHundred).Round(1).Float64()
	}

	incomeAchievement := 0.0
	if incomeTarget.IsPositive() {
		achieved, _ := income.Div(incomeTarget).Mul(oneHundred).Round(0).Float64()
		incomeAchievement = achieved
		if incomeAchievement > 100 {
			incomeAchievement = 100
		}
	}

	suggestedExpenseLimit := incomeTarget.Mul(expenseShare)
	suggestedInvestmentGoal := incomeTarget.Mul(investShare)
	suggestedBuffer := incomeTarget.Mul(bufferShare)

	return models.Stats{
		TotalIncome:             income,
		TotalExpenses:           expenses,
		TotalInvestments:        investments,
		TotalOutflow:            totalOutflow,
		Balance:                 balance,
		SavingsRate:             savingsRate,
		IncomeAchievement:       incomeAchievement,
		SuggestedExpenseLimit:   suggestedExpenseLimit,
		SuggestedInvestmentGoal: suggestedInvestmentGoal,
		SuggestedBuffer:         suggestedBuffer,
		ExpenseVsLogic:          ratioPct(expenses, suggestedExpenseLimit),
		InvestVsLogic:           ratioPct(investments, suggestedInvestmentGoal),
		BufferVsLogic:           ratioPct(balance, suggestedBuffer),
	}
}

// investmentCategoryIDs collects the IDs of categories tagged as
// investments.
func investmentCategoryIDs(categories []models.Category) map[uuid.UUID]bool {
	ids := make(map[uuid.UUID]bool, len(categories))
	for i := range categories {
		if categories[i].Kind == models.CategoryKindInvestment {
			ids[categories[i].ID] = true
		}
	}
	return ids
}

// ratioPct is actual / suggested * 100 with the zero denominator guarded
// to 0.
func ratioPct(actual, suggested decimal.Decimal) float64 {
	if !suggested.IsPositive() {
		return 0
	}
	pct, _ := actual.Div(suggested).Mul(oneHundred).Float64()
	return pct
}
