package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"expensetracker/internal/models"
)

type StatsTestSuite struct {
	suite.Suite
	investmentCat models.Category
	expenseCat    models.Category
	incomeCat     models.Category
}

func TestStatsSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (s *StatsTestSuite) SetupTest() {
	s.investmentCat = models.Category{ID: uuid.New(), Name: "Investment", Kind: models.CategoryKindInvestment}
	s.expenseCat = models.Category{ID: uuid.New(), Name: "Food", Kind: models.CategoryKindExpense}
	s.incomeCat = models.Category{ID: uuid.New(), Name: "Salary", Kind: models.CategoryKindIncome}
}

func (s *StatsTestSuite) categories() []models.Category {
	return []models.Category{s.investmentCat, s.expenseCat, s.incomeCat}
}

func newTransaction(txType string, amount float64, categoryID *uuid.UUID, date string) models.Transaction {
	return models.Transaction{
		ID:         uuid.New(),
		Title:      "txn",
		Amount:     decimal.NewFromFloat(amount),
		Type:       txType,
		CategoryID: categoryID,
		Date:       date,
	}
}

func (s *StatsTestSuite) TestComputeStats_InvestmentCarveOut() {
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeIncome, 80000, &s.incomeCat.ID, "2026-05-01"),
		newTransaction(models.TransactionTypeExpense, 16000, &s.investmentCat.ID, "2026-05-05"),
		newTransaction(models.TransactionTypeExpense, 40000, &s.expenseCat.ID, "2026-05-10"),
	}

	stats := ComputeStats(transactions, s.categories(), decimal.NewFromInt(75000))

	s.True(stats.TotalIncome.Equal(decimal.NewFromInt(80000)))
	s.True(stats.TotalInvestments.Equal(decimal.NewFromInt(16000)))
	s.True(stats.TotalExpenses.Equal(decimal.NewFromInt(40000)), "investment outflow must not count as expense")
	s.True(stats.TotalOutflow.Equal(decimal.NewFromInt(56000)))
	s.True(stats.Balance.Equal(decimal.NewFromInt(24000)))
	s.Equal(50.0, stats.SavingsRate, "savings rate ignores investments: (80000-40000)/80000")
}

func (s *StatsTestSuite) TestComputeStats_SuggestedAllocations() {
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeIncome, 80000, &s.incomeCat.ID, "2026-05-01"),
		newTransaction(models.TransactionTypeExpense, 16000, &s.investmentCat.ID, "2026-05-05"),
		newTransaction(models.TransactionTypeExpense, 40000, &s.expenseCat.ID, "2026-05-10"),
	}

	stats := ComputeStats(transactions, s.categories(), decimal.NewFromInt(75000))

	s.True(stats.SuggestedExpenseLimit.Equal(decimal.NewFromInt(52500)), "70% of target")
	s.True(stats.SuggestedInvestmentGoal.Equal(decimal.NewFromInt(15000)), "20% of target")
	s.True(stats.SuggestedBuffer.Equal(decimal.NewFromInt(7500)), "10% of target")

	s.InDelta(76.19, stats.ExpenseVsLogic, 0.01)
	s.InDelta(106.67, stats.InvestVsLogic, 0.01)
	s.InDelta(320.0, stats.BufferVsLogic, 0.01)
	s.Equal(100.0, stats.IncomeAchievement, "achievement is capped at 100")
}

func (s *StatsTestSuite) TestComputeStats_IncomeTypedInvestmentCountsBoth() {
	// A dividend logged as income inside an investment category counts
	// toward both income and investments.
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeIncome, 2000, &s.investmentCat.ID, "2026-05-03"),
	}

	stats := ComputeStats(transactions, s.categories(), decimal.NewFromInt(75000))

	s.True(stats.TotalIncome.Equal(decimal.NewFromInt(2000)))
	s.True(stats.TotalInvestments.Equal(decimal.NewFromInt(2000)))
	s.True(stats.TotalExpenses.Equal(decimal.Zero))
}

func (s *StatsTestSuite) TestComputeStats_UncategorizedExpense() {
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeExpense, 500, nil, "2026-05-03"),
	}

	stats := ComputeStats(transactions, s.categories(), decimal.NewFromInt(75000))

	s.True(stats.TotalExpenses.Equal(decimal.NewFromInt(500)))
	s.True(stats.TotalInvestments.Equal(decimal.Zero))
}

func (s *StatsTestSuite) TestComputeStats_ZeroIncome() {
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeExpense, 1200, &s.expenseCat.ID, "2026-05-03"),
	}

	stats := ComputeStats(transactions, s.categories(), decimal.NewFromInt(75000))

	s.Equal(0.0, stats.SavingsRate, "zero income must not divide")
	s.Equal(0.0, stats.IncomeAchievement)
	s.True(stats.Balance.Equal(decimal.NewFromInt(-1200)))
}

func (s *StatsTestSuite) TestComputeStats_ZeroIncomeTarget() {
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeIncome, 50000, &s.incomeCat.ID, "2026-05-01"),
		newTransaction(models.TransactionTypeExpense, 10000, &s.expenseCat.ID, "2026-05-02"),
	}

	stats := ComputeStats(transactions, s.categories(), decimal.Zero)

	s.Equal(0.0, stats.IncomeAchievement)
	s.Equal(0.0, stats.ExpenseVsLogic)
	s.Equal(0.0, stats.InvestVsLogic)
	s.Equal(0.0, stats.BufferVsLogic)
	s.Equal(80.0, stats.SavingsRate, "savings rate does not depend on the target")
}

func (s *StatsTestSuite) TestComputeStats_EmptyLog() {
	stats := ComputeStats(nil, s.categories(), decimal.NewFromInt(75000))

	s.True(stats.TotalIncome.Equal(decimal.Zero))
	s.True(stats.TotalOutflow.Equal(decimal.Zero))
	s.Equal(0.0, stats.SavingsRate)
	s.True(stats.SuggestedExpenseLimit.Equal(decimal.NewFromInt(52500)), "allocations derive from the target alone")
}

func (s *StatsTestSuite) TestComputeStats_SavingsRateRounding() {
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeIncome, 30000, &s.incomeCat.ID, "2026-05-01"),
		newTransaction(models.TransactionTypeExpense, 10000, &s.expenseCat.ID, "2026-05-02"),
	}

	stats := ComputeStats(transactions, s.categories(), decimal.NewFromInt(75000))

	s.Equal(66.7, stats.SavingsRate, "rounded to one decimal")
}
