package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"expensetracker/internal/models"
)

type ComparisonTestSuite struct {
	suite.Suite
	now time.Time
	log []models.Transaction
}

func TestComparisonSuite(t *testing.T) {
	suite.Run(t, new(ComparisonTestSuite))
}

func (s *ComparisonTestSuite) SetupTest() {
	s.now = time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	s.log = []models.Transaction{
		// May (current)
		newTransaction(models.TransactionTypeIncome, 60000, nil, "2026-05-01"),
		newTransaction(models.TransactionTypeExpense, 30000, nil, "2026-05-10"),
		// April (prior)
		newTransaction(models.TransactionTypeIncome, 50000, nil, "2026-04-01"),
		newTransaction(models.TransactionTypeExpense, 20000, nil, "2026-04-12"),
		newTransaction(models.TransactionTypeExpense, 5000, nil, "2026-04-20"),
	}
}

func (s *ComparisonTestSuite) TestComputeMonthStats() {
	stats := ComputeMonthStats(s.log, MonthRange(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))

	s.True(stats.Income.Equal(decimal.NewFromInt(50000)))
	s.True(stats.Expenses.Equal(decimal.NewFromInt(25000)))
	s.True(stats.Net.Equal(decimal.NewFromInt(25000)))
	s.Equal(3, stats.Count)
}

func (s *ComparisonTestSuite) TestComputeComparison_ThisMonth() {
	cmp := ComputeComparison(s.log, models.ComparisonModeThisMonth, nil, s.now)

	s.True(cmp.Current.Income.Equal(decimal.NewFromInt(60000)))
	s.True(cmp.Prior.Income.Equal(decimal.NewFromInt(50000)))
	s.InDelta(20.0, cmp.IncomeDelta, 0.001)
	s.InDelta(20.0, cmp.ExpenseDelta, 0.001, "30000 vs 25000")
	s.InDelta(20.0, cmp.NetDelta, 0.001, "30000 vs 25000 net")
}

func (s *ComparisonTestSuite) TestComputeComparison_LastMonthComparesToItself() {
	// In lastMonth mode both sides cover April, so every delta is zero.
	cmp := ComputeComparison(s.log, models.ComparisonModeLastMonth, nil, s.now)

	s.True(cmp.Current.Income.Equal(cmp.Prior.Income))
	s.Equal(0.0, cmp.IncomeDelta)
	s.Equal(0.0, cmp.ExpenseDelta)
	s.Equal(0.0, cmp.NetDelta)
}

func (s *ComparisonTestSuite) TestComputeComparison_CustomRangePriorStaysLastMonth() {
	// The prior side is always the canonical last calendar month, even
	// when the current side is a custom range far in the past.
	custom := MonthRange(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	log := append(s.log,
		newTransaction(models.TransactionTypeIncome, 10000, nil, "2026-02-05"),
	)

	cmp := ComputeComparison(log, models.ComparisonModeCustom, &custom, s.now)

	s.True(cmp.Current.Income.Equal(decimal.NewFromInt(10000)))
	s.True(cmp.Prior.Income.Equal(decimal.NewFromInt(50000)), "prior is April, not January")
}

func (s *ComparisonTestSuite) TestComputeComparison_CustomModeWithoutRange() {
	cmp := ComputeComparison(s.log, models.ComparisonModeCustom, nil, s.now)

	s.True(cmp.Current.Income.Equal(decimal.NewFromInt(60000)), "nil custom range falls back to the current month")
}

func (s *ComparisonTestSuite) TestComputeComparison_ZeroPriorGuards() {
	log := []models.Transaction{
		newTransaction(models.TransactionTypeIncome, 60000, nil, "2026-05-01"),
		newTransaction(models.TransactionTypeExpense, 30000, nil, "2026-05-10"),
	}

	cmp := ComputeComparison(log, models.ComparisonModeThisMonth, nil, s.now)

	s.Equal(0, cmp.Prior.Count)
	s.Equal(0.0, cmp.IncomeDelta, "zero prior income yields no delta")
	s.Equal(0.0, cmp.ExpenseDelta, "zero prior expenses yields no delta")
	s.Equal(0.0, cmp.NetDelta)
}

func (s *ComparisonTestSuite) TestComputeComparison_NegativePriorNet() {
	log := []models.Transaction{
		// April netted -10000; May nets +5000. The delta divides by the
		// absolute prior net.
		newTransaction(models.TransactionTypeExpense, 10000, nil, "2026-04-10"),
		newTransaction(models.TransactionTypeIncome, 5000, nil, "2026-05-05"),
	}

	cmp := ComputeComparison(log, models.ComparisonModeThisMonth, nil, s.now)

	s.True(cmp.Prior.Net.Equal(decimal.NewFromInt(-10000)))
	s.InDelta(-50.0, cmp.NetDelta, 0.001, "(5000-10000)/10000")
}
