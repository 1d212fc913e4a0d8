package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"expensetracker/internal/models"
)

type ForecastTestSuite struct {
	suite.Suite
}

func TestForecastSuite(t *testing.T) {
	suite.Run(t, new(ForecastTestSuite))
}

func (s *ForecastTestSuite) TestComputeForecast_LinearExtrapolation() {
	// Day 10 of a 30-day month: pace to date scales by 3x.
	now := time.Date(2026, time.April, 10, 12, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeIncome, 30000, nil, "2026-04-01"),
		newTransaction(models.TransactionTypeExpense, 6000, nil, "2026-04-03"),
		newTransaction(models.TransactionTypeExpense, 3000, nil, "2026-04-09"),
	}

	forecast := ComputeForecast(transactions, now)

	s.True(forecast.IncomeToDate.Equal(decimal.NewFromInt(30000)))
	s.True(forecast.ExpenseToDate.Equal(decimal.NewFromInt(9000)))
	s.Equal(int64(90000), forecast.ProjectedIncome)
	s.Equal(int64(27000), forecast.ProjectedExpense)
	s.Equal(int64(63000), forecast.ProjectedSavings)
	s.Equal(int64(900), forecast.DailySpendRate)
	s.Equal(20, forecast.DaysLeft)
	s.True(forecast.RemainingBudget.Equal(decimal.NewFromInt(81000)), "projected income minus spend to date")
}

func (s *ForecastTestSuite) TestComputeForecast_IgnoresOtherMonths() {
	now := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeExpense, 5000, nil, "2026-03-31"),
		newTransaction(models.TransactionTypeExpense, 5000, nil, "2026-05-01"),
	}

	forecast := ComputeForecast(transactions, now)

	s.True(forecast.ExpenseToDate.Equal(decimal.Zero))
	s.Equal(int64(0), forecast.ProjectedExpense)
}

func (s *ForecastTestSuite) TestComputeForecast_EmptyMonth() {
	now := time.Date(2026, time.April, 21, 0, 0, 0, 0, time.UTC)

	forecast := ComputeForecast(nil, now)

	s.True(forecast.IncomeToDate.Equal(decimal.Zero))
	s.Equal(int64(0), forecast.ProjectedIncome)
	s.Equal(int64(0), forecast.ProjectedSavings)
	s.Equal(9, forecast.DaysLeft)
	s.True(forecast.RemainingBudget.Equal(decimal.Zero))
}

func (s *ForecastTestSuite) TestComputeForecast_OverspendClampsRemainingBudget() {
	// No income yet but heavy spending: the remaining budget never goes
	// negative.
	now := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeExpense, 12000, nil, "2026-04-02"),
	}

	forecast := ComputeForecast(transactions, now)

	s.True(forecast.RemainingBudget.Equal(decimal.Zero))
	s.Equal(int64(-72000), forecast.ProjectedSavings)
}

func (s *ForecastTestSuite) TestComputeForecast_LastDayOfMonth() {
	now := time.Date(2026, time.April, 30, 23, 0, 0, 0, time.UTC)
	transactions := []models.Transaction{
		newTransaction(models.TransactionTypeExpense, 15000, nil, "2026-04-15"),
	}

	forecast := ComputeForecast(transactions, now)

	s.Equal(0, forecast.DaysLeft)
	s.Equal(int64(15000), forecast.ProjectedExpense, "a finished month projects to itself")
	s.Equal(int64(500), forecast.DailySpendRate)
}
