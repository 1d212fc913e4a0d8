package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"expensetracker/internal/models"
)

type NetWorthTestSuite struct {
	suite.Suite
}

func TestNetWorthSuite(t *testing.T) {
	suite.Run(t, new(NetWorthTestSuite))
}

func (s *NetWorthTestSuite) TestComputeNetWorth() {
	assets := []models.Asset{
		{Name: "Savings Account", Value: decimal.NewFromInt(150000)},
		{Name: "Brokerage", Value: decimal.NewFromInt(50000)},
	}
	liabilities := []models.Liability{
		{Name: "Car Loan", Value: decimal.NewFromInt(80000)},
	}

	summary := ComputeNetWorth(assets, liabilities)

	s.True(summary.TotalAssets.Equal(decimal.NewFromInt(200000)))
	s.True(summary.TotalLiabilities.Equal(decimal.NewFromInt(80000)))
	s.True(summary.NetWorth.Equal(decimal.NewFromInt(120000)))
}

func (s *NetWorthTestSuite) TestComputeNetWorth_Empty() {
	summary := ComputeNetWorth(nil, nil)

	s.True(summary.NetWorth.Equal(decimal.Zero))
}

func (s *NetWorthTestSuite) TestComputeNetWorth_LiabilitiesExceedAssets() {
	liabilities := []models.Liability{
		{Name: "Mortgage", Value: decimal.NewFromInt(300000)},
	}

	summary := ComputeNetWorth(nil, liabilities)

	s.True(summary.NetWorth.Equal(decimal.NewFromInt(-300000)))
}

func (s *NetWorthTestSuite) TestNetWorthTrend_SnapshotsAndLiveCurrent() {
	now := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)
	history := []models.NetWorthSnapshot{
		{Month: "Feb 26", NetWorth: decimal.NewFromInt(90000)},
		{Month: "Apr 26", NetWorth: decimal.NewFromInt(110000)},
		// A stale snapshot for the current month must lose to the live
		// value.
		{Month: "May 26", NetWorth: decimal.NewFromInt(1)},
	}
	live := decimal.NewFromInt(120000)

	trend := NetWorthTrend(nil, history, live, 4, now)

	s.Require().Len(trend, 4)
	s.Equal("Feb 26", trend[0].Label)
	s.Equal("Mar 26", trend[1].Label)
	s.Equal("Apr 26", trend[2].Label)
	s.Equal("May 26", trend[3].Label)

	s.True(trend[0].NetWorth.Equal(decimal.NewFromInt(90000)))
	s.True(trend[1].NetWorth.Equal(decimal.Zero), "a month without a snapshot reads zero, never interpolated")
	s.True(trend[2].NetWorth.Equal(decimal.NewFromInt(110000)))
	s.True(trend[3].NetWorth.Equal(live), "the current month is always the live value")
}

func (s *NetWorthTestSuite) TestNetWorthTrend_NoHistory() {
	now := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)
	live := decimal.NewFromInt(5000)

	trend := NetWorthTrend(nil, nil, live, 3, now)

	s.Require().Len(trend, 3)
	s.True(trend[0].NetWorth.Equal(decimal.Zero))
	s.True(trend[1].NetWorth.Equal(decimal.Zero))
	s.True(trend[2].NetWorth.Equal(live))
}

func (s *NetWorthTestSuite) TestNetWorthTrend_ZeroMonths() {
	now := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)

	trend := NetWorthTrend(nil, nil, decimal.NewFromInt(5000), 0, now)

	s.Nil(trend)
}
