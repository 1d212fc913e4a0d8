package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expensetracker/internal/analytics"
	"expensetracker/internal/models"
	"expensetracker/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidComparisonMode = errors.New("invalid comparison mode")
	ErrMissingCustomRange    = errors.New("custom comparison mode requires a date range")
)

// DefaultTrendMonths is the number of months shown in trend views when
// the caller does not ask for a specific window.
const DefaultTrendMonths = 6

// DashboardService computes the derived analytics views over the
// persisted transaction log. All analytics are recomputed from scratch on
// every read; nothing derived is ever stored.
type DashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	settingsRepo    repositories.SettingsRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewDashboardService creates a new dashboard service. The clock is
// injected so analytics are reproducible in tests.
func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
	metrics MetricsRecorderInterface,
	now func() time.Time,
) DashboardServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		settingsRepo:    settingsRepo,
		metrics:         metrics,
		now:             now,
	}
}

// GetStats computes the aggregate income/expense/investment stats with the
// 70/20/10 guideline comparisons.
func (s *DashboardService) GetStats() (*models.Stats, error) {
	started := time.Now()

	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for stats: %w", err)
	}
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for stats: %w", err)
	}

	stats := analytics.ComputeStats(transactions, categories, s.incomeTarget())

	s.recordComputation("stats", started)
	s.metrics.RecordGauge("transaction.log.size", float64(len(transactions)), nil)
	slog.Info("stats computed",
		slog.Int("transactions", len(transactions)),
		slog.Float64("savings_rate", stats.SavingsRate),
	)
	return &stats, nil
}

// GetSavingsScore computes the 0-100 composite financial health score.
func (s *DashboardService) GetSavingsScore() (*models.SavingsScore, error) {
	started := time.Now()

	stats, err := s.GetStats()
	if err != nil {
		return nil, err
	}
	score := analytics.ComputeSavingsScore(*stats)

	s.recordComputation("score", started)
	s.metrics.RecordGauge("savings.score", float64(score.Total), nil)
	return &score, nil
}

// GetForecast extrapolates the current month's cash flow to month end.
func (s *DashboardService) GetForecast() (*models.Forecast, error) {
	started := time.Now()

	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for forecast: %w", err)
	}
	forecast := analytics.ComputeForecast(transactions, s.now())

	s.recordComputation("forecast", started)
	return &forecast, nil
}

// GetComparison compares a selected month window against the prior month.
// Custom mode requires an explicit range; the other modes ignore it.
func (s *DashboardService) GetComparison(mode string, custom *analytics.Range) (*models.Comparison, error) {
	if !models.IsValidComparisonMode(mode) {
		return nil, ErrInvalidComparisonMode
	}
	if mode == models.ComparisonModeCustom && custom == nil {
		return nil, ErrMissingCustomRange
	}
	started := time.Now()

	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for comparison: %w", err)
	}
	comparison := analytics.ComputeComparison(transactions, mode, custom, s.now())

	s.recordComputation("comparison", started)
	return &comparison, nil
}

// GetMonthlyTrend buckets income and expenses into consecutive months
// ending at the current one, oldest first.
func (s *DashboardService) GetMonthlyTrend(months int) ([]models.MonthBucket, error) {
	if months <= 0 {
		months = DefaultTrendMonths
	}
	started := time.Now()

	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for trend: %w", err)
	}
	buckets := analytics.BucketByMonth(transactions, months, s.now())

	s.recordComputation("trend", started)
	return buckets, nil
}

// GetInsights runs the rule engine over the current financial state.
func (s *DashboardService) GetInsights() ([]models.Insight, error) {
	started := time.Now()

	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for insights: %w", err)
	}
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for insights: %w", err)
	}

	stats := analytics.ComputeStats(transactions, categories, s.incomeTarget())
	insights := analytics.ComputeInsights(transactions, categories, stats, s.now())

	s.recordComputation("insights", started)
	s.metrics.RecordGauge("insights.emitted", float64(len(insights)), nil)
	slog.Info("insights evaluated", slog.Int("emitted", len(insights)))
	return insights, nil
}

// GetAchievements evaluates the fixed badge set.
func (s *DashboardService) GetAchievements() ([]models.Achievement, error) {
	started := time.Now()

	transactions, err := s.transactionRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for achievements: %w", err)
	}
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories for achievements: %w", err)
	}

	stats := analytics.ComputeStats(transactions, categories, s.incomeTarget())
	achievements := analytics.ComputeAchievements(transactions, stats, s.now())

	s.recordComputation("achievements", started)
	return achievements, nil
}

// incomeTarget reads the configured income target, falling back to the
// default when the setting row is missing or unreadable.
func (s *DashboardService) incomeTarget() decimal.Decimal {
	target, err := s.settingsRepo.GetDecimal(models.SettingIncomeTarget)
	if err != nil {
		if !errors.Is(err, repositories.ErrSettingNotFound) {
			slog.Warn("failed to read income target setting", slog.String("error", err.Error()))
		}
		return decimal.RequireFromString(models.DefaultIncomeTarget)
	}
	return target
}

func (s *DashboardService) recordComputation(view string, started time.Time) {
	s.metrics.IncrementCounter("analytics.computed", map[string]string{"view": view})
	s.metrics.RecordProcessingTime(view, time.Since(started))
}
