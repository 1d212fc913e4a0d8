package services

import (
	"time"

	"expensetracker/internal/analytics"
	"expensetracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardServiceInterface exposes the derived analytics views
type DashboardServiceInterface interface {
	GetStats() (*models.Stats, error)
	GetSavingsScore() (*models.SavingsScore, error)
	GetForecast() (*models.Forecast, error)
	GetComparison(mode string, custom *analytics.Range) (*models.Comparison, error)
	GetMonthlyTrend(months int) ([]models.MonthBucket, error)
	GetInsights() ([]models.Insight, error)
	GetAchievements() ([]models.Achievement, error)
}

// TransactionServiceInterface defines transaction CRUD business operations
type TransactionServiceInterface interface {
	CreateTransaction(transaction *models.Transaction) error
	UpdateTransaction(transaction *models.Transaction) error
	DeleteTransaction(id uuid.UUID) error
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	ListTransactions() ([]models.Transaction, error)
}

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	CreateCategory(category *models.Category) error
	DeleteCategory(id uuid.UUID) error
	ListCategories() ([]models.Category, error)
}

// GoalServiceInterface defines savings goal operations
type GoalServiceInterface interface {
	CreateGoal(goal *models.Goal) error
	UpdateGoal(goal *models.Goal) error
	DeleteGoal(id uuid.UUID) error
	GetGoal(id uuid.UUID) (*models.Goal, error)
	ListGoals() ([]models.Goal, error)
	// Deposit adds a strictly positive amount to a goal's current balance.
	Deposit(id uuid.UUID, amount decimal.Decimal) (*models.Goal, error)
	ListProjections() ([]models.GoalProjection, error)
}

// NetWorthServiceInterface defines asset/liability tracking and
// snapshot-based net worth history
type NetWorthServiceInterface interface {
	CreateAsset(asset *models.Asset) error
	DeleteAsset(id uuid.UUID) error
	ListAssets() ([]models.Asset, error)
	CreateLiability(liability *models.Liability) error
	DeleteLiability(id uuid.UUID) error
	ListLiabilities() ([]models.Liability, error)
	GetSummary(withTrend bool) (*models.NetWorthSummary, error)
	// RecordSnapshot freezes the live net worth under the current month
	// label. A month can only be recorded once.
	RecordSnapshot() (*models.NetWorthSnapshot, error)
}

// SettingsServiceInterface defines preference access
type SettingsServiceInterface interface {
	GetSettings() (map[string]string, error)
	UpdateSetting(key, value string) error
	IncomeTarget() decimal.Decimal
	Budget() decimal.Decimal
}

// RecurringServiceInterface processes due recurring transactions
type RecurringServiceInterface interface {
	// ProcessDue spawns one dated copy for every recurring transaction
	// whose next date is due and advances its schedule. Returns the
	// number of spawned transactions.
	ProcessDue() (int, error)
}

// MetricsRecorderInterface defines the interface for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
