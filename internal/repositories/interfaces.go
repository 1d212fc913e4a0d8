package repositories

import (
	"expensetracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the contract for transaction data access
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	List() ([]models.Transaction, error)
	ListRecurringDue(today string) ([]models.Transaction, error)
	// SpawnRecurring inserts the spawned occurrence and advances the
	// template's next date in a single database transaction.
	SpawnRecurring(spawn *models.Transaction, templateID uuid.UUID, nextDate string) error
}

// CategoryRepositoryInterface defines the contract for category data access
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Category, error)
	List() ([]models.Category, error)
}

// GoalRepositoryInterface defines the contract for goal data access
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	Update(goal *models.Goal) error
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	List() ([]models.Goal, error)
}

// AssetRepositoryInterface defines the contract for asset data access
type AssetRepositoryInterface interface {
	Create(asset *models.Asset) error
	Delete(id uuid.UUID) error
	List() ([]models.Asset, error)
}

// LiabilityRepositoryInterface defines the contract for liability data access
type LiabilityRepositoryInterface interface {
	Create(liability *models.Liability) error
	Delete(id uuid.UUID) error
	List() ([]models.Liability, error)
}

// SnapshotRepositoryInterface defines the contract for net worth snapshot access.
// Snapshots are append-only: there is no update or delete.
type SnapshotRepositoryInterface interface {
	Create(snapshot *models.NetWorthSnapshot) error
	GetByMonth(month string) (*models.NetWorthSnapshot, error)
	List() ([]models.NetWorthSnapshot, error)
}

// SettingsRepositoryInterface defines the contract for key-value settings access
type SettingsRepositoryInterface interface {
	Get(key string) (string, error)
	GetDecimal(key string) (decimal.Decimal, error)
	Set(key, value string) error
}
