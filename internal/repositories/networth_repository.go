package repositories

import (
	"errors"
	"fmt"

	"expensetracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrLiabilityNotFound = errors.New("liability not found")
	ErrSnapshotNotFound  = errors.New("net worth snapshot not found")
	ErrSnapshotExists    = errors.New("net worth snapshot already recorded for month")
)

// assetRepository implements AssetRepositoryInterface
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *gorm.DB) AssetRepositoryInterface {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(asset *models.Asset) error {
	if err := r.db.Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *assetRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Asset{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAssetNotFound
	}
	return nil
}

func (r *assetRepository) List() ([]models.Asset, error) {
	var assets []models.Asset
	if err := r.db.Order("created_at ASC").Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// liabilityRepository implements LiabilityRepositoryInterface
type liabilityRepository struct {
	db *gorm.DB
}

// NewLiabilityRepository creates a new liability repository
func NewLiabilityRepository(db *gorm.DB) LiabilityRepositoryInterface {
	return &liabilityRepository{db: db}
}

func (r *liabilityRepository) Create(liability *models.Liability) error {
	if err := r.db.Create(liability).Error; err != nil {
		return fmt.Errorf("failed to create liability: %w", err)
	}
	return nil
}

func (r *liabilityRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Liability{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete liability: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLiabilityNotFound
	}
	return nil
}

func (r *liabilityRepository) List() ([]models.Liability, error) {
	var liabilities []models.Liability
	if err := r.db.Order("created_at ASC").Find(&liabilities).Error; err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	return liabilities, nil
}

// snapshotRepository implements SnapshotRepositoryInterface
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new net worth snapshot repository
func NewSnapshotRepository(db *gorm.DB) SnapshotRepositoryInterface {
	return &snapshotRepository{db: db}
}

// Create records a snapshot for a month. A month can only be recorded
// once; history is immutable.
func (r *snapshotRepository) Create(snapshot *models.NetWorthSnapshot) error {
	var count int64
	if err := r.db.Model(&models.NetWorthSnapshot{}).
		Where("month = ?", snapshot.Month).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check snapshot month: %w", err)
	}
	if count > 0 {
		return ErrSnapshotExists
	}

	if err := r.db.Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepository) GetByMonth(month string) (*models.NetWorthSnapshot, error) {
	var snapshot models.NetWorthSnapshot
	if err := r.db.First(&snapshot, "month = ?", month).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return &snapshot, nil
}

func (r *snapshotRepository) List() ([]models.NetWorthSnapshot, error) {
	var snapshots []models.NetWorthSnapshot
	if err := r.db.Order("created_at ASC").Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}
