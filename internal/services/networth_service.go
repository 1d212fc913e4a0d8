package services

import (
	"errors"
	"log/slog"
	"time"

	"expensetracker/internal/analytics"
	"expensetracker/internal/models"
	"expensetracker/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidAssetID     = errors.New("invalid asset ID")
	ErrInvalidLiabilityID = errors.New("invalid liability ID")
	ErrEmptyItemName      = errors.New("name cannot be empty")
)

// NetWorthService tracks assets, liabilities and the snapshot-based net
// worth history. Past months come verbatim from recorded snapshots; the
// current month is always recomputed live from today's items.
type NetWorthService struct {
	assetRepo       repositories.AssetRepositoryInterface
	liabilityRepo   repositories.LiabilityRepositoryInterface
	snapshotRepo    repositories.SnapshotRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	trendMonths     int
	now             func() time.Time
}

// NewNetWorthService creates a new net worth service
func NewNetWorthService(
	assetRepo repositories.AssetRepositoryInterface,
	liabilityRepo repositories.LiabilityRepositoryInterface,
	snapshotRepo repositories.SnapshotRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	trendMonths int,
	now func() time.Time,
) NetWorthServiceInterface {
	if trendMonths <= 0 {
		trendMonths = DefaultTrendMonths
	}
	if now == nil {
		now = time.Now
	}
	return &NetWorthService{
		assetRepo:       assetRepo,
		liabilityRepo:   liabilityRepo,
		snapshotRepo:    snapshotRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
		trendMonths:     trendMonths,
		now:             now,
	}
}

// CreateAsset persists a new asset
func (s *NetWorthService) CreateAsset(asset *models.Asset) error {
	if asset.Name == "" {
		return ErrEmptyItemName
	}
	return s.assetRepo.Create(asset)
}

// DeleteAsset removes an asset
func (s *NetWorthService) DeleteAsset(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidAssetID
	}
	return s.assetRepo.Delete(id)
}

// ListAssets retrieves all assets
func (s *NetWorthService) ListAssets() ([]models.Asset, error) {
	return s.assetRepo.List()
}

// CreateLiability persists a new liability
func (s *NetWorthService) CreateLiability(liability *models.Liability) error {
	if liability.Name == "" {
		return ErrEmptyItemName
	}
	return s.liabilityRepo.Create(liability)
}

// DeleteLiability removes a liability
func (s *NetWorthService) DeleteLiability(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidLiabilityID
	}
	return s.liabilityRepo.Delete(id)
}

// ListLiabilities retrieves all liabilities
func (s *NetWorthService) ListLiabilities() ([]models.Liability, error) {
	return s.liabilityRepo.List()
}

// GetSummary computes live net worth, optionally with the month trend
// blended from recorded snapshots.
func (s *NetWorthService) GetSummary(withTrend bool) (*models.NetWorthSummary, error) {
	started := time.Now()

	assets, err := s.assetRepo.List()
	if err != nil {
		return nil, err
	}
	liabilities, err := s.liabilityRepo.List()
	if err != nil {
		return nil, err
	}

	summary := analytics.ComputeNetWorth(assets, liabilities)

	if withTrend {
		history, err := s.snapshotRepo.List()
		if err != nil {
			return nil, err
		}
		transactions, err := s.transactionRepo.List()
		if err != nil {
			return nil, err
		}
		summary.Trend = analytics.NetWorthTrend(transactions, history, summary.NetWorth, s.trendMonths, s.now())
	}

	s.metrics.IncrementCounter("analytics.computed", map[string]string{"view": "networth"})
	s.metrics.RecordProcessingTime("networth", time.Since(started))
	return &summary, nil
}

// RecordSnapshot freezes the live net worth under the current month label.
// Re-recording the same month returns ErrSnapshotExists; history is never
// overwritten.
func (s *NetWorthService) RecordSnapshot() (*models.NetWorthSnapshot, error) {
	summary, err := s.GetSummary(false)
	if err != nil {
		return nil, err
	}

	snapshot := &models.NetWorthSnapshot{
		Month:    analytics.MonthLabel(s.now()),
		NetWorth: summary.NetWorth,
	}
	if err := s.snapshotRepo.Create(snapshot); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("snapshot.recorded", nil)
	slog.Info("net worth snapshot recorded",
		slog.String("month", snapshot.Month),
		slog.String("net_worth", snapshot.NetWorth.String()),
	)
	return snapshot, nil
}
