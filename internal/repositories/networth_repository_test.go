package repositories

import (
	"testing"

	"expensetracker/internal/database"
	"expensetracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// NetWorthRepositorySuite covers the asset, liability and snapshot repositories
type NetWorthRepositorySuite struct {
	suite.Suite
	db          *database.DB
	assets      AssetRepositoryInterface
	liabilities LiabilityRepositoryInterface
	snapshots   SnapshotRepositoryInterface
}

func (s *NetWorthRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.assets = NewAssetRepository(s.db.DB)
	s.liabilities = NewLiabilityRepository(s.db.DB)
	s.snapshots = NewSnapshotRepository(s.db.DB)
}

func (s *NetWorthRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestNetWorthRepositorySuite(t *testing.T) {
	suite.Run(t, new(NetWorthRepositorySuite))
}

func (s *NetWorthRepositorySuite) TestAssetCreateAndList() {
	firstName := gofakeit.Company() + " Savings"
	first := &models.Asset{Name: firstName, Value: decimal.NewFromFloat(gofakeit.Price(50000, 200000))}
	second := &models.Asset{Name: gofakeit.Company() + " Brokerage", Value: decimal.NewFromFloat(gofakeit.Price(10000, 90000))}

	s.NoError(s.assets.Create(first))
	s.NoError(s.assets.Create(second))
	s.NotEqual(uuid.Nil, first.ID)

	assets, err := s.assets.List()
	s.NoError(err)
	s.Require().Len(assets, 2)
	s.Equal(firstName, assets[0].Name, "insertion order is preserved")
}

func (s *NetWorthRepositorySuite) TestAssetDelete() {
	asset := &models.Asset{Name: gofakeit.CarModel(), Value: decimal.NewFromFloat(gofakeit.Price(10000, 50000))}
	s.NoError(s.assets.Create(asset))

	s.NoError(s.assets.Delete(asset.ID))

	assets, err := s.assets.List()
	s.NoError(err)
	s.Empty(assets)
}

func (s *NetWorthRepositorySuite) TestAssetDelete_NotFound() {
	s.ErrorIs(s.assets.Delete(uuid.New()), ErrAssetNotFound)
}

func (s *NetWorthRepositorySuite) TestLiabilityCreateAndDelete() {
	liability := &models.Liability{Name: "Car Loan", Value: decimal.NewFromInt(80000)}

	s.NoError(s.liabilities.Create(liability))

	liabilities, err := s.liabilities.List()
	s.NoError(err)
	s.Require().Len(liabilities, 1)

	s.NoError(s.liabilities.Delete(liability.ID))
	s.ErrorIs(s.liabilities.Delete(liability.ID), ErrLiabilityNotFound)
}

func (s *NetWorthRepositorySuite) TestSnapshotCreate() {
	snapshot := &models.NetWorthSnapshot{Month: "Apr 26", NetWorth: decimal.NewFromInt(120000)}

	s.NoError(s.snapshots.Create(snapshot))
	s.NotEqual(uuid.Nil, snapshot.ID)

	found, err := s.snapshots.GetByMonth("Apr 26")
	s.NoError(err)
	s.True(found.NetWorth.Equal(decimal.NewFromInt(120000)))
}

func (s *NetWorthRepositorySuite) TestSnapshotCreate_DuplicateMonth() {
	s.NoError(s.snapshots.Create(&models.NetWorthSnapshot{Month: "Apr 26", NetWorth: decimal.NewFromInt(120000)}))

	err := s.snapshots.Create(&models.NetWorthSnapshot{Month: "Apr 26", NetWorth: decimal.NewFromInt(999)})
	s.ErrorIs(err, ErrSnapshotExists)

	found, err := s.snapshots.GetByMonth("Apr 26")
	s.NoError(err)
	s.True(found.NetWorth.Equal(decimal.NewFromInt(120000)), "the original snapshot is immutable")
}

func (s *NetWorthRepositorySuite) TestSnapshotGetByMonth_NotFound() {
	_, err := s.snapshots.GetByMonth("Jan 20")
	s.ErrorIs(err, ErrSnapshotNotFound)
}

func (s *NetWorthRepositorySuite) TestSnapshotList() {
	s.NoError(s.snapshots.Create(&models.NetWorthSnapshot{Month: "Mar 26", NetWorth: decimal.NewFromInt(100000)}))
	s.NoError(s.snapshots.Create(&models.NetWorthSnapshot{Month: "Apr 26", NetWorth: decimal.NewFromInt(110000)}))

	snapshots, err := s.snapshots.List()
	s.NoError(err)
	s.Len(snapshots, 2)
}
