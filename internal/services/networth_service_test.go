package services

import (
	"testing"
	"time"

	"expensetracker/internal/models"
	"expensetracker/internal/repositories"
	"expensetracker/internal/repositories/repository_mocks"
	"expensetracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// NetWorthServiceTestSuite defines the test suite for NetWorthService
type NetWorthServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockAssetRepo       *repository_mocks.MockAssetRepositoryInterface
	mockLiabilityRepo   *repository_mocks.MockLiabilityRepositoryInterface
	mockSnapshotRepo    *repository_mocks.MockSnapshotRepositoryInterface
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	metrics             *service_mocks.MockMetricsRecorderInterface
	service             NetWorthServiceInterface
	now                 time.Time
}

// SetupTest runs before each test
func (s *NetWorthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAssetRepo = repository_mocks.NewMockAssetRepositoryInterface(s.ctrl)
	s.mockLiabilityRepo = repository_mocks.NewMockLiabilityRepositoryInterface(s.ctrl)
	s.mockSnapshotRepo = repository_mocks.NewMockSnapshotRepositoryInterface(s.ctrl)
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.now = time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)
	s.service = NewNetWorthService(
		s.mockAssetRepo,
		s.mockLiabilityRepo,
		s.mockSnapshotRepo,
		s.mockTransactionRepo,
		s.metrics,
		4,
		func() time.Time { return s.now },
	)
}

// TearDownTest runs after each test
func (s *NetWorthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestNetWorthServiceSuite runs the test suite
func TestNetWorthServiceSuite(t *testing.T) {
	suite.Run(t, new(NetWorthServiceTestSuite))
}

func (s *NetWorthServiceTestSuite) TestCreateAsset_EmptyName() {
	s.ErrorIs(s.service.CreateAsset(&models.Asset{Value: decimal.NewFromInt(100)}), ErrEmptyItemName)
}

func (s *NetWorthServiceTestSuite) TestCreateAsset() {
	asset := &models.Asset{Name: "Savings", Value: decimal.NewFromInt(100000)}
	s.mockAssetRepo.EXPECT().Create(asset).Return(nil)

	s.NoError(s.service.CreateAsset(asset))
}

func (s *NetWorthServiceTestSuite) TestDeleteAsset_NilID() {
	s.ErrorIs(s.service.DeleteAsset(uuid.Nil), ErrInvalidAssetID)
}

func (s *NetWorthServiceTestSuite) TestCreateLiability_EmptyName() {
	s.ErrorIs(s.service.CreateLiability(&models.Liability{Value: decimal.NewFromInt(100)}), ErrEmptyItemName)
}

func (s *NetWorthServiceTestSuite) TestGetSummary_WithoutTrend() {
	s.mockAssetRepo.EXPECT().List().Return([]models.Asset{
		{Name: "Savings", Value: decimal.NewFromInt(200000)},
	}, nil)
	s.mockLiabilityRepo.EXPECT().List().Return([]models.Liability{
		{Name: "Loan", Value: decimal.NewFromInt(80000)},
	}, nil)

	summary, err := s.service.GetSummary(false)

	s.NoError(err)
	s.True(summary.NetWorth.Equal(decimal.NewFromInt(120000)))
	s.Nil(summary.Trend)
}

func (s *NetWorthServiceTestSuite) TestGetSummary_WithTrend() {
	s.mockAssetRepo.EXPECT().List().Return([]models.Asset{
		{Name: "Savings", Value: decimal.NewFromInt(120000)},
	}, nil)
	s.mockLiabilityRepo.EXPECT().List().Return(nil, nil)
	s.mockSnapshotRepo.EXPECT().List().Return([]models.NetWorthSnapshot{
		{Month: "Apr 26", NetWorth: decimal.NewFromInt(110000)},
	}, nil)
	s.mockTransactionRepo.EXPECT().List().Return(nil, nil)

	summary, err := s.service.GetSummary(true)

	s.NoError(err)
	s.Require().Len(summary.Trend, 4)
	s.True(summary.Trend[2].NetWorth.Equal(decimal.NewFromInt(110000)), "April reads from its snapshot")
	s.True(summary.Trend[3].NetWorth.Equal(decimal.NewFromInt(120000)), "May is the live value")
	s.True(summary.Trend[0].NetWorth.Equal(decimal.Zero), "February has no snapshot")
}

func (s *NetWorthServiceTestSuite) TestRecordSnapshot() {
	s.mockAssetRepo.EXPECT().List().Return([]models.Asset{
		{Name: "Savings", Value: decimal.NewFromInt(150000)},
	}, nil)
	s.mockLiabilityRepo.EXPECT().List().Return([]models.Liability{
		{Name: "Loan", Value: decimal.NewFromInt(30000)},
	}, nil)
	s.mockSnapshotRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(snapshot *models.NetWorthSnapshot) error {
			s.Equal("May 26", snapshot.Month, "keyed by the current month label")
			s.True(snapshot.NetWorth.Equal(decimal.NewFromInt(120000)))
			return nil
		})

	snapshot, err := s.service.RecordSnapshot()

	s.NoError(err)
	s.Equal("May 26", snapshot.Month)
}

func (s *NetWorthServiceTestSuite) TestRecordSnapshot_DuplicateMonth() {
	s.mockAssetRepo.EXPECT().List().Return(nil, nil)
	s.mockLiabilityRepo.EXPECT().List().Return(nil, nil)
	s.mockSnapshotRepo.EXPECT().Create(gomock.Any()).Return(repositories.ErrSnapshotExists)

	_, err := s.service.RecordSnapshot()

	s.ErrorIs(err, repositories.ErrSnapshotExists)
}
