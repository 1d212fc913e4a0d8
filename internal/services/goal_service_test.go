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

// GoalServiceTestSuite defines the test suite for GoalService
type GoalServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockGoalRepo *repository_mocks.MockGoalRepositoryInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	service      GoalServiceInterface
	now          time.Time
}

// SetupTest runs before each test
func (s *GoalServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGoalRepo = repository_mocks.NewMockGoalRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()

	s.now = time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	s.service = NewGoalService(s.mockGoalRepo, s.metrics, func() time.Time { return s.now })
}

// TearDownTest runs after each test
func (s *GoalServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestGoalServiceSuite runs the test suite
func TestGoalServiceSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}

func (s *GoalServiceTestSuite) TestCreateGoal_Success() {
	goal := &models.Goal{
		Title:        "Emergency Fund",
		TargetAmount: decimal.NewFromInt(100000),
	}
	s.mockGoalRepo.EXPECT().Create(goal).Return(nil)

	s.NoError(s.service.CreateGoal(goal))
}

func (s *GoalServiceTestSuite) TestCreateGoal_NonPositiveTarget() {
	goal := &models.Goal{Title: "Broken", TargetAmount: decimal.Zero}

	s.ErrorIs(s.service.CreateGoal(goal), models.ErrInvalidTargetAmount)
}

func (s *GoalServiceTestSuite) TestCreateGoal_BadDeadline() {
	goal := &models.Goal{
		Title:        "Vacation",
		TargetAmount: decimal.NewFromInt(50000),
		Deadline:     "next summer",
	}

	s.ErrorIs(s.service.CreateGoal(goal), ErrInvalidDeadline)
}

func (s *GoalServiceTestSuite) TestUpdateGoal_NilID() {
	goal := &models.Goal{Title: "Vacation", TargetAmount: decimal.NewFromInt(50000)}

	s.ErrorIs(s.service.UpdateGoal(goal), ErrInvalidGoalID)
}

func (s *GoalServiceTestSuite) TestDeposit_AddsToCurrentAmount() {
	id := uuid.New()
	goal := &models.Goal{
		ID:            id,
		Title:         "Emergency Fund",
		TargetAmount:  decimal.NewFromInt(100000),
		CurrentAmount: decimal.NewFromInt(25000),
	}

	s.mockGoalRepo.EXPECT().GetByID(id).Return(goal, nil)
	s.mockGoalRepo.EXPECT().Update(goal).Return(nil)

	updated, err := s.service.Deposit(id, decimal.NewFromInt(5000))

	s.NoError(err)
	s.True(updated.CurrentAmount.Equal(decimal.NewFromInt(30000)), "deposits are strictly additive")
}

func (s *GoalServiceTestSuite) TestDeposit_RejectsNonPositive() {
	id := uuid.New()

	_, err := s.service.Deposit(id, decimal.Zero)
	s.ErrorIs(err, ErrInvalidDepositAmount)

	_, err = s.service.Deposit(id, decimal.NewFromInt(-100))
	s.ErrorIs(err, ErrInvalidDepositAmount)
}

func (s *GoalServiceTestSuite) TestDeposit_GoalNotFound() {
	id := uuid.New()
	s.mockGoalRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrGoalNotFound)

	_, err := s.service.Deposit(id, decimal.NewFromInt(100))

	s.ErrorIs(err, repositories.ErrGoalNotFound)
}

func (s *GoalServiceTestSuite) TestDeposit_NilID() {
	_, err := s.service.Deposit(uuid.Nil, decimal.NewFromInt(100))

	s.ErrorIs(err, ErrInvalidGoalID)
}

func (s *GoalServiceTestSuite) TestListProjections() {
	goals := []models.Goal{
		{
			ID:            uuid.New(),
			Title:         "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(400),
			Deadline:      "2026-08-15",
		},
		{
			ID:            uuid.New(),
			Title:         "Done",
			TargetAmount:  decimal.NewFromInt(500),
			CurrentAmount: decimal.NewFromInt(500),
		},
	}
	s.mockGoalRepo.EXPECT().List().Return(goals, nil)

	projections, err := s.service.ListProjections()

	s.NoError(err)
	s.Require().Len(projections, 2)
	s.Equal(40.0, projections[0].ProgressPct)
	s.Require().NotNil(projections[0].RequiredMonthlySaving)
	s.Equal(int64(200), *projections[0].RequiredMonthlySaving)
	s.True(projections[1].IsAchieved)
}

func (s *GoalServiceTestSuite) TestListProjections_Empty() {
	s.mockGoalRepo.EXPECT().List().Return(nil, nil)

	projections, err := s.service.ListProjections()

	s.NoError(err)
	s.Empty(projections)
}
