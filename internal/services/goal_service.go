package services

import (
	"errors"
	"log/slog"
	"time"

	"expensetracker/internal/analytics"
	"expensetracker/internal/models"
	"expensetracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidGoalID        = errors.New("invalid goal ID")
	ErrInvalidDepositAmount = errors.New("deposit amount must be positive")
	ErrInvalidDeadline      = errors.New("deadline must be a valid YYYY-MM-DD calendar date")
)

// GoalService handles savings goals and their projections
type GoalService struct {
	goalRepo repositories.GoalRepositoryInterface
	metrics  MetricsRecorderInterface
	now      func() time.Time
}

// NewGoalService creates a new goal service
func NewGoalService(goalRepo repositories.GoalRepositoryInterface, metrics MetricsRecorderInterface, now func() time.Time) GoalServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &GoalService{
		goalRepo: goalRepo,
		metrics:  metrics,
		now:      now,
	}
}

// CreateGoal validates and persists a new savings goal
func (s *GoalService) CreateGoal(goal *models.Goal) error {
	if err := s.validate(goal); err != nil {
		return err
	}
	if err := s.goalRepo.Create(goal); err != nil {
		return err
	}
	slog.Info("goal created",
		slog.String("goal_id", goal.ID.String()),
		slog.String("target", goal.TargetAmount.String()),
	)
	return nil
}

// UpdateGoal validates and replaces an existing goal
func (s *GoalService) UpdateGoal(goal *models.Goal) error {
	if goal.ID == uuid.Nil {
		return ErrInvalidGoalID
	}
	if err := s.validate(goal); err != nil {
		return err
	}
	return s.goalRepo.Update(goal)
}

// DeleteGoal removes a goal
func (s *GoalService) DeleteGoal(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidGoalID
	}
	return s.goalRepo.Delete(id)
}

// GetGoal retrieves a single goal
func (s *GoalService) GetGoal(id uuid.UUID) (*models.Goal, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidGoalID
	}
	return s.goalRepo.GetByID(id)
}

// ListGoals retrieves all goals
func (s *GoalService) ListGoals() ([]models.Goal, error) {
	return s.goalRepo.List()
}

// Deposit adds to a goal's saved balance. Deposits are strictly additive;
// there is no withdrawal operation.
func (s *GoalService) Deposit(id uuid.UUID, amount decimal.Decimal) (*models.Goal, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidGoalID
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidDepositAmount
	}

	goal, err := s.goalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = goal.CurrentAmount.Add(amount)
	if err := s.goalRepo.Update(goal); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("goal.deposit", nil)
	slog.Info("goal deposit",
		slog.String("goal_id", goal.ID.String()),
		slog.String("amount", amount.String()),
		slog.String("current", goal.CurrentAmount.String()),
	)
	return goal, nil
}

// ListProjections computes progress and pacing projections for every goal
func (s *GoalService) ListProjections() ([]models.GoalProjection, error) {
	goals, err := s.goalRepo.List()
	if err != nil {
		return nil, err
	}

	now := s.now()
	projections := make([]models.GoalProjection, 0, len(goals))
	for _, goal := range goals {
		projections = append(projections, analytics.ProjectGoal(goal, now))
	}
	return projections, nil
}

func (s *GoalService) validate(goal *models.Goal) error {
	if err := goal.Validate(); err != nil {
		return err
	}
	if goal.Deadline != "" {
		if _, err := time.Parse(models.DateLayout, goal.Deadline); err != nil {
			return ErrInvalidDeadline
		}
	}
	return nil
}
