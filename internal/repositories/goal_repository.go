package repositories

import (
	"errors"
	"fmt"

	"expensetracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal
func (r *goalRepository) Create(goal *models.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// Update replaces an existing goal
func (r *goalRepository) Update(goal *models.Goal) error {
	result := r.db.Model(&models.Goal{}).
		Where("id = ?", goal.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(goal)
	if result.Error != nil {
		return fmt.Errorf("failed to update goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal by ID
func (r *goalRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Goal{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// GetByID retrieves a goal by ID
func (r *goalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.First(&goal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

// List retrieves all goals
func (r *goalRepository) List() ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}
