package services

import (
	"errors"
	"log/slog"

	"expensetracker/internal/models"
	"expensetracker/internal/repositories"

	"github.com/google/uuid"
)

var ErrInvalidCategoryID = errors.New("invalid category ID")

// CategoryService handles the category palette. Deleting a category does
// not cascade to transactions; their references go stale and readers fall
// back to generic display values.
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory validates and persists a new category
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return err
	}
	slog.Info("category created",
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name),
		slog.String("kind", category.Kind),
	)
	return nil
}

// DeleteCategory removes a category without touching its transactions
func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidCategoryID
	}
	return s.categoryRepo.Delete(id)
}

// ListCategories retrieves all categories in creation order
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}
