package handlers

import (
	"errors"
	"net/http"

	"expensetracker/internal/dto"
	apierrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
	"expensetracker/internal/repositories"
	"expensetracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories retrieves all categories in creation order
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} SuccessResponse "Category palette"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: categories})
}

// CreateCategory adds a category to the palette
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category payload"
// @Success 201 {object} SuccessResponse "Created category"
// @Failure 400 {object} errors.ErrorResponse "CATEGORY_002 - Invalid kind"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	category := &models.Category{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
		Kind:  req.Kind,
	}
	if err := h.categoryService.CreateCategory(category); err != nil {
		if errors.Is(err, models.ErrInvalidCategoryKind) {
			return SendError(c, apierrors.CategoryInvalidKind)
		}
		if errors.Is(err, models.ErrEmptyCategoryName) {
			return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("Category name is required"))
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    category,
		Message: "Category created",
	})
}

// DeleteCategory removes a category. Transactions keep their stale
// reference and degrade to fallback display values.
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} SuccessResponse "Deletion confirmation"
// @Failure 404 {object} errors.ErrorResponse "CATEGORY_001 - Category not found"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Category deleted"})
}
