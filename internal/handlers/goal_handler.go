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
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService services.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// ListGoals retrieves all goals
// @Summary List goals
// @Tags Goals
// @Produce json
// @Success 200 {object} SuccessResponse "Goals"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	goals, err := h.goalService.ListGoals()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: goals})
}

// ListProjections retrieves progress and pacing projections for all goals
// @Summary Goal projections
// @Tags Goals
// @Produce json
// @Success 200 {object} SuccessResponse "Projections"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals/projections [get]
func (h *GoalHandler) ListProjections(c echo.Context) error {
	projections, err := h.goalService.ListProjections()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: projections})
}

// CreateGoal adds a new savings goal
// @Summary Create goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal payload"
// @Success 201 {object} SuccessResponse "Created goal"
// @Failure 400 {object} errors.ErrorResponse "GOAL_002 - Invalid target"
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	goal, err := h.toModel(req.Title, req.TargetAmount, req.CurrentAmount, req.Deadline, req.MonthlyContribution)
	if err != nil {
		return h.sendDomainError(c, err)
	}
	if err := h.goalService.CreateGoal(goal); err != nil {
		return h.sendDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    goal,
		Message: "Goal created",
	})
}

// UpdateGoal replaces an existing goal
// @Summary Update goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.UpdateGoalRequest true "Goal payload"
// @Success 200 {object} SuccessResponse "Updated goal"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid goal ID"))
	}

	var req dto.UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	goal, err := h.toModel(req.Title, req.TargetAmount, req.CurrentAmount, req.Deadline, req.MonthlyContribution)
	if err != nil {
		return h.sendDomainError(c, err)
	}
	goal.ID = id

	if err := h.goalService.UpdateGoal(goal); err != nil {
		return h.sendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    goal,
		Message: "Goal updated",
	})
}

// DeleteGoal removes a goal
// @Summary Delete goal
// @Tags Goals
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} SuccessResponse "Deletion confirmation"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid goal ID"))
	}

	if err := h.goalService.DeleteGoal(id); err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return SendError(c, apierrors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Goal deleted"})
}

// Deposit adds to a goal's saved balance
// @Summary Deposit into goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.DepositRequest true "Deposit payload"
// @Success 200 {object} SuccessResponse "Goal after deposit"
// @Failure 400 {object} errors.ErrorResponse "GOAL_003 - Invalid deposit"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Router /goals/{id}/deposit [post]
func (h *GoalHandler) Deposit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid goal ID"))
	}

	var req dto.DepositRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, apierrors.GoalInvalidDeposit)
	}

	goal, err := h.goalService.Deposit(id, amount)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrGoalNotFound):
			return SendError(c, apierrors.GoalNotFound)
		case errors.Is(err, services.ErrInvalidDepositAmount):
			return SendError(c, apierrors.GoalInvalidDeposit)
		default:
			return SendSystemError(c, err)
		}
	}
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    goal,
		Message: "Deposit recorded",
	})
}

func (h *GoalHandler) toModel(title, target, current, deadline, contribution string) (*models.Goal, error) {
	targetAmount, err := decimal.NewFromString(target)
	if err != nil {
		return nil, models.ErrInvalidTargetAmount
	}

	goal := &models.Goal{
		Title:        title,
		TargetAmount: targetAmount,
		Deadline:     deadline,
	}
	if current != "" {
		currentAmount, err := decimal.NewFromString(current)
		if err != nil || currentAmount.IsNegative() {
			return nil, models.ErrInvalidTargetAmount
		}
		goal.CurrentAmount = currentAmount
	}
	if contribution != "" {
		monthly, err := decimal.NewFromString(contribution)
		if err != nil || monthly.IsNegative() {
			return nil, models.ErrInvalidTargetAmount
		}
		goal.MonthlyContribution = monthly
	}
	return goal, nil
}

func (h *GoalHandler) sendDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrGoalNotFound):
		return SendError(c, apierrors.GoalNotFound)
	case errors.Is(err, models.ErrInvalidTargetAmount):
		return SendError(c, apierrors.GoalInvalidTarget)
	case errors.Is(err, services.ErrInvalidDeadline):
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("Invalid deadline"))
	default:
		return SendSystemError(c, err)
	}
}
