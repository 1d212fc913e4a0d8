package handlers

import (
	"net/http"
	"strconv"
	"time"

	"expensetracker/internal/analytics"
	"expensetracker/internal/dto"
	"expensetracker/internal/errors"
	"expensetracker/internal/models"
	"expensetracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the derived analytics views
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats returns aggregate totals and 70/20/10 guideline comparisons
// @Summary Aggregate stats
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse "Aggregate stats"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c echo.Context) error {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: stats})
}

// GetScore returns the 0-100 composite savings score
// @Summary Savings score
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse "Savings score with breakdown"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/score [get]
func (h *DashboardHandler) GetScore(c echo.Context) error {
	score, err := h.dashboardService.GetSavingsScore()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: score})
}

// GetForecast returns the current month's cash flow extrapolation
// @Summary Cash flow forecast
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse "Month-end projections"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/forecast [get]
func (h *DashboardHandler) GetForecast(c echo.Context) error {
	forecast, err := h.dashboardService.GetForecast()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: forecast})
}

// GetComparison compares a month window against the prior month
// @Summary Monthly comparison
// @Tags Dashboard
// @Produce json
// @Param mode query string false "Comparison mode" Enums(thisMonth, lastMonth, custom) default(thisMonth)
// @Param start query string false "Custom window start (YYYY-MM-DD)"
// @Param end query string false "Custom window end (YYYY-MM-DD)"
// @Success 200 {object} SuccessResponse "Comparison with delta percentages"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid mode or range"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/comparison [get]
func (h *DashboardHandler) GetComparison(c echo.Context) error {
	var req dto.ComparisonRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if req.Mode == "" {
		req.Mode = models.ComparisonModeThisMonth
	}

	var custom *analytics.Range
	if req.Mode == models.ComparisonModeCustom {
		start, err := time.Parse(models.DateLayout, req.Start)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Invalid start date"))
		}
		end, err := time.Parse(models.DateLayout, req.End)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("Invalid end date"))
		}
		if end.Before(start) {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("End date precedes start date"))
		}
		custom = &analytics.Range{Start: start, End: end}
	}

	comparison, err := h.dashboardService.GetComparison(req.Mode, custom)
	if err != nil {
		switch err {
		case services.ErrInvalidComparisonMode:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid comparison mode"))
		case services.ErrMissingCustomRange:
			return SendError(c, errors.ValidationRequiredField, errors.WithDetails("Custom mode requires start and end"))
		default:
			return SendSystemError(c, err)
		}
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: comparison})
}

// GetTrend returns month buckets of income and expense, oldest first
// @Summary Monthly trend
// @Tags Dashboard
// @Produce json
// @Param months query int false "Number of months" default(6)
// @Success 200 {object} SuccessResponse "Month buckets"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/trend [get]
func (h *DashboardHandler) GetTrend(c echo.Context) error {
	months := 0
	if raw := c.QueryParam("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 24 {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("months must be between 1 and 24"))
		}
		months = parsed
	}

	trend, err := h.dashboardService.GetMonthlyTrend(months)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: trend})
}

// GetInsights returns the rule engine's current advice feed
// @Summary Insights
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse "At most eight insights in priority order"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/insights [get]
func (h *DashboardHandler) GetInsights(c echo.Context) error {
	insights, err := h.dashboardService.GetInsights()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: insights})
}

// GetAchievements returns the fixed badge set with earned flags
// @Summary Achievements
// @Tags Dashboard
// @Produce json
// @Success 200 {object} SuccessResponse "All five badges"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/achievements [get]
func (h *DashboardHandler) GetAchievements(c echo.Context) error {
	achievements, err := h.dashboardService.GetAchievements()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: achievements})
}
