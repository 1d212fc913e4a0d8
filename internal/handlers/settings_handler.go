package handlers

import (
	"errors"
	"net/http"

	"expensetracker/internal/dto"
	apierrors "expensetracker/internal/errors"
	"expensetracker/internal/services"

	"github.com/labstack/echo/v4"
)

// SettingsHandler handles preference HTTP requests
type SettingsHandler struct {
	settingsService services.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService services.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns every preference with defaults filled in
// @Summary Get settings
// @Tags Settings
// @Produce json
// @Success 200 {object} SuccessResponse "All settings"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: settings})
}

// UpdateSetting writes one preference
// @Summary Update setting
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingRequest true "Setting payload"
// @Success 200 {object} SuccessResponse "Update confirmation"
// @Failure 400 {object} errors.ErrorResponse "SETTINGS_002 - Invalid value"
// @Router /settings [put]
func (h *SettingsHandler) UpdateSetting(c echo.Context) error {
	var req dto.UpdateSettingRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	if err := h.settingsService.UpdateSetting(req.Key, req.Value); err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownSettingKey):
			return SendError(c, apierrors.SettingNotFound)
		case errors.Is(err, services.ErrInvalidSettingValue):
			return SendError(c, apierrors.SettingInvalidValue)
		default:
			return SendSystemError(c, err)
		}
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Setting updated"})
}
