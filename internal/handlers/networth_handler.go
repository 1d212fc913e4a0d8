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

// NetWorthHandler handles asset, liability and net worth HTTP requests
type NetWorthHandler struct {
	netWorthService services.NetWorthServiceInterface
}

// NewNetWorthHandler creates a new net worth handler
func NewNetWorthHandler(netWorthService services.NetWorthServiceInterface) *NetWorthHandler {
	return &NetWorthHandler{netWorthService: netWorthService}
}

// GetSummary returns live net worth with the snapshot-blended trend
// @Summary Net worth summary
// @Tags NetWorth
// @Produce json
// @Success 200 {object} SuccessResponse "Totals and trend"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /networth [get]
func (h *NetWorthHandler) GetSummary(c echo.Context) error {
	summary, err := h.netWorthService.GetSummary(true)
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// RecordSnapshot freezes the live net worth under the current month label
// @Summary Record net worth snapshot
// @Tags NetWorth
// @Produce json
// @Success 201 {object} SuccessResponse "Recorded snapshot"
// @Failure 409 {object} errors.ErrorResponse "NETWORTH_003 - Month already recorded"
// @Router /networth/snapshots [post]
func (h *NetWorthHandler) RecordSnapshot(c echo.Context) error {
	snapshot, err := h.netWorthService.RecordSnapshot()
	if err != nil {
		if errors.Is(err, repositories.ErrSnapshotExists) {
			return SendError(c, apierrors.SnapshotExists)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    snapshot,
		Message: "Snapshot recorded",
	})
}

// ListAssets retrieves all assets
// @Summary List assets
// @Tags NetWorth
// @Produce json
// @Success 200 {object} SuccessResponse "Assets"
// @Router /networth/assets [get]
func (h *NetWorthHandler) ListAssets(c echo.Context) error {
	assets, err := h.netWorthService.ListAssets()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: assets})
}

// CreateAsset adds an asset
// @Summary Create asset
// @Tags NetWorth
// @Accept json
// @Produce json
// @Param request body dto.CreateAssetRequest true "Asset payload"
// @Success 201 {object} SuccessResponse "Created asset"
// @Router /networth/assets [post]
func (h *NetWorthHandler) CreateAsset(c echo.Context) error {
	var req dto.CreateAssetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid asset value"))
	}

	asset := &models.Asset{Name: req.Name, Value: value}
	if err := h.netWorthService.CreateAsset(asset); err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    asset,
		Message: "Asset created",
	})
}

// DeleteAsset removes an asset
// @Summary Delete asset
// @Tags NetWorth
// @Produce json
// @Param id path string true "Asset ID (UUID)"
// @Success 200 {object} SuccessResponse "Deletion confirmation"
// @Failure 404 {object} errors.ErrorResponse "NETWORTH_001 - Asset not found"
// @Router /networth/assets/{id} [delete]
func (h *NetWorthHandler) DeleteAsset(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid asset ID"))
	}

	if err := h.netWorthService.DeleteAsset(id); err != nil {
		if errors.Is(err, repositories.ErrAssetNotFound) {
			return SendError(c, apierrors.AssetNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Asset deleted"})
}

// ListLiabilities retrieves all liabilities
// @Summary List liabilities
// @Tags NetWorth
// @Produce json
// @Success 200 {object} SuccessResponse "Liabilities"
// @Router /networth/liabilities [get]
func (h *NetWorthHandler) ListLiabilities(c echo.Context) error {
	liabilities, err := h.netWorthService.ListLiabilities()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: liabilities})
}

// CreateLiability adds a liability
// @Summary Create liability
// @Tags NetWorth
// @Accept json
// @Produce json
// @Param request body dto.CreateLiabilityRequest true "Liability payload"
// @Success 201 {object} SuccessResponse "Created liability"
// @Router /networth/liabilities [post]
func (h *NetWorthHandler) CreateLiability(c echo.Context) error {
	var req dto.CreateLiabilityRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid liability value"))
	}

	liability := &models.Liability{Name: req.Name, Value: value}
	if err := h.netWorthService.CreateLiability(liability); err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    liability,
		Message: "Liability created",
	})
}

// DeleteLiability removes a liability
// @Summary Delete liability
// @Tags NetWorth
// @Produce json
// @Param id path string true "Liability ID (UUID)"
// @Success 200 {object} SuccessResponse "Deletion confirmation"
// @Failure 404 {object} errors.ErrorResponse "NETWORTH_002 - Liability not found"
// @Router /networth/liabilities/{id} [delete]
func (h *NetWorthHandler) DeleteLiability(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid liability ID"))
	}

	if err := h.netWorthService.DeleteLiability(id); err != nil {
		if errors.Is(err, repositories.ErrLiabilityNotFound) {
			return SendError(c, apierrors.LiabilityNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Liability deleted"})
}
