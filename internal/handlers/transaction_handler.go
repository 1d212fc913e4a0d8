package handlers

import (
	"errors"
	"net/http"

	apierrors "expensetracker/internal/errors"
	"expensetracker/internal/dto"
	"expensetracker/internal/models"
	"expensetracker/internal/repositories"
	"expensetracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions retrieves the transaction log, newest first
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Success 200 {object} SuccessResponse "Transaction log"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.transactionService.ListTransactions()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: transactions})
}

// GetTransaction retrieves a single transaction
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse "Transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: transaction})
}

// CreateTransaction logs a new transaction
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} SuccessResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	transaction, err := h.toModel(req.Title, req.Amount, req.Type, req.CategoryID, req.Date, req.Recurring, req.Frequency)
	if err != nil {
		return h.sendDomainError(c, err)
	}

	if err := h.transactionService.CreateTransaction(transaction); err != nil {
		return h.sendDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    transaction,
		Message: "Transaction created",
	})
}

// UpdateTransaction replaces an existing transaction
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Transaction payload"
// @Success 200 {object} SuccessResponse "Updated transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	transaction, err := h.toModel(req.Title, req.Amount, req.Type, req.CategoryID, req.Date, req.Recurring, req.Frequency)
	if err != nil {
		return h.sendDomainError(c, err)
	}
	transaction.ID = id

	if err := h.transactionService.UpdateTransaction(transaction); err != nil {
		return h.sendDomainError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    transaction,
		Message: "Transaction updated",
	})
}

// DeleteTransaction removes a transaction from the log
// @Summary Delete transaction
// @Tags Transactions
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse "Deletion confirmation"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Transaction deleted"})
}

func (h *TransactionHandler) toModel(title, amount, txnType, categoryID, date string, recurring bool, frequency string) (*models.Transaction, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, models.ErrNegativeAmount
	}

	transaction := &models.Transaction{
		Title:     title,
		Amount:    parsedAmount,
		Type:      txnType,
		Date:      date,
		Recurring: recurring,
		Frequency: frequency,
	}
	if categoryID != "" {
		parsed, err := uuid.Parse(categoryID)
		if err != nil {
			return nil, services.ErrUnknownCategory
		}
		transaction.CategoryID = &parsed
	}
	return transaction, nil
}

func (h *TransactionHandler) sendDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	case errors.Is(err, models.ErrNegativeAmount):
		return SendError(c, apierrors.TransactionInvalidAmount)
	case errors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, apierrors.TransactionInvalidType)
	case errors.Is(err, models.ErrInvalidFrequency):
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Frequency must be weekly, monthly or yearly"))
	case errors.Is(err, services.ErrInvalidDate):
		return SendError(c, apierrors.TransactionInvalidDate)
	case errors.Is(err, services.ErrUnknownCategory):
		return SendError(c, apierrors.CategoryNotFound, apierrors.WithDetails("Referenced category does not exist"))
	default:
		return SendSystemError(c, err)
	}
}
