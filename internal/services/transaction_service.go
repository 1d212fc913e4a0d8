package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expensetracker/internal/models"
	"expensetracker/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate      = errors.New("date must be a valid YYYY-MM-DD calendar date")
	ErrUnknownCategory  = errors.New("referenced category does not exist")
	ErrInvalidTxnID     = errors.New("invalid transaction ID")
)

// TransactionService handles transaction log writes. Category references
// are checked on write, but deletion of a category later does not cascade;
// readers degrade orphaned references to fallback display values.
type TransactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

// CreateTransaction validates and persists a new transaction. A recurring
// transaction with no schedule yet gets its next occurrence seeded one
// frequency step after its date.
func (s *TransactionService) CreateTransaction(transaction *models.Transaction) error {
	if err := s.validate(transaction); err != nil {
		return err
	}

	if transaction.Recurring && transaction.NextDate == "" {
		next, err := NextOccurrence(transaction.Date, transaction.Frequency)
		if err != nil {
			return err
		}
		transaction.NextDate = next
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return err
	}

	s.metrics.IncrementCounter("transaction.written", map[string]string{"operation": "create"})
	slog.Info("transaction created",
		slog.String("transaction_id", transaction.ID.String()),
		slog.String("type", transaction.Type),
		slog.String("date", transaction.Date),
	)
	return nil
}

// UpdateTransaction validates and replaces an existing transaction
func (s *TransactionService) UpdateTransaction(transaction *models.Transaction) error {
	if transaction.ID == uuid.Nil {
		return ErrInvalidTxnID
	}
	if err := s.validate(transaction); err != nil {
		return err
	}

	if transaction.Recurring && transaction.NextDate == "" {
		next, err := NextOccurrence(transaction.Date, transaction.Frequency)
		if err != nil {
			return err
		}
		transaction.NextDate = next
	}
	if !transaction.Recurring {
		transaction.Frequency = ""
		transaction.NextDate = ""
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return err
	}

	s.metrics.IncrementCounter("transaction.written", map[string]string{"operation": "update"})
	return nil
}

// DeleteTransaction removes a transaction from the log
func (s *TransactionService) DeleteTransaction(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidTxnID
	}
	if err := s.transactionRepo.Delete(id); err != nil {
		return err
	}
	s.metrics.IncrementCounter("transaction.written", map[string]string{"operation": "delete"})
	return nil
}

// GetTransaction retrieves a single transaction
func (s *TransactionService) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidTxnID
	}
	return s.transactionRepo.GetByID(id)
}

// ListTransactions retrieves the full log, newest first
func (s *TransactionService) ListTransactions() ([]models.Transaction, error) {
	return s.transactionRepo.List()
}

func (s *TransactionService) validate(transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}
	if _, err := time.Parse(models.DateLayout, transaction.Date); err != nil {
		return ErrInvalidDate
	}
	if transaction.NextDate != "" {
		if _, err := time.Parse(models.DateLayout, transaction.NextDate); err != nil {
			return ErrInvalidDate
		}
	}
	if transaction.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*transaction.CategoryID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return ErrUnknownCategory
			}
			return fmt.Errorf("failed to check category reference: %w", err)
		}
	}
	return nil
}
