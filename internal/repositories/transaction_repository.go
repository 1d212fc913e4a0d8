package repositories

import (
	"errors"
	"fmt"

	"expensetracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// Update replaces an existing transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(&models.Transaction{}).
		Where("id = ?", transaction.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction by ID
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.First(&transaction, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// List retrieves the full transaction log, newest first
func (r *transactionRepository) List() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("date DESC, created_at DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// ListRecurringDue retrieves recurring transactions whose next occurrence
// is on or before today
func (r *transactionRepository) ListRecurringDue(today string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("recurring = ? AND next_date <> '' AND next_date <= ?", true, today).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list due recurring transactions: %w", err)
	}
	return transactions, nil
}

// SpawnRecurring inserts the spawned occurrence and advances the template's
// next date atomically, so a failure cannot leave a spawned copy without an
// advanced schedule or vice versa.
func (r *transactionRepository) SpawnRecurring(spawn *models.Transaction, templateID uuid.UUID, nextDate string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(spawn).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Transaction{}).
			Where("id = ?", templateID).
			Update("next_date", nextDate)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTransactionNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to spawn recurring transaction: %w", err)
	}
	return nil
}
