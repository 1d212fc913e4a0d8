package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expensetracker/internal/models"
	"expensetracker/internal/repositories"
)

var ErrUnsupportedFrequency = errors.New("unsupported recurrence frequency")

// RecurringService materializes due recurring transactions. Each due
// template spawns one dated non-recurring copy and has its schedule
// advanced by a single frequency step, atomically per template. Running
// the processor twice in a row spawns nothing the second time.
type RecurringService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewRecurringService creates a new recurring transaction processor
func NewRecurringService(transactionRepo repositories.TransactionRepositoryInterface, metrics MetricsRecorderInterface, now func() time.Time) RecurringServiceInterface {
	if now == nil {
		now = time.Now
	}
	return &RecurringService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		now:             now,
	}
}

// ProcessDue spawns dated copies for all due recurring templates
func (s *RecurringService) ProcessDue() (int, error) {
	today := s.now().Format(models.DateLayout)

	due, err := s.transactionRepo.ListRecurringDue(today)
	if err != nil {
		return 0, fmt.Errorf("failed to find due recurring transactions: %w", err)
	}

	spawned := 0
	for _, template := range due {
		next, err := NextOccurrence(template.NextDate, template.Frequency)
		if err != nil {
			slog.Warn("skipping recurring transaction with bad schedule",
				slog.String("transaction_id", template.ID.String()),
				slog.String("next_date", template.NextDate),
				slog.String("frequency", template.Frequency),
			)
			continue
		}

		spawn := &models.Transaction{
			Title:      template.Title,
			Amount:     template.Amount,
			Type:       template.Type,
			CategoryID: template.CategoryID,
			Date:       template.NextDate,
			Recurring:  false,
		}
		if err := s.transactionRepo.SpawnRecurring(spawn, template.ID, next); err != nil {
			return spawned, fmt.Errorf("failed to process recurring transaction %s: %w", template.ID, err)
		}

		spawned++
		s.metrics.IncrementCounter("recurring.spawned", nil)
	}

	if spawned > 0 {
		slog.Info("recurring transactions processed",
			slog.Int("spawned", spawned),
			slog.String("as_of", today),
		)
	}
	return spawned, nil
}

// NextOccurrence advances a schedule date by one frequency step
func NextOccurrence(dateStr, frequency string) (string, error) {
	date, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse schedule date %q: %w", dateStr, err)
	}

	switch frequency {
	case models.FrequencyWeekly:
		date = date.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		date = date.AddDate(0, 1, 0)
	case models.FrequencyYearly:
		date = date.AddDate(1, 0, 0)
	default:
		return "", ErrUnsupportedFrequency
	}
	return date.Format(models.DateLayout), nil
}
