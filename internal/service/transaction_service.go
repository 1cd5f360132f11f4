package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"presupuesto/internal/analysis"
	"presupuesto/internal/dto"
	"presupuesto/internal/models"
	"presupuesto/internal/parser"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// TransactionService owns the variable expenses. Every mutation keeps the
// user's month counter in step and re-reads the stored state before
// returning, so dependent computations never see stale aggregates.
type TransactionService struct {
	txStore   TransactionStore
	userStore UserStore
	catalog   *CategoryService
	logger    *zap.Logger
}

func NewTransactionService(txStore TransactionStore, userStore UserStore, catalog *CategoryService, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txStore:   txStore,
		userStore: userStore,
		catalog:   catalog,
		logger:    logger,
	}
}

// List returns the user's transactions, optionally filtered to one
// "YYYY-MM" month.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, month string) ([]models.Transaction, error) {
	transactions, err := s.txStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if month == "" {
		return transactions, nil
	}
	if !monthKeyPattern.MatchString(month) {
		return nil, ErrInvalidMonth
	}
	return analysis.FilterByMonth(transactions, month), nil
}

// Add records a variable expense. The category comes from the three-stage
// resolution: explicit choice (learned from), keyword detection, default.
func (s *TransactionService) Add(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, CategorySource, error) {
	tx, source, err := s.build(ctx, userID, req)
	if err != nil {
		return nil, "", err
	}

	if err := s.txStore.Create(ctx, tx); err != nil {
		return nil, "", err
	}

	if err := s.addToMonthSpent(ctx, userID, tx.Amount); err != nil {
		return nil, "", err
	}

	return tx, source, nil
}

// Update applies a partial edit. An amount change within the stored budget
// month adjusts the month counter by the difference; after a rollover the
// counter is left alone, since it no longer describes the present month.
func (s *TransactionService) Update(ctx context.Context, userID, txID uuid.UUID, update *dto.TransactionUpdate) (*models.Transaction, error) {
	tx, err := s.txStore.GetByID(ctx, txID)
	if err != nil || tx.UserID != userID {
		return nil, ErrNotFound
	}
	oldAmount := tx.Amount

	if update.Description != nil {
		description := strings.TrimSpace(*update.Description)
		if description == "" {
			return nil, ErrEmptyDescription
		}
		tx.Description = sanitizeUTF8(description)
	}
	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		tx.Amount = *update.Amount
	}
	if update.Category != nil {
		category := strings.TrimSpace(*update.Category)
		if category == "" {
			return nil, ErrInvalidCategory
		}
		tx.Category = category
		if err := s.catalog.Learn(ctx, userID, tx.Description, category); err != nil {
			s.logger.Warn("Failed to learn from edit", zap.Error(err))
		}
	}
	if update.Date != nil {
		date, err := analysis.ParseFlexibleDate(*update.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		tx.Date = date
	}
	tx.UpdatedAt = time.Now().UTC()

	if err := s.txStore.Update(ctx, tx); err != nil {
		return nil, err
	}

	if diff := tx.Amount - oldAmount; diff != 0 {
		if err := s.adjustMonthSpent(ctx, userID, diff); err != nil {
			return nil, err
		}
	}

	return tx, nil
}

// Delete removes a transaction, subtracting its amount from the month
// counter when it still counts against the stored month. The counter never
// goes below zero.
func (s *TransactionService) Delete(ctx context.Context, userID, txID uuid.UUID) error {
	tx, err := s.txStore.GetByID(ctx, txID)
	if err != nil || tx.UserID != userID {
		return ErrNotFound
	}

	if err := s.txStore.Delete(ctx, userID, txID); err != nil {
		return err
	}

	return s.adjustMonthSpent(ctx, userID, -tx.Amount)
}

// Import stores a batch of transactions with possibly mixed date formats.
// Rows that fail validation are skipped and reported; one bad row never
// aborts the rest.
func (s *TransactionService) Import(ctx context.Context, userID uuid.UUID, reqs []dto.TransactionRequest) ([]models.Transaction, []dto.SkippedTransaction, error) {
	var (
		stored  []*models.Transaction
		skipped []dto.SkippedTransaction
		total   float64
	)

	for i := range reqs {
		tx, _, err := s.build(ctx, userID, &reqs[i])
		if err != nil {
			s.logger.Warn("Skipping transaction on import",
				zap.Int("index", i),
				zap.Error(err),
			)
			skipped = append(skipped, dto.SkippedTransaction{Index: i, Reason: err.Error()})
			continue
		}
		stored = append(stored, tx)
		if analysis.MonthKey(tx.Date) == analysis.CurrentMonth() {
			total += tx.Amount
		}
	}

	if err := s.txStore.CreateBatch(ctx, stored); err != nil {
		return nil, nil, err
	}

	if total > 0 {
		if err := s.addToMonthSpent(ctx, userID, total); err != nil {
			return nil, nil, err
		}
	}

	result := make([]models.Transaction, 0, len(stored))
	for _, tx := range stored {
		result = append(result, *tx)
	}
	return result, skipped, nil
}

// Parse previews a free-text entry like "Almuerzo 15000" without storing
// anything: the extracted description, amount and resolved category.
func (s *TransactionService) Parse(ctx context.Context, userID uuid.UUID, input string) (*dto.ParseExpenseResponse, error) {
	parsed, ok := parser.Parse(input)
	if !ok {
		return nil, ErrInvalidAmount
	}

	// Preview only: no explicit selection, so nothing is learned here.
	category, err := s.catalog.Detect(ctx, userID, parsed.Description)
	if err != nil {
		return nil, err
	}
	source := SourceDetected
	if category == "" {
		category = models.DefaultCategoryName
		source = SourceDefault
	}

	return &dto.ParseExpenseResponse{
		Description: parsed.Description,
		Amount:      parsed.Amount,
		Category:    category,
		Source:      string(source),
	}, nil
}

// build validates a request and assembles the transaction to store.
func (s *TransactionService) build(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, CategorySource, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, "", ErrEmptyDescription
	}
	if req.Amount <= 0 {
		return nil, "", ErrInvalidAmount
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := analysis.ParseFlexibleDate(req.Date)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		date = parsed
	}

	category, source, err := s.catalog.Resolve(ctx, userID, req.Category, description)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	return &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: sanitizeUTF8(description),
		Amount:      req.Amount,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, source, nil
}

// addToMonthSpent folds an amount into the month counter, resetting it after
// a rollover.
func (s *TransactionService) addToMonthSpent(ctx context.Context, userID uuid.UUID, amount float64) error {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	currentMonth := analysis.CurrentMonth()
	spent := user.CurrentMonthSpent + amount
	if analysis.CompareMonths(user.BudgetMonth, currentMonth).RolledOver {
		spent = amount
	}
	return s.userStore.UpdateSpending(ctx, userID, spent, currentMonth)
}

// adjustMonthSpent shifts the counter by a delta, but only while the stored
// month is still current; stale counters stay untouched until the next add
// resets them.
func (s *TransactionService) adjustMonthSpent(ctx context.Context, userID uuid.UUID, delta float64) error {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	currentMonth := analysis.CurrentMonth()
	if analysis.CompareMonths(user.BudgetMonth, currentMonth).RolledOver {
		return nil
	}

	spent := user.CurrentMonthSpent + delta
	if spent < 0 {
		spent = 0
	}
	return s.userStore.UpdateSpending(ctx, userID, spent, user.BudgetMonth)
}
