package service

import (
	"context"
	"strings"
	"time"

	"presupuesto/internal/analysis"
	"presupuesto/internal/dto"
	"presupuesto/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BudgetService owns the monthly budget and the fixed budget items, keeping
// the user's running month counter in step with every mutation.
type BudgetService struct {
	userStore UserStore
	itemStore BudgetItemStore
	logger    *zap.Logger
}

func NewBudgetService(userStore UserStore, itemStore BudgetItemStore, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		userStore: userStore,
		itemStore: itemStore,
		logger:    logger,
	}
}

// SetMonthlyBudget stores a new monthly budget, stamping the budget month
// with the present period and resetting the spent counter.
func (s *BudgetService) SetMonthlyBudget(ctx context.Context, userID uuid.UUID, budget float64) (*models.User, error) {
	if budget < 0 {
		return nil, ErrInvalidBudget
	}

	if err := s.userStore.UpdateBudget(ctx, userID, budget, analysis.CurrentMonth()); err != nil {
		return nil, err
	}

	// Re-read so dependent computations see the stored state.
	return s.userStore.GetByID(ctx, userID)
}

// Remaining reports the budget left in the present month. A stale budget
// month means nothing has been spent in the new period yet: the counter is
// treated as zero, not as an error.
func (s *BudgetService) Remaining(ctx context.Context, userID uuid.UUID) (*dto.RemainingBudgetResponse, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	currentMonth := analysis.CurrentMonth()
	spent := user.CurrentMonthSpent
	if analysis.CompareMonths(user.BudgetMonth, currentMonth).RolledOver {
		spent = 0
	}

	return &dto.RemainingBudgetResponse{
		MonthlyBudget:     user.MonthlyBudget,
		CurrentMonthSpent: spent,
		RemainingBudget:   user.MonthlyBudget - spent,
		BudgetMonth:       currentMonth,
	}, nil
}

func (s *BudgetService) ListItems(ctx context.Context, userID uuid.UUID) ([]models.BudgetItem, error) {
	return s.itemStore.ListByUser(ctx, userID)
}

// AddItem creates a fixed expense and folds its amount into the month
// counter: added within the stored month, or restarting the counter after a
// rollover.
func (s *BudgetService) AddItem(ctx context.Context, userID uuid.UUID, req *dto.BudgetItemRequest) (*models.BudgetItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyDescription
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	category := models.BudgetItemCategory(req.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	now := time.Now().UTC()
	item := &models.BudgetItem{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Amount:      req.Amount,
		Category:    category,
		IsRecurring: req.IsRecurring,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.itemStore.Create(ctx, item); err != nil {
		return nil, err
	}

	if err := s.addToMonthSpent(ctx, userID, item.Amount); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem applies a partial edit to a fixed expense.
func (s *BudgetService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, update *dto.BudgetItemUpdate) (*models.BudgetItem, error) {
	item, err := s.itemStore.GetByID(ctx, itemID)
	if err != nil || item.UserID != userID {
		return nil, ErrNotFound
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, ErrEmptyDescription
		}
		item.Name = name
	}
	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, ErrInvalidAmount
		}
		item.Amount = *update.Amount
	}
	if update.Category != nil {
		category := models.BudgetItemCategory(*update.Category)
		if !category.Valid() {
			return nil, ErrInvalidCategory
		}
		item.Category = category
	}
	if update.IsRecurring != nil {
		item.IsRecurring = *update.IsRecurring
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.itemStore.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *BudgetService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.itemStore.GetByID(ctx, itemID)
	if err != nil || item.UserID != userID {
		return ErrNotFound
	}
	return s.itemStore.Delete(ctx, userID, itemID)
}

// addToMonthSpent folds an amount into the user's month counter, resetting
// it first when the stored month has rolled over.
func (s *BudgetService) addToMonthSpent(ctx context.Context, userID uuid.UUID, amount float64) error {
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
