package service

import (
	"context"

	"presupuesto/internal/analysis"
	"presupuesto/internal/dto"
	"presupuesto/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProfileService serves the aggregated account view and account removal.
type ProfileService struct {
	userStore     UserStore
	categoryStore CategoryStore
	itemStore     BudgetItemStore
	logger        *zap.Logger
}

func NewProfileService(userStore UserStore, categoryStore CategoryStore, itemStore BudgetItemStore, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		userStore:     userStore,
		categoryStore: categoryStore,
		itemStore:     itemStore,
		logger:        logger,
	}
}

// Get loads the profile aggregate concurrently and applies the rollover rule
// to the spent counter before computing the remaining budget.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	var (
		user       *models.User
		categories []models.Category
		items      []models.BudgetItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.userStore.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categoryStore.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.itemStore.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	spent := user.CurrentMonthSpent
	if analysis.CompareMonths(user.BudgetMonth, analysis.CurrentMonth()).RolledOver {
		spent = 0
	}

	resp := &dto.ProfileResponse{
		User: dto.UserResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
		},
		MonthlyBudget:     user.MonthlyBudget,
		CurrentMonthSpent: spent,
		BudgetMonth:       user.BudgetMonth,
		RemainingBudget:   user.MonthlyBudget - spent,
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, dto.CategoryResponse{
			ID:    c.ID.String(),
			Name:  c.Name,
			Icon:  c.Icon,
			Color: c.Color,
		})
	}
	for _, item := range items {
		resp.BudgetItems = append(resp.BudgetItems, dto.BudgetItemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Amount:      item.Amount,
			Category:    string(item.Category),
			IsRecurring: item.IsRecurring,
		})
	}
	return resp, nil
}

// Delete removes the account. Owned categories, budget items, transactions
// and learned keywords cascade with the user row, so no orphans remain.
func (s *ProfileService) Delete(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return ErrUserNotFound
	}
	return s.userStore.Delete(ctx, userID)
}
