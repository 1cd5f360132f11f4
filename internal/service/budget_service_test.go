package service

import (
	"context"
	"testing"

	"presupuesto/internal/analysis"
	"presupuesto/internal/dto"
	"presupuesto/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type budgetFixture struct {
	users   *fakeUserStore
	items   *fakeBudgetItemStore
	service *BudgetService
	userID  uuid.UUID
}

func newBudgetFixture(t *testing.T, budgetMonth string, spent float64) *budgetFixture {
	t.Helper()

	users := newFakeUserStore()
	items := newFakeBudgetItemStore()

	userID := uuid.New()
	require.NoError(t, users.Create(context.Background(), &models.User{
		ID:                userID,
		Username:          "alice",
		Email:             "alice@example.com",
		MonthlyBudget:     500000,
		CurrentMonthSpent: spent,
		BudgetMonth:       budgetMonth,
	}))

	return &budgetFixture{
		users:   users,
		items:   items,
		service: NewBudgetService(users, items, zap.NewNop()),
		userID:  userID,
	}
}

func TestSetMonthlyBudgetResetsCounter(t *testing.T) {
	f := newBudgetFixture(t, "2024-01", 120000)

	user, err := f.service.SetMonthlyBudget(context.Background(), f.userID, 600000)
	require.NoError(t, err)

	assert.Equal(t, 600000.0, user.MonthlyBudget)
	assert.Equal(t, 0.0, user.CurrentMonthSpent)
	assert.Equal(t, analysis.CurrentMonth(), user.BudgetMonth)
}

func TestSetMonthlyBudgetRejectsNegative(t *testing.T) {
	f := newBudgetFixture(t, analysis.CurrentMonth(), 0)

	_, err := f.service.SetMonthlyBudget(context.Background(), f.userID, -1)
	assert.ErrorIs(t, err, ErrInvalidBudget)
}

func TestRemainingCurrentMonth(t *testing.T) {
	f := newBudgetFixture(t, analysis.CurrentMonth(), 120000)

	resp, err := f.service.Remaining(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, resp.MonthlyBudget)
	assert.Equal(t, 120000.0, resp.CurrentMonthSpent)
	assert.Equal(t, 380000.0, resp.RemainingBudget)
	assert.Equal(t, analysis.CurrentMonth(), resp.BudgetMonth)
}

func TestRemainingAfterRolloverTreatsSpentAsZero(t *testing.T) {
	f := newBudgetFixture(t, "2020-01", 450000)

	resp, err := f.service.Remaining(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.CurrentMonthSpent)
	assert.Equal(t, 500000.0, resp.RemainingBudget)
}

func TestAddItemFoldsIntoCounter(t *testing.T) {
	f := newBudgetFixture(t, analysis.CurrentMonth(), 10000)

	item, err := f.service.AddItem(context.Background(), f.userID, &dto.BudgetItemRequest{
		Name:        "Arriendo",
		Amount:      280000,
		Category:    "hipoteca",
		IsRecurring: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BudgetItemHipoteca, item.Category)

	user, err := f.users.GetByID(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 290000.0, user.CurrentMonthSpent)
}

func TestAddItemValidation(t *testing.T) {
	f := newBudgetFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	_, err := f.service.AddItem(ctx, f.userID, &dto.BudgetItemRequest{Name: " ", Amount: 1000, Category: "otros"})
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = f.service.AddItem(ctx, f.userID, &dto.BudgetItemRequest{Name: "Luz", Amount: 0, Category: "servicios"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = f.service.AddItem(ctx, f.userID, &dto.BudgetItemRequest{Name: "Luz", Amount: 1000, Category: "inventada"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestUpdateItemPartial(t *testing.T) {
	f := newBudgetFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	item, err := f.service.AddItem(ctx, f.userID, &dto.BudgetItemRequest{
		Name: "Internet", Amount: 25000, Category: "servicios", IsRecurring: true,
	})
	require.NoError(t, err)

	amount := 30000.0
	updated, err := f.service.UpdateItem(ctx, f.userID, item.ID, &dto.BudgetItemUpdate{Amount: &amount})
	require.NoError(t, err)

	assert.Equal(t, 30000.0, updated.Amount)
	assert.Equal(t, "Internet", updated.Name)
	assert.Equal(t, models.BudgetItemServicios, updated.Category)
	assert.True(t, updated.IsRecurring)
}

func TestUpdateItemScopedToOwner(t *testing.T) {
	f := newBudgetFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	item, err := f.service.AddItem(ctx, f.userID, &dto.BudgetItemRequest{
		Name: "Internet", Amount: 25000, Category: "servicios",
	})
	require.NoError(t, err)

	amount := 1.0
	_, err = f.service.UpdateItem(ctx, uuid.New(), item.ID, &dto.BudgetItemUpdate{Amount: &amount})
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.service.DeleteItem(ctx, uuid.New(), item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
