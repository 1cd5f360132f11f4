package service

import (
	"context"
	"testing"
	"time"

	"presupuesto/internal/analysis"
	"presupuesto/internal/dto"
	"presupuesto/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type txFixture struct {
	users    *fakeUserStore
	txs      *fakeTransactionStore
	keywords *fakeKeywordStore
	service  *TransactionService
	userID   uuid.UUID
}

func newTxFixture(t *testing.T, budgetMonth string, spent float64) *txFixture {
	t.Helper()

	users := newFakeUserStore()
	txs := newFakeTransactionStore()
	keywords := newFakeKeywordStore()
	categories := newFakeCategoryStore()
	logger := zap.NewNop()

	userID := uuid.New()
	require.NoError(t, users.Create(context.Background(), &models.User{
		ID:                userID,
		Username:          "alice",
		Email:             "alice@example.com",
		MonthlyBudget:     500000,
		CurrentMonthSpent: spent,
		BudgetMonth:       budgetMonth,
	}))

	catalog := NewCategoryService(categories, keywords, logger)
	return &txFixture{
		users:    users,
		txs:      txs,
		keywords: keywords,
		service:  NewTransactionService(txs, users, catalog, logger),
		userID:   userID,
	}
}

func TestAddTransactionUpdatesSpentCounter(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 1000)

	tx, source, err := f.service.Add(context.Background(), f.userID, &dto.TransactionRequest{
		Description: "Almuerzo",
		Amount:      5000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alimentación", tx.Category)
	assert.Equal(t, SourceDetected, source)

	user, err := f.users.GetByID(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 6000.0, user.CurrentMonthSpent)
	assert.Equal(t, analysis.CurrentMonth(), user.BudgetMonth)
}

func TestAddTransactionAfterRolloverResetsCounter(t *testing.T) {
	f := newTxFixture(t, "2020-01", 99999)

	_, _, err := f.service.Add(context.Background(), f.userID, &dto.TransactionRequest{
		Description: "Almuerzo",
		Amount:      5000,
	})
	require.NoError(t, err)

	user, err := f.users.GetByID(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, user.CurrentMonthSpent)
	assert.Equal(t, analysis.CurrentMonth(), user.BudgetMonth)
}

func TestAddTransactionExplicitCategoryLearns(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)

	tx, source, err := f.service.Add(context.Background(), f.userID, &dto.TransactionRequest{
		Description: "Feria artesanal",
		Amount:      8000,
		Category:    "Hobby",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hobby", tx.Category)
	assert.Equal(t, SourceExplicit, source)

	learned, err := f.keywords.ListByUser(context.Background(), f.userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"feria", "artesanal"}, learned["Hobby"])
}

func TestAddTransactionUnknownDescriptionDefaults(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)

	tx, source, err := f.service.Add(context.Background(), f.userID, &dto.TransactionRequest{
		Description: "zzqq wwkk",
		Amount:      1000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategoryName, tx.Category)
	assert.Equal(t, SourceDefault, source)
}

func TestAddTransactionValidation(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	_, _, err := f.service.Add(ctx, f.userID, &dto.TransactionRequest{Description: "  ", Amount: 1000})
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, _, err = f.service.Add(ctx, f.userID, &dto.TransactionRequest{Description: "Almuerzo", Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, _, err = f.service.Add(ctx, f.userID, &dto.TransactionRequest{Description: "Almuerzo", Amount: 1000, Date: "13/13/2024"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAddTransactionParsesBothDateForms(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	tx1, _, err := f.service.Add(ctx, f.userID, &dto.TransactionRequest{
		Description: "Almuerzo", Amount: 1000, Date: "15/03/2024",
	})
	require.NoError(t, err)

	tx2, _, err := f.service.Add(ctx, f.userID, &dto.TransactionRequest{
		Description: "Cena", Amount: 1000, Date: "2024-03-20",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03", analysis.MonthKey(tx1.Date))
	assert.Equal(t, "2024-03", analysis.MonthKey(tx2.Date))
}

func TestUpdateTransactionAdjustsCounterByDiff(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	tx, _, err := f.service.Add(ctx, f.userID, &dto.TransactionRequest{Description: "Almuerzo", Amount: 5000})
	require.NoError(t, err)

	newAmount := 8000.0
	_, err = f.service.Update(ctx, f.userID, tx.ID, &dto.TransactionUpdate{Amount: &newAmount})
	require.NoError(t, err)

	user, err := f.users.GetByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 8000.0, user.CurrentMonthSpent)
}

func TestUpdateTransactionAfterRolloverLeavesCounter(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	tx, _, err := f.service.Add(ctx, f.userID, &dto.TransactionRequest{Description: "Almuerzo", Amount: 5000})
	require.NoError(t, err)

	// Simulate a month boundary passing after the add.
	require.NoError(t, f.users.UpdateSpending(ctx, f.userID, 5000, "2020-01"))

	newAmount := 9000.0
	_, err = f.service.Update(ctx, f.userID, tx.ID, &dto.TransactionUpdate{Amount: &newAmount})
	require.NoError(t, err)

	user, err := f.users.GetByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, user.CurrentMonthSpent)
	assert.Equal(t, "2020-01", user.BudgetMonth)
}

func TestUpdateTransactionCategoryLearns(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	tx, _, err := f.service.Add(ctx, f.userID, &dto.TransactionRequest{Description: "Mercadito local", Amount: 5000})
	require.NoError(t, err)

	category := "Hobby"
	updated, err := f.service.Update(ctx, f.userID, tx.ID, &dto.TransactionUpdate{Category: &category})
	require.NoError(t, err)
	assert.Equal(t, "Hobby", updated.Category)

	learned, err := f.keywords.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	assert.NotEmpty(t, learned["Hobby"])
}

func TestDeleteTransactionClampsCounterAtZero(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	tx, _, err := f.service.Add(ctx, f.userID, &dto.TransactionRequest{Description: "Almuerzo", Amount: 5000})
	require.NoError(t, err)

	// Counter was lowered externally; deletion must not push it negative.
	require.NoError(t, f.users.UpdateSpending(ctx, f.userID, 1000, analysis.CurrentMonth()))

	require.NoError(t, f.service.Delete(ctx, f.userID, tx.ID))

	user, err := f.users.GetByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, user.CurrentMonthSpent)
}

func TestDeleteTransactionScopedToOwner(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	tx, _, err := f.service.Add(ctx, f.userID, &dto.TransactionRequest{Description: "Almuerzo", Amount: 5000})
	require.NoError(t, err)

	err = f.service.Delete(ctx, uuid.New(), tx.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTransactionsMonthFilter(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	_, _, err := f.service.Add(ctx, f.userID, &dto.TransactionRequest{Description: "Almuerzo", Amount: 1000, Date: "2024-03-15"})
	require.NoError(t, err)
	_, _, err = f.service.Add(ctx, f.userID, &dto.TransactionRequest{Description: "Cena", Amount: 1000, Date: "2024-04-02"})
	require.NoError(t, err)

	march, err := f.service.List(ctx, f.userID, "2024-03")
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, "Almuerzo", march[0].Description)

	all, err := f.service.List(ctx, f.userID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.service.List(ctx, f.userID, "03-2024")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestImportSkipsInvalidRows(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	stored, skipped, err := f.service.Import(ctx, f.userID, []dto.TransactionRequest{
		{Description: "Almuerzo", Amount: 5000, Date: time.Now().UTC().Format("2006-01-02")},
		{Description: "Cena", Amount: -10},
		{Description: "Taxi", Amount: 3000, Date: "99/99/9999"},
	})
	require.NoError(t, err)

	assert.Len(t, stored, 1)
	require.Len(t, skipped, 2)
	assert.Equal(t, 1, skipped[0].Index)
	assert.Equal(t, 2, skipped[1].Index)

	user, err := f.users.GetByID(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, user.CurrentMonthSpent)
}

func TestParsePreviewStoresNothing(t *testing.T) {
	f := newTxFixture(t, analysis.CurrentMonth(), 0)
	ctx := context.Background()

	resp, err := f.service.Parse(ctx, f.userID, "Almuerzo 15000")
	require.NoError(t, err)
	assert.Equal(t, "Almuerzo", resp.Description)
	assert.Equal(t, 15000.0, resp.Amount)
	assert.Equal(t, "Alimentación", resp.Category)
	assert.Equal(t, string(SourceDetected), resp.Source)

	all, err := f.txs.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, all)

	learned, err := f.keywords.ListByUser(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, learned)

	_, err = f.service.Parse(ctx, f.userID, "sin monto")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
