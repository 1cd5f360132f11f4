package service

import (
	"context"
	"errors"
	"sort"

	"presupuesto/internal/models"

	"github.com/google/uuid"
)

// In-memory fakes for the store interfaces.

var errMissing = errors.New("not found")

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errMissing
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, errMissing
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) UpdateBudget(_ context.Context, id uuid.UUID, budget float64, budgetMonth string) error {
	u, ok := s.users[id]
	if !ok {
		return errMissing
	}
	u.MonthlyBudget = budget
	u.BudgetMonth = budgetMonth
	u.CurrentMonthSpent = 0
	return nil
}

func (s *fakeUserStore) UpdateSpending(_ context.Context, id uuid.UUID, spent float64, budgetMonth string) error {
	u, ok := s.users[id]
	if !ok {
		return errMissing
	}
	u.CurrentMonthSpent = spent
	u.BudgetMonth = budgetMonth
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

type fakeCategoryStore struct {
	categories map[uuid.UUID][]models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID][]models.Category)}
}

func (s *fakeCategoryStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Category, error) {
	out := append([]models.Category(nil), s.categories[userID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *fakeCategoryStore) ReplaceAll(_ context.Context, userID uuid.UUID, categories []models.Category) error {
	s.categories[userID] = append([]models.Category(nil), categories...)
	return nil
}

type fakeBudgetItemStore struct {
	items map[uuid.UUID]*models.BudgetItem
}

func newFakeBudgetItemStore() *fakeBudgetItemStore {
	return &fakeBudgetItemStore{items: make(map[uuid.UUID]*models.BudgetItem)}
}

func (s *fakeBudgetItemStore) Create(_ context.Context, item *models.BudgetItem) error {
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *fakeBudgetItemStore) GetByID(_ context.Context, id uuid.UUID) (*models.BudgetItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, errMissing
	}
	cp := *item
	return &cp, nil
}

func (s *fakeBudgetItemStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.BudgetItem, error) {
	var out []models.BudgetItem
	for _, item := range s.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeBudgetItemStore) Update(_ context.Context, item *models.BudgetItem) error {
	if _, ok := s.items[item.ID]; !ok {
		return errMissing
	}
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *fakeBudgetItemStore) Delete(_ context.Context, userID, id uuid.UUID) error {
	item, ok := s.items[id]
	if !ok || item.UserID != userID {
		return errMissing
	}
	delete(s.items, id)
	return nil
}

type fakeTransactionStore struct {
	transactions map[uuid.UUID]*models.Transaction
	order        []uuid.UUID
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{transactions: make(map[uuid.UUID]*models.Transaction)}
}

func (s *fakeTransactionStore) Create(_ context.Context, tx *models.Transaction) error {
	cp := *tx
	s.transactions[tx.ID] = &cp
	s.order = append(s.order, tx.ID)
	return nil
}

func (s *fakeTransactionStore) CreateBatch(ctx context.Context, transactions []*models.Transaction) error {
	for _, tx := range transactions {
		if err := s.Create(ctx, tx); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeTransactionStore) GetByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, ok := s.transactions[id]
	if !ok {
		return nil, errMissing
	}
	cp := *tx
	return &cp, nil
}

func (s *fakeTransactionStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, id := range s.order {
		if tx, ok := s.transactions[id]; ok && tx.UserID == userID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (s *fakeTransactionStore) Update(_ context.Context, tx *models.Transaction) error {
	if _, ok := s.transactions[tx.ID]; !ok {
		return errMissing
	}
	cp := *tx
	s.transactions[tx.ID] = &cp
	return nil
}

func (s *fakeTransactionStore) Delete(_ context.Context, userID, id uuid.UUID) error {
	tx, ok := s.transactions[id]
	if !ok || tx.UserID != userID {
		return errMissing
	}
	delete(s.transactions, id)
	return nil
}

type fakeKeywordStore struct {
	keywords map[uuid.UUID]map[string][]string
}

func newFakeKeywordStore() *fakeKeywordStore {
	return &fakeKeywordStore{keywords: make(map[uuid.UUID]map[string][]string)}
}

func (s *fakeKeywordStore) Add(_ context.Context, userID uuid.UUID, category string, keywords []string) error {
	byCategory, ok := s.keywords[userID]
	if !ok {
		byCategory = make(map[string][]string)
		s.keywords[userID] = byCategory
	}
	existing := make(map[string]struct{}, len(byCategory[category]))
	for _, kw := range byCategory[category] {
		existing[kw] = struct{}{}
	}
	for _, kw := range keywords {
		if _, dup := existing[kw]; dup {
			continue
		}
		existing[kw] = struct{}{}
		byCategory[category] = append(byCategory[category], kw)
	}
	return nil
}

func (s *fakeKeywordStore) ListByUser(_ context.Context, userID uuid.UUID) (map[string][]string, error) {
	out := make(map[string][]string, len(s.keywords[userID]))
	for category, kws := range s.keywords[userID] {
		out[category] = append([]string(nil), kws...)
	}
	return out, nil
}
