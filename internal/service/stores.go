package service

import (
	"context"

	"presupuesto/internal/models"

	"github.com/google/uuid"
)

// Store interfaces consumed by the services. The pgx repositories satisfy
// them; tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateBudget(ctx context.Context, id uuid.UUID, budget float64, budgetMonth string) error
	UpdateSpending(ctx context.Context, id uuid.UUID, spent float64, budgetMonth string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	ReplaceAll(ctx context.Context, userID uuid.UUID, categories []models.Category) error
}

type BudgetItemStore interface {
	Create(ctx context.Context, item *models.BudgetItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BudgetItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BudgetItem, error)
	Update(ctx context.Context, item *models.BudgetItem) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	CreateBatch(ctx context.Context, transactions []*models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type KeywordStore interface {
	Add(ctx context.Context, userID uuid.UUID, category string, keywords []string) error
	ListByUser(ctx context.Context, userID uuid.UUID) (map[string][]string, error)
}
