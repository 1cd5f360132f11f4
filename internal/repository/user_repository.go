package repository

import (
	"context"
	"time"

	"presupuesto/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const userColumns = "id, username, email, password, monthly_budget, current_month_spent, budget_month, created_at, updated_at"

type UserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("id", "username", "email", "password", "monthly_budget", "current_month_spent", "budget_month", "created_at", "updated_at").
		Values(user.ID, user.Username, user.Email, user.Password, user.MonthlyBudget, user.CurrentMonthSpent, user.BudgetMonth, user.CreatedAt, user.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar)

	return r.getOne(ctx, query)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	return r.getOne(ctx, query)
}

// UpdateBudget sets the monthly budget, stamps the budget month and resets
// the month's spent counter.
func (r *UserRepository) UpdateBudget(ctx context.Context, id uuid.UUID, budget float64, budgetMonth string) error {
	query := squirrel.Update("users").
		Set("monthly_budget", budget).
		Set("budget_month", budgetMonth).
		Set("current_month_spent", 0).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// UpdateSpending sets the running month counter together with its month
// marker so the two never drift apart.
func (r *UserRepository) UpdateSpending(ctx context.Context, id uuid.UUID, spent float64, budgetMonth string) error {
	query := squirrel.Update("users").
		Set("current_month_spent", spent).
		Set("budget_month", budgetMonth).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Delete removes the user; categories, budget items, transactions and
// learned keywords cascade with it.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *UserRepository) getOne(ctx context.Context, query squirrel.SelectBuilder) (*models.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.MonthlyBudget, &user.CurrentMonthSpent, &user.BudgetMonth,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
