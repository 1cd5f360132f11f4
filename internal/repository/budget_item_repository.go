package repository

import (
	"context"

	"presupuesto/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const budgetItemColumns = "id, user_id, name, amount, category, is_recurring, created_at, updated_at"

type BudgetItemRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetItemRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetItemRepository {
	return &BudgetItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BudgetItemRepository) Create(ctx context.Context, item *models.BudgetItem) error {
	query := squirrel.Insert("budget_items").
		Columns("id", "user_id", "name", "amount", "category", "is_recurring", "created_at", "updated_at").
		Values(item.ID, item.UserID, item.Name, item.Amount, item.Category, item.IsRecurring, item.CreatedAt, item.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BudgetItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BudgetItem, error) {
	query := squirrel.Select(budgetItemColumns).
		From("budget_items").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var item models.BudgetItem
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&item.ID, &item.UserID, &item.Name, &item.Amount, &item.Category,
		&item.IsRecurring, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *BudgetItemRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BudgetItem, error) {
	query := squirrel.Select(budgetItemColumns).
		From("budget_items").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.BudgetItem
	for rows.Next() {
		var item models.BudgetItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Name, &item.Amount, &item.Category,
			&item.IsRecurring, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *BudgetItemRepository) Update(ctx context.Context, item *models.BudgetItem) error {
	query := squirrel.Update("budget_items").
		Set("name", item.Name).
		Set("amount", item.Amount).
		Set("category", item.Category).
		Set("is_recurring", item.IsRecurring).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID, "user_id": item.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BudgetItemRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("budget_items").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
