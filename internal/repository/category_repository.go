package repository

import (
	"context"

	"presupuesto/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns the user's categories in their configured order, which
// is the categorizer's authoritative iteration order.
func (r *CategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	query := squirrel.Select("id", "user_id", "name", "icon", "color", "position", "created_at").
		From("categories").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("position ASC").
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

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color, &c.Position, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// ReplaceAll swaps the user's category set atomically, preserving the order
// of the given slice as each category's position.
func (r *CategoryRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, categories []models.Category) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.Delete("categories").
			Where(squirrel.Eq{"user_id": userID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, deleteSQL, deleteArgs...); err != nil {
			return err
		}

		if len(categories) == 0 {
			return nil
		}

		builder := squirrel.Insert("categories").
			Columns("id", "user_id", "name", "icon", "color", "position", "created_at").
			PlaceholderFormat(squirrel.Dollar)
		for i, c := range categories {
			builder = builder.Values(c.ID, userID, c.Name, c.Icon, c.Color, i, c.CreatedAt)
		}

		insertSQL, insertArgs, err := builder.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, insertSQL, insertArgs...)
		return err
	})
}
