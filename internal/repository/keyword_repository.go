package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// KeywordRepository persists the per-user learned keyword table. Inserts are
// idempotent (ON CONFLICT DO NOTHING), so concurrent learning sessions
// converge on the same set.
type KeywordRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKeywordRepository(db *pgxpool.Pool, logger *zap.Logger) *KeywordRepository {
	return &KeywordRepository{
		db:     db,
		logger: logger,
	}
}

func (r *KeywordRepository) Add(ctx context.Context, userID uuid.UUID, category string, keywords []string) error {
	if len(keywords) == 0 {
		return nil
	}

	now := time.Now().UTC()
	builder := squirrel.Insert("category_keywords").
		Columns("user_id", "category", "keyword", "created_at").
		Suffix("ON CONFLICT (user_id, category, keyword) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
	for _, kw := range keywords {
		builder = builder.Values(userID, category, kw, now)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUser returns the user's learned keywords grouped by category, in
// learning order within each category.
func (r *KeywordRepository) ListByUser(ctx context.Context, userID uuid.UUID) (map[string][]string, error) {
	query := squirrel.Select("category", "keyword").
		From("category_keywords").
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

	keywords := make(map[string][]string)
	for rows.Next() {
		var category, keyword string
		if err := rows.Scan(&category, &keyword); err != nil {
			return nil, err
		}
		keywords[category] = append(keywords[category], keyword)
	}

	return keywords, rows.Err()
}
