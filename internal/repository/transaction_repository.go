package repository

import (
	"context"

	"presupuesto/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const transactionColumns = "id, user_id, description, amount, category, date, created_at, updated_at"

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns("id", "user_id", "description", "amount", "category", "date", "created_at", "updated_at").
		Values(tx.ID, tx.UserID, tx.Description, tx.Amount, tx.Category, tx.Date, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) CreateBatch(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	builder := squirrel.Insert("transactions").
		Columns("id", "user_id", "description", "amount", "category", "date", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, tx := range transactions {
		builder = builder.Values(tx.ID, tx.UserID, tx.Description, tx.Amount, tx.Category, tx.Date, tx.CreatedAt, tx.UpdatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tx.ID, &tx.UserID, &tx.Description, &tx.Amount, &tx.Category,
		&tx.Date, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &tx, nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC").
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

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Description, &tx.Amount, &tx.Category,
			&tx.Date, &tx.CreatedAt, &tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("description", tx.Description).
		Set("amount", tx.Amount).
		Set("category", tx.Category).
		Set("date", tx.Date).
		Set("updated_at", tx.UpdatedAt).
		Where(squirrel.Eq{"id": tx.ID, "user_id": tx.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
