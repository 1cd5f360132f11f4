package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a dated, ad hoc variable expense. Category is free-form and
// matches one of the user's category names or DefaultCategoryName. Dates are
// stored canonically in UTC; the flexible input formats the clients send are
// normalized at the request boundary.
type Transaction struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Description string    `db:"description"`
	Amount      float64   `db:"amount"`
	Category    string    `db:"category"`
	Date        time.Time `db:"date"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
