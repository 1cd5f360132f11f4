package models

import (
	"time"

	"github.com/google/uuid"
)

// BudgetItemCategory classifies a fixed monthly obligation.
type BudgetItemCategory string

const (
	BudgetItemCredito   BudgetItemCategory = "credito"
	BudgetItemServicios BudgetItemCategory = "servicios"
	BudgetItemHipoteca  BudgetItemCategory = "hipoteca"
	BudgetItemOtros     BudgetItemCategory = "otros"
)

// Valid reports whether the category is one of the known fixed-expense kinds.
func (c BudgetItemCategory) Valid() bool {
	switch c {
	case BudgetItemCredito, BudgetItemServicios, BudgetItemHipoteca, BudgetItemOtros:
		return true
	}
	return false
}

// BudgetItem is a recurring monthly obligation. It is not tied to a
// transaction date: every period's utilization includes it.
type BudgetItem struct {
	ID          uuid.UUID          `db:"id"`
	UserID      uuid.UUID          `db:"user_id"`
	Name        string             `db:"name"`
	Amount      float64            `db:"amount"`
	Category    BudgetItemCategory `db:"category"`
	IsRecurring bool               `db:"is_recurring"`
	CreatedAt   time.Time          `db:"created_at"`
	UpdatedAt   time.Time          `db:"updated_at"`
}
