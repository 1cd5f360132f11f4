package dto

type UpdateBudgetRequest struct {
	MonthlyBudget float64 `json:"monthly_budget"`
}

type RemainingBudgetResponse struct {
	MonthlyBudget     float64 `json:"monthly_budget"`
	CurrentMonthSpent float64 `json:"current_month_spent"`
	RemainingBudget   float64 `json:"remaining_budget"`
	BudgetMonth       string  `json:"budget_month"`
}

type BudgetItemRequest struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	IsRecurring bool    `json:"is_recurring"`
}

// BudgetItemUpdate carries a partial edit; nil fields keep their stored
// value.
type BudgetItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Category    *string  `json:"category,omitempty"`
	IsRecurring *bool    `json:"is_recurring,omitempty"`
}

type BudgetItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	IsRecurring bool    `json:"is_recurring"`
}
