package dto

type ProfileResponse struct {
	User              UserResponse         `json:"user"`
	MonthlyBudget     float64              `json:"monthly_budget"`
	CurrentMonthSpent float64              `json:"current_month_spent"`
	BudgetMonth       string               `json:"budget_month"`
	RemainingBudget   float64              `json:"remaining_budget"`
	Categories        []CategoryResponse   `json:"categories"`
	BudgetItems       []BudgetItemResponse `json:"budget_items"`
}
