// Package analysis computes budget summaries from a user's fixed budget
// items and month-filtered transactions: totals, remaining budget,
// utilization, category breakdowns and a financial-health classification.
// Everything here is a pure transform over data snapshots; persistence and
// transport live elsewhere.
package analysis

import (
	"sort"

	"presupuesto/internal/models"
)

// HealthStatus classifies financial health from the savings rate.
type HealthStatus string

const (
	HealthExcellent        HealthStatus = "Excellent"
	HealthGood             HealthStatus = "Good"
	HealthNeedsImprovement HealthStatus = "Needs Improvement"
	HealthCritical         HealthStatus = "Critical"
)

// recommendedSavingsShare is the 20% rule applied to the monthly budget.
const recommendedSavingsShare = 0.20

const topCategoriesLimit = 5

// CategoryTotal is one bucket of the per-category breakdown.
type CategoryTotal struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"` // share of total expenses
}

// Summary is the aggregate view of one budget period.
type Summary struct {
	MonthlyBudget       float64         `json:"monthly_budget"`
	TotalFixed          float64         `json:"total_fixed"`
	TotalVariable       float64         `json:"total_variable"`
	TotalExpenses       float64         `json:"total_expenses"`
	RemainingBudget     float64         `json:"remaining_budget"` // may be negative
	SavingsRate         float64         `json:"savings_rate"`
	BudgetUtilization   float64         `json:"budget_utilization"`
	Health              HealthStatus    `json:"health"`
	Breakdown           []CategoryTotal `json:"breakdown"`
	TopCategories       []CategoryTotal `json:"top_categories"`
	NextMonthProjection float64         `json:"next_month_projection"`
	RecommendedSavings  float64         `json:"recommended_savings"`
}

// Summarize aggregates the period. Fixed items are not date-scoped: every
// period carries all of them. Transactions are expected already filtered to
// the period by the caller. RemainingBudget is left unclamped so the health
// classification sees overspending; display-side clamping is up to callers.
func Summarize(monthlyBudget float64, fixed []models.BudgetItem, variable []models.Transaction) Summary {
	var totalFixed, totalVariable float64
	for _, item := range fixed {
		totalFixed += item.Amount
	}
	for _, tx := range variable {
		totalVariable += tx.Amount
	}

	totalExpenses := totalFixed + totalVariable
	remaining := monthlyBudget - totalExpenses

	var savingsRate, utilization float64
	if monthlyBudget > 0 {
		savingsRate = remaining / monthlyBudget * 100
		utilization = totalExpenses / monthlyBudget * 100
	}

	breakdown := breakdownByCategory(fixed, variable, totalExpenses)

	top := breakdown
	if len(top) > topCategoriesLimit {
		top = top[:topCategoriesLimit]
	}

	return Summary{
		MonthlyBudget:       monthlyBudget,
		TotalFixed:          totalFixed,
		TotalVariable:       totalVariable,
		TotalExpenses:       totalExpenses,
		RemainingBudget:     remaining,
		SavingsRate:         savingsRate,
		BudgetUtilization:   utilization,
		Health:              ClassifyHealth(savingsRate),
		Breakdown:           breakdown,
		TopCategories:       top,
		NextMonthProjection: monthlyBudget - totalFixed,
		RecommendedSavings:  monthlyBudget * recommendedSavingsShare,
	}
}

// ClassifyHealth maps a savings rate to a health band. Bounds are inclusive
// at the bottom of each band.
func ClassifyHealth(savingsRate float64) HealthStatus {
	switch {
	case savingsRate >= 20:
		return HealthExcellent
	case savingsRate >= 10:
		return HealthGood
	case savingsRate >= 0:
		return HealthNeedsImprovement
	default:
		return HealthCritical
	}
}

// breakdownByCategory groups the union of fixed and variable expenses by
// category, sorted descending by amount. Expenses without a category land in
// the default bucket.
func breakdownByCategory(fixed []models.BudgetItem, variable []models.Transaction, totalExpenses float64) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string

	add := func(category string, amount float64) {
		if category == "" {
			category = models.DefaultCategoryName
		}
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] += amount
	}

	for _, item := range fixed {
		add(string(item.Category), item.Amount)
	}
	for _, tx := range variable {
		add(tx.Category, tx.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		entry := CategoryTotal{Category: category, Amount: totals[category]}
		if totalExpenses > 0 {
			entry.Percentage = totals[category] / totalExpenses * 100
		}
		breakdown = append(breakdown, entry)
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount > breakdown[j].Amount
	})
	return breakdown
}
