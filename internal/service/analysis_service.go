package service

import (
	"context"

	"presupuesto/internal/analysis"
	"presupuesto/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MonthlyAnalysis is the full report for one budget period.
type MonthlyAnalysis struct {
	Month   string                  `json:"month"`
	Summary analysis.Summary        `json:"summary"`
	Trends  []analysis.MonthlyTotal `json:"trends"`
}

// AnalysisService assembles the financial report: the user's budget, fixed
// items and month-filtered transactions fed through the aggregator.
type AnalysisService struct {
	userStore UserStore
	itemStore BudgetItemStore
	txStore   TransactionStore
	logger    *zap.Logger
}

func NewAnalysisService(userStore UserStore, itemStore BudgetItemStore, txStore TransactionStore, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		userStore: userStore,
		itemStore: itemStore,
		txStore:   txStore,
		logger:    logger,
	}
}

// Analyze builds the report for the given "YYYY-MM" month, defaulting to the
// present one. The three aggregates load concurrently; the computation
// itself is synchronous and pure.
func (s *AnalysisService) Analyze(ctx context.Context, userID uuid.UUID, month string) (*MonthlyAnalysis, error) {
	if month == "" {
		month = analysis.CurrentMonth()
	} else if !monthKeyPattern.MatchString(month) {
		return nil, ErrInvalidMonth
	}

	var (
		user         *models.User
		items        []models.BudgetItem
		transactions []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.userStore.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.itemStore.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = s.txStore.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := analysis.FilterByMonth(transactions, month)

	return &MonthlyAnalysis{
		Month:   month,
		Summary: analysis.Summarize(user.MonthlyBudget, items, filtered),
		Trends:  analysis.MonthlyTotals(transactions),
	}, nil
}
