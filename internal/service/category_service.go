package service

import (
	"context"
	"strings"
	"time"

	"presupuesto/internal/categorizer"
	"presupuesto/internal/dto"
	"presupuesto/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategorySource tells which stage of the resolution chain produced a
// transaction's category.
type CategorySource string

const (
	SourceExplicit CategorySource = "explicit"
	SourceDetected CategorySource = "detected"
	SourceDefault  CategorySource = "default"
)

// CategoryService manages the user's category set and fronts the keyword
// categorizer: the built-in keyword table extended with the keywords learned
// for that user, rebuilt from storage on each request so sessions see each
// other's learning.
type CategoryService struct {
	categoryStore CategoryStore
	keywordStore  KeywordStore
	logger        *zap.Logger
}

func NewCategoryService(categoryStore CategoryStore, keywordStore KeywordStore, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryStore: categoryStore,
		keywordStore:  keywordStore,
		logger:        logger,
	}
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	return s.categoryStore.ListByUser(ctx, userID)
}

// Predefined returns the onboarding suggestion list.
func (s *CategoryService) Predefined() []models.Category {
	return models.PredefinedCategories
}

// Replace swaps the user's category set, keeping the given order. Names must
// be present and unique.
func (s *CategoryService) Replace(ctx context.Context, userID uuid.UUID, reqs []dto.CategoryRequest) ([]models.Category, error) {
	now := time.Now().UTC()
	seen := make(map[string]struct{}, len(reqs))
	categories := make([]models.Category, 0, len(reqs))
	for i, req := range reqs {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return nil, ErrInvalidCategory
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, ErrInvalidCategory
		}
		seen[key] = struct{}{}
		categories = append(categories, models.Category{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      name,
			Icon:      req.Icon,
			Color:     req.Color,
			Position:  i,
			CreatedAt: now,
		})
	}

	if err := s.categoryStore.ReplaceAll(ctx, userID, categories); err != nil {
		return nil, err
	}

	// Read back so callers observe exactly what was stored.
	return s.categoryStore.ListByUser(ctx, userID)
}

// Resolve runs the three-stage category resolution: explicit selection wins
// and is learned from, then keyword detection, then the default bucket.
func (s *CategoryService) Resolve(ctx context.Context, userID uuid.UUID, explicit, description string) (string, CategorySource, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if err := s.Learn(ctx, userID, description, explicit); err != nil {
			// Learning is best effort; the selection still stands.
			s.logger.Warn("Failed to learn from selection", zap.Error(err))
		}
		return explicit, SourceExplicit, nil
	}

	detected, err := s.Detect(ctx, userID, description)
	if err != nil {
		return "", "", err
	}
	if detected != "" {
		return detected, SourceDetected, nil
	}
	return models.DefaultCategoryName, SourceDefault, nil
}

// Detect returns the first matching category name for a description, or ""
// when nothing matches.
func (s *CategoryService) Detect(ctx context.Context, userID uuid.UUID, description string) (string, error) {
	cat, names, err := s.categorizerFor(ctx, userID)
	if err != nil {
		return "", err
	}
	return cat.Detect(description, names), nil
}

// Suggest returns up to three category suggestions ordered by relevance.
func (s *CategoryService) Suggest(ctx context.Context, userID uuid.UUID, description string) ([]string, error) {
	cat, names, err := s.categorizerFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return cat.Suggest(description, names), nil
}

// Learn persists the description's meaningful words as keywords for the
// chosen category.
func (s *CategoryService) Learn(ctx context.Context, userID uuid.UUID, description, category string) error {
	words := categorizer.Tokenize(description)
	if len(words) == 0 {
		return nil
	}
	return s.keywordStore.Add(ctx, userID, category, words)
}

// AddKeywords registers extra keywords under a category.
func (s *CategoryService) AddKeywords(ctx context.Context, userID uuid.UUID, category string, keywords []string) error {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			normalized = append(normalized, kw)
		}
	}
	if len(normalized) == 0 {
		return nil
	}
	return s.keywordStore.Add(ctx, userID, category, normalized)
}

// Keywords returns the effective keyword set for a category: built-in seeds
// plus the user's learned words.
func (s *CategoryService) Keywords(ctx context.Context, userID uuid.UUID, category string) ([]string, error) {
	learned, err := s.keywordStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	table := categorizer.NewDefaultTable()
	table.Add(category, learned[category])
	return table.Keywords(category), nil
}

// categorizerFor builds the per-user categorizer: default table plus learned
// keywords, iterating the user's categories in their configured order. With
// no categories configured the built-in table order applies.
func (s *CategoryService) categorizerFor(ctx context.Context, userID uuid.UUID) (*categorizer.Categorizer, []string, error) {
	categories, err := s.categoryStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	learned, err := s.keywordStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	table := categorizer.NewDefaultTable()
	for category, words := range learned {
		table.Add(category, words)
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return categorizer.New(table), names, nil
}
