package service

import (
	"context"
	"testing"

	"presupuesto/internal/dto"
	"presupuesto/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCategoryFixture() (*CategoryService, *fakeCategoryStore, *fakeKeywordStore, uuid.UUID) {
	categories := newFakeCategoryStore()
	keywords := newFakeKeywordStore()
	return NewCategoryService(categories, keywords, zap.NewNop()), categories, keywords, uuid.New()
}

func TestResolveExplicitWinsAndLearns(t *testing.T) {
	svc, _, keywords, userID := newCategoryFixture()
	ctx := context.Background()

	category, source, err := svc.Resolve(ctx, userID, "Mascotas", "Veterinario consulta perro")
	require.NoError(t, err)
	assert.Equal(t, "Mascotas", category)
	assert.Equal(t, SourceExplicit, source)

	learned, err := keywords.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"veterinario", "consulta", "perro"}, learned["Mascotas"])
}

func TestResolveDetects(t *testing.T) {
	svc, _, _, userID := newCategoryFixture()

	category, source, err := svc.Resolve(context.Background(), userID, "", "Almuerzo con amigos")
	require.NoError(t, err)
	assert.Equal(t, "Alimentación", category)
	assert.Equal(t, SourceDetected, source)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	svc, _, _, userID := newCategoryFixture()

	category, source, err := svc.Resolve(context.Background(), userID, "", "zzqq wwkk")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategoryName, category)
	assert.Equal(t, SourceDefault, source)
}

func TestDetectUsesLearnedKeywords(t *testing.T) {
	svc, categories, _, userID := newCategoryFixture()
	ctx := context.Background()

	_, err := svc.Replace(ctx, userID, []dto.CategoryRequest{{Name: "Hobby"}})
	require.NoError(t, err)
	_ = categories

	got, err := svc.Detect(ctx, userID, "feria artesanal")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, svc.Learn(ctx, userID, "Feria artesanal local", "Hobby"))

	got, err = svc.Detect(ctx, userID, "feria artesanal")
	require.NoError(t, err)
	assert.Equal(t, "Hobby", got)
}

func TestDetectRespectsConfiguredCategoryOrder(t *testing.T) {
	svc, _, _, userID := newCategoryFixture()
	ctx := context.Background()

	_, err := svc.Replace(ctx, userID, []dto.CategoryRequest{
		{Name: "Transporte"},
		{Name: "Alimentación"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddKeywords(ctx, userID, "Transporte", []string{"pizza"}))

	// "pizza" now belongs to both categories; the user's order decides.
	got, err := svc.Detect(ctx, userID, "pizza a domicilio")
	require.NoError(t, err)
	assert.Equal(t, "Transporte", got)
}

func TestReplaceValidation(t *testing.T) {
	svc, _, _, userID := newCategoryFixture()
	ctx := context.Background()

	_, err := svc.Replace(ctx, userID, []dto.CategoryRequest{{Name: "  "}})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.Replace(ctx, userID, []dto.CategoryRequest{{Name: "Hogar"}, {Name: "hogar"}})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestReplaceKeepsOrder(t *testing.T) {
	svc, _, _, userID := newCategoryFixture()
	ctx := context.Background()

	got, err := svc.Replace(ctx, userID, []dto.CategoryRequest{
		{Name: "Hogar", Icon: "🏠", Color: "#fff"},
		{Name: "Viajes"},
		{Name: "Regalos"},
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Hogar", got[0].Name)
	assert.Equal(t, "Viajes", got[1].Name)
	assert.Equal(t, "Regalos", got[2].Name)
	assert.Equal(t, "🏠", got[0].Icon)
}

func TestAddKeywordsNormalizes(t *testing.T) {
	svc, _, keywords, userID := newCategoryFixture()
	ctx := context.Background()

	require.NoError(t, svc.AddKeywords(ctx, userID, "Hobby", []string{" Feria ", "FERIA", "", "taller"}))

	learned, err := keywords.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"feria", "taller"}, learned["Hobby"])
}

func TestKeywordsMergesBuiltinAndLearned(t *testing.T) {
	svc, _, _, userID := newCategoryFixture()
	ctx := context.Background()

	require.NoError(t, svc.AddKeywords(ctx, userID, "Alimentación", []string{"empanadería"}))

	kws, err := svc.Keywords(ctx, userID, "Alimentación")
	require.NoError(t, err)
	assert.Contains(t, kws, "almuerzo")
	assert.Contains(t, kws, "empanadería")
}

func TestSuggestScopedToUserCategories(t *testing.T) {
	svc, _, _, userID := newCategoryFixture()
	ctx := context.Background()

	_, err := svc.Replace(ctx, userID, []dto.CategoryRequest{{Name: "Alimentación"}})
	require.NoError(t, err)

	got, err := svc.Suggest(ctx, userID, "almuerzo y bencina")
	require.NoError(t, err)
	// "bencina" would suggest Transporte, but the user does not have it.
	assert.Equal(t, []string{"Alimentación"}, got)
}

func TestPredefinedCategories(t *testing.T) {
	svc, _, _, _ := newCategoryFixture()

	predefined := svc.Predefined()
	require.NotEmpty(t, predefined)

	names := make([]string, 0, len(predefined))
	for _, c := range predefined {
		names = append(names, c.Name)
		assert.NotEmpty(t, c.Icon, "category %q has no icon", c.Name)
		assert.NotEmpty(t, c.Color, "category %q has no color", c.Name)
	}
	assert.Contains(t, names, "Almuerzo")
	assert.Contains(t, names, "Locomoción")
}
