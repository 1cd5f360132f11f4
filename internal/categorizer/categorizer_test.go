package categorizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBuiltinKeywords(t *testing.T) {
	c := New(nil)

	tests := []struct {
		description string
		want        string
	}{
		{"Almuerzo con amigos", "Alimentación"},
		{"Uber al trabajo", "Transporte"},
		{"Entradas al cine", "Entretenimiento"},
		{"Consulta con el doctor", "Salud"},
		{"xyz123 misc thing", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Detect(tt.description, nil), "description: %q", tt.description)
	}
}

func TestDetectWholeWordBoundaries(t *testing.T) {
	c := New(nil)

	// "te" is an Alimentación keyword but must not match inside another word,
	// and it is too short for the substring fallback.
	assert.Equal(t, "", c.Detect("tetera", nil))
	assert.Equal(t, "Alimentación", c.Detect("un te caliente", nil))
}

func TestDetectWholeWordPassWinsAcrossCategories(t *testing.T) {
	table := NewTable()
	table.Add("Mercados", []string{"mercadito"})
	table.Add("Comidas", []string{"cena"})
	c := New(table)

	// "mercaditos" only matches "mercadito" as a substring; the whole-word
	// hit on the later category wins because the passes run across all
	// candidates, not per category.
	got := c.Detect("cena en los mercaditos", []string{"Mercados", "Comidas"})
	assert.Equal(t, "Comidas", got)
}

func TestDetectCandidateOrder(t *testing.T) {
	table := NewTable()
	table.Add("A", []string{"pizza"})
	table.Add("B", []string{"pizza"})
	c := New(table)

	assert.Equal(t, "A", c.Detect("pizza familiar", []string{"A", "B"}))
	assert.Equal(t, "B", c.Detect("pizza familiar", []string{"B", "A"}))
}

func TestDetectMatchesCategoryName(t *testing.T) {
	c := New(NewTable())
	assert.Equal(t, "Viajes", c.Detect("gastos de viajes", []string{"Viajes"}))
}

func TestSuggestOrdering(t *testing.T) {
	c := New(nil)

	got := c.Suggest("almuerzo en restaurante", nil)
	require.NotEmpty(t, got)
	assert.Equal(t, "Alimentación", got[0])
	assert.LessOrEqual(t, len(got), 3)
}

func TestSuggestExcludesZeroScores(t *testing.T) {
	c := New(nil)
	assert.Empty(t, c.Suggest("zzqq wwkk", nil))
	assert.Empty(t, c.Suggest("", nil))
}

func TestSuggestCapsAtThree(t *testing.T) {
	table := NewTable()
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		table.Add(name, []string{"gasto"})
	}
	c := New(table)

	got := c.Suggest("gasto mensual", []string{"A", "B", "C", "D", "E"})
	assert.Len(t, got, 3)
	// Equal scores keep the candidate order.
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestLearnAndDetect(t *testing.T) {
	table := NewTable()
	c := New(table)

	require.Equal(t, "", c.Detect("feria artesanal", []string{"Hobby"}))

	c.Learn("Feria artesanal local", "Hobby")
	assert.Equal(t, "Hobby", c.Detect("feria artesanal", []string{"Hobby"}))
}

func TestLearnIsIdempotent(t *testing.T) {
	table := NewTable()
	c := New(table)

	c.Learn("Feria artesanal local", "Hobby")
	before := c.Keywords("Hobby")

	c.Learn("Feria artesanal local", "Hobby")
	assert.Equal(t, before, c.Keywords("Hobby"))
}

func TestLearnEmptyCategory(t *testing.T) {
	table := NewTable()
	c := New(table)
	c.Learn("algo interesante", "")
	assert.Empty(t, table.keywords)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Cena con amigos en el bar 123", []string{"cena", "amigos", "bar"}},
		{"Compra para la casa", []string{"compra", "casa"}},
		{"a b cd", nil},
		{"", nil},
		{"Más que muy una", nil}, // stopwords only
		{"Peluquería niños", []string{"peluquería", "niños"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize(tt.input), "input: %q", tt.input)
	}
}

func TestTableAddDeduplicates(t *testing.T) {
	table := NewTable()
	table.Add("A", []string{"Pizza", "pizza", " PIZZA ", "", "pasta"})
	assert.Equal(t, []string{"pizza", "pasta"}, table.Keywords("A"))
}

func TestTableKeywordsReturnsCopy(t *testing.T) {
	table := NewTable()
	table.Add("A", []string{"pizza"})

	kws := table.Keywords("A")
	kws[0] = "mutated"
	assert.Equal(t, []string{"pizza"}, table.Keywords("A"))
}
