package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input       string
		description string
		amount      float64
	}{
		{"Almuerzo 15000", "Almuerzo", 15000},
		{"Uber al trabajo $8500", "Uber al trabajo", 8500},
		{"$25000 cena restaurante", "Cena restaurante", 25000},
		{"15000 almuerzo", "Almuerzo", 15000},
		{"Compra supermercado 45.000", "Compra supermercado", 45000},
		{"Bencina 30,000 pesos", "Bencina", 30000},
		{"Taxi 12000 clp", "Taxi", 12000},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.input)
		require.True(t, ok, "input: %q", tt.input)
		assert.Equal(t, tt.description, got.Description, "input: %q", tt.input)
		assert.Equal(t, tt.amount, got.Amount, "input: %q", tt.input)
	}
}

func TestParseAmountOnly(t *testing.T) {
	got, ok := Parse("15000")
	require.True(t, ok)
	assert.Equal(t, FallbackDescription, got.Description)
	assert.Equal(t, 15000.0, got.Amount)
}

func TestParseNoPlausibleAmount(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"almuerzo con amigos",
		"propina 50",       // below the minimum
		"lotería 99999999", // above the maximum
	} {
		_, ok := Parse(input)
		assert.False(t, ok, "input: %q", input)
	}
}

func TestParsePrefersExplicitMoneyNotation(t *testing.T) {
	// The $-prefixed number is the price; the bare number stays in the
	// description.
	got, ok := Parse("2 pizzas grandes $18000")
	require.True(t, ok)
	assert.Equal(t, 18000.0, got.Amount)
	assert.Contains(t, got.Description, "pizzas")
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("Almuerzo 15000"))
	assert.True(t, Valid("500 peso entry"))
	assert.False(t, Valid("ab"))
	assert.False(t, Valid("almuerzo rico"))
	assert.False(t, Valid("12"))
}

func TestExamplesAllParse(t *testing.T) {
	for _, example := range Examples() {
		_, ok := Parse(example)
		assert.True(t, ok, "example: %q", example)
	}
}
