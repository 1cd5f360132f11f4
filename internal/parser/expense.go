// Package parser extracts structured expense entries from free-text input
// like "Almuerzo 15000", "Uber al trabajo $8500" or "$25000 cena restaurante".
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Amounts outside this range are assumed to be part of the description
// (quantities, addresses) rather than a price.
const (
	minAmount = 100
	maxAmount = 10_000_000
)

// FallbackDescription is used when the input holds nothing but an amount.
const FallbackDescription = "Gasto"

// ParsedExpense is the structured result of a free-text entry.
type ParsedExpense struct {
	Description string
	Amount      float64
}

// amountPatterns are tried in order; more explicit money notations win over
// bare numbers.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$([\d,.]+)`),
	regexp.MustCompile(`(?i)([\d,.]+)\s*pesos?`),
	regexp.MustCompile(`(?i)([\d,.]+)\s*clp`),
	regexp.MustCompile(`\b([\d,.]+)\b`),
}

// Parse extracts an amount and a description from a free-text expense entry.
// It returns false when no plausible amount is present.
func Parse(input string) (ParsedExpense, bool) {
	clean := strings.TrimSpace(input)
	if clean == "" {
		return ParsedExpense{}, false
	}

	var (
		amount  float64
		matched string
		found   bool
	)

	for _, pattern := range amountPatterns {
		for _, m := range pattern.FindAllStringSubmatch(clean, -1) {
			n, err := strconv.ParseInt(stripSeparators(m[1]), 10, 64)
			if err != nil {
				continue
			}
			if n >= minAmount && n <= maxAmount {
				amount = float64(n)
				matched = m[0]
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	if !found {
		return ParsedExpense{}, false
	}

	description := strings.TrimSpace(strings.Replace(clean, matched, "", 1))
	description = strings.Trim(description, " $,.-")
	if description == "" {
		description = FallbackDescription
	}

	return ParsedExpense{
		Description: capitalize(description),
		Amount:      amount,
	}, true
}

var looksLikeAmount = regexp.MustCompile(`\b\d{3,}\b`)

// Valid reports whether a text looks like an expense entry: at least three
// characters and a number large enough to be an amount.
func Valid(input string) bool {
	if utf8.RuneCountInString(strings.TrimSpace(input)) < 3 {
		return false
	}
	return looksLikeAmount.MatchString(input)
}

// Examples returns representative inputs the parser understands, for use in
// UI hints and documentation.
func Examples() []string {
	return []string{
		"Almuerzo 15000",
		"Uber al trabajo $8500",
		"Compra supermercado 45000",
		"Doctor consulta 35000",
		"15000 almuerzo",
		"$25000 cena restaurante",
		"Medicamentos farmacia 12000",
		"Bencina auto 30000",
		"Cine con amigos 8000",
	}
}

func stripSeparators(s string) string {
	return strings.NewReplacer(",", "", ".", "").Replace(s)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
