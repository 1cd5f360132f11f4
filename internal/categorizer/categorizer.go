// Package categorizer maps free-text expense descriptions to category names
// using a keyword table: a built-in Spanish seed set extended by keywords
// learned from the user's own selections. All functions are total — absence
// of a match is an empty result, never an error.
package categorizer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxSuggestions caps the number of categories Suggest returns.
const maxSuggestions = 3

// substringMinLen is the minimum keyword length (in runes) for the partial
// containment fallback. Short keywords only count as whole words.
const substringMinLen = 5

// Scores used by Suggest. A whole-word hit on the category's own name weighs
// the most, then whole-word keyword hits, then partial hits on long keywords.
const (
	scoreNameMatch      = 10
	scoreKeywordMatch   = 5
	scoreSubstringMatch = 2
)

// Categorizer detects and suggests categories for expense descriptions.
type Categorizer struct {
	table *Table
}

// New returns a Categorizer backed by the given keyword table. A nil table
// falls back to the built-in defaults.
func New(table *Table) *Categorizer {
	if table == nil {
		table = NewDefaultTable()
	}
	return &Categorizer{table: table}
}

// Table exposes the underlying keyword table.
func (c *Categorizer) Table() *Table { return c.table }

// Detect returns the name of the first category whose keyword set matches the
// description, or "" when nothing matches. Candidates are tried in the order
// given; when no categories are supplied the built-in table is used.
//
// Matching runs in two passes: first whole-word matches across all candidate
// categories, then substring containment for keywords longer than four runes.
func (c *Categorizer) Detect(description string, categories []string) string {
	text := strings.ToLower(strings.TrimSpace(description))
	if text == "" {
		return ""
	}

	candidates := categories
	if len(candidates) == 0 {
		candidates = builtinCategories
	}

	// Pass 1: whole-word hits win outright.
	for _, name := range candidates {
		for _, kw := range c.keywordsFor(name) {
			if matchWholeWord(text, kw) {
				return name
			}
		}
	}

	// Pass 2: partial containment for long keywords.
	for _, name := range candidates {
		for _, kw := range c.keywordsFor(name) {
			if utf8.RuneCountInString(kw) >= substringMinLen && strings.Contains(text, kw) {
				return name
			}
		}
	}

	return ""
}

// Suggest returns up to three category names ordered by match score. Only
// categories that score are returned; ties keep the input order.
func (c *Categorizer) Suggest(description string, categories []string) []string {
	text := strings.ToLower(strings.TrimSpace(description))
	if text == "" {
		return nil
	}

	candidates := categories
	if len(candidates) == 0 {
		candidates = builtinCategories
	}

	type scored struct {
		name  string
		score int
	}
	var suggestions []scored

	for _, name := range candidates {
		nameLower := strings.ToLower(name)
		score := 0
		for _, kw := range c.keywordsFor(name) {
			switch {
			case matchWholeWord(text, kw):
				if kw == nameLower {
					score += scoreNameMatch
				} else {
					score += scoreKeywordMatch
				}
			case utf8.RuneCountInString(kw) >= substringMinLen && strings.Contains(text, kw):
				score += scoreSubstringMatch
			}
		}
		if score > 0 {
			suggestions = append(suggestions, scored{name: name, score: score})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].score > suggestions[j].score
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.name)
	}
	return names
}

// Learn registers the meaningful words of a description as keywords for the
// category the user chose. Re-learning the same description is a no-op, so
// concurrent learns from multiple sessions converge on the same set.
func (c *Categorizer) Learn(description, category string) {
	if category == "" {
		return
	}
	words := Tokenize(description)
	if len(words) > 0 {
		c.table.Add(category, words)
	}
}

// AddKeywords registers extra keywords under a category.
func (c *Categorizer) AddKeywords(category string, keywords []string) {
	c.table.Add(category, keywords)
}

// Keywords returns the keywords registered for a category.
func (c *Categorizer) Keywords(category string) []string {
	return c.table.Keywords(category)
}

// keywordsFor builds the candidate keyword set for a category: its own
// lowercased name plus every registered keyword.
func (c *Categorizer) keywordsFor(name string) []string {
	return append([]string{strings.ToLower(name)}, c.table.Keywords(name)...)
}

// Tokenize splits a description into learnable words: lowercased, stripped of
// everything outside the Latin letter set (accented vowels and ñ included),
// dropping tokens of one or two runes and common Spanish filler words.
func Tokenize(description string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		lower := unicode.ToLower(r)
		if isSpanishLetter(lower) {
			return lower
		}
		return ' '
	}, description)

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		if stopwords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}

// stopwords are prepositions and articles that carry no category signal.
var stopwords = map[string]bool{
	"con": true, "para": true, "por": true, "del": true,
	"las": true, "los": true, "una": true, "uno": true,
	"que": true, "muy": true, "más": true,
}

func isSpanishLetter(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case 'á', 'é', 'í', 'ó', 'ú', 'ñ', 'ü':
		return true
	}
	return false
}

// matchWholeWord reports whether keyword occurs in text bounded by non-word
// runes. Both arguments are expected lowercased.
func matchWholeWord(text, keyword string) bool {
	if keyword == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], keyword)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(keyword)

		before, _ := utf8.DecodeLastRuneInString(text[:idx])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}
		start = idx + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
