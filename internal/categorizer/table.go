package categorizer

import "strings"

// Table holds the keyword sets per category name. It replaces the original
// process-wide mutable table with an explicit instance owned by the caller,
// so each user session can carry its own learned keywords.
//
// Keyword sets are append-only and de-duplicated case-insensitively.
type Table struct {
	keywords map[string][]string
}

// NewTable returns an empty keyword table.
func NewTable() *Table {
	return &Table{keywords: make(map[string][]string)}
}

// NewDefaultTable returns a table seeded with the built-in Spanish
// category keywords.
func NewDefaultTable() *Table {
	t := NewTable()
	for _, name := range builtinCategories {
		t.Add(name, builtinKeywords[name])
	}
	return t
}

// Add registers keywords under a category. Keywords are lowercased, trimmed
// and de-duplicated against the existing set; empty strings are dropped.
func (t *Table) Add(category string, keywords []string) {
	existing := make(map[string]struct{}, len(t.keywords[category]))
	for _, kw := range t.keywords[category] {
		existing[kw] = struct{}{}
	}

	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := existing[kw]; ok {
			continue
		}
		existing[kw] = struct{}{}
		t.keywords[category] = append(t.keywords[category], kw)
	}
}

// Keywords returns the registered keywords for a category, in registration
// order. The returned slice is a copy.
func (t *Table) Keywords(category string) []string {
	kws := t.keywords[category]
	if len(kws) == 0 {
		return nil
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}
