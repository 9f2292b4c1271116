package domain

import "strings"

// NormalizeBaseForm prepares a base form for case-insensitive storage
// lookups and dedup keys: trims whitespace and lowercases. Diacritics
// are preserved — German umlauts are significant for matching.
func NormalizeBaseForm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
