package domain

import "strings"

// NormalizeText folds free text for case-insensitive matching against story
// titles: lowercase, with every whitespace run (spaces, tabs, newlines)
// collapsed to one space and the ends trimmed. Punctuation and diacritics
// are kept.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
