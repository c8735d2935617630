package question

import "strings"

// normalizeText trims whitespace and lowercases text for duplicate checks.
func normalizeText(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}
