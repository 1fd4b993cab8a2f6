package domain

import "strings"

// SubjectKey normalizes a session subject or plan title for matching:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - folds every run of whitespace into a single space
//
// Punctuation and diacritics are preserved.
func SubjectKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
