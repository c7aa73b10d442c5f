package canon

import "strings"

// Fold normalizes free text for matching: trims, lowercases and collapses
// internal whitespace. City names and keywords arrive from URLs and form
// fields with inconsistent casing and spacing.
func Fold(s string) string {
	return strings.ToLower(collapseSpaces(s))
}

// Contains reports whether needle occurs in haystack, case-insensitively.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// EqualFold reports whether two strings are equal after Fold.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
