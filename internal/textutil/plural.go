package textutil

import "fmt"

// Plural returns singular when count is exactly 1 and plural otherwise.
func Plural(count int, singular, plural string) string {
	return Ternary(count == 1, singular, plural)
}

// CountNoun renders count followed by the matching noun form, e.g. "1 string"
// or "3 strings".
func CountNoun(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, Plural(count, singular, plural))
}
