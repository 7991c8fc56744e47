package formatter

import "strings"

// Tokenize splits text on runs of whitespace as classified by unicode.IsSpace.
// Empty fragments never appear in the result, so blank input yields an empty
// slice.
func Tokenize(text string) []string {
	return strings.Fields(text)
}
