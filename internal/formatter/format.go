package formatter

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned by Format when the raw input is empty or only
// whitespace.
var ErrEmptyInput = errors.New("input is empty")

// Options controls the optional parts of the output.
type Options struct {
	// IncludeBrackets wraps the joined list in parentheses.
	IncludeBrackets bool
	// EscapeQuotes doubles apostrophes found inside tokens. Off by default.
	EscapeQuotes bool
}

// Result is the outcome of a successful Format call.
type Result struct {
	Output      string `json:"output"`
	UniqueCount int    `json:"unique_count"`
}

// Format runs the full pipeline over raw. Blank input is rejected before any
// transformation; anything else succeeds, possibly with an empty list when
// sanitizing removes every character.
func Format(raw string, opts Options) (Result, error) {
	if strings.TrimSpace(raw) == "" {
		return Result{}, ErrEmptyInput
	}
	unique := Dedupe(Tokenize(Sanitize(raw)))
	return Result{
		Output:      Join(Quote(unique, opts), opts),
		UniqueCount: len(unique),
	}, nil
}

// Explain tokenizes raw the same way Format does and tallies the tokens.
func Explain(raw string) []TokenStat {
	return Tally(Tokenize(Sanitize(raw)))
}
