package formatter

import "strings"

const (
	delimiter    = ", "
	openBracket  = "("
	closeBracket = ")"
)

// Join concatenates quoted tokens with ", ". When opts.IncludeBrackets is set
// the result is wrapped in parentheses, so an empty list becomes "()".
func Join(quoted []string, opts Options) string {
	joined := strings.Join(quoted, delimiter)
	if opts.IncludeBrackets {
		return openBracket + joined + closeBracket
	}
	return joined
}
