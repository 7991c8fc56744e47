package formatter

import "strings"

const quoteChar = "'"

// Quote wraps each token in apostrophes. Apostrophes inside a token are left
// as-is unless opts.EscapeQuotes is set, in which case they are doubled.
func Quote(tokens []string, opts Options) []string {
	quoted := make([]string, len(tokens))
	for i, token := range tokens {
		if opts.EscapeQuotes {
			token = strings.ReplaceAll(token, quoteChar, quoteChar+quoteChar)
		}
		quoted[i] = quoteChar + token + quoteChar
	}
	return quoted
}
