package formatter

import "strings"

// markupReplacer strips characters that could be read as markup.
var markupReplacer = strings.NewReplacer(
	"<", "",
	">", "",
)

// Sanitize removes every '<' and '>' from text and trims leading and trailing
// whitespace. No other characters are altered.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(markupReplacer.Replace(text))
}
