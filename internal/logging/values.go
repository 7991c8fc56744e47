package logging

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

const consoleTimeLayout = "2006-01-02T15:04:05.000"

// renderValue renders v for a console key=value pair. Strings that would
// break the pair apart when read back are quoted.
func renderValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString, slog.KindAny:
		return quoteIfNeeded(plainValue(v))
	case slog.KindTime:
		return renderTime(v.Time())
	default:
		return v.String()
	}
}

// plainValue is the unquoted text of v.
func plainValue(v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindAny {
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
	}
	return v.String()
}

func renderTime(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format(consoleTimeLayout)
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsFunc(s, breaksPair) {
		return strconv.Quote(s)
	}
	return s
}

func breaksPair(r rune) bool {
	return r <= ' ' || r == '=' || r == '"'
}
