// Package formatter turns free-form text into a quoted, comma-joined list
// suitable for pasting into code.
//
// The pipeline runs in a fixed order:
//   - Sanitize removes '<' and '>' characters and trims surrounding whitespace
//   - Tokenize splits on runs of whitespace
//   - Dedupe drops repeated tokens, keeping first occurrences in order
//   - Quote wraps each token in apostrophes
//   - Join separates tokens with ", " and optionally wraps the list in parentheses
//
// Every stage is a pure function. Format composes them and is the only
// operation that can fail, returning ErrEmptyInput for blank input.
package formatter
