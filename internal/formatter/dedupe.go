package formatter

// TokenStat describes one distinct token of a sequence.
type TokenStat struct {
	Token string `json:"token"`
	// First is the 0-based index of the first occurrence.
	First int `json:"first"`
	Count int `json:"count"`
}

// Dedupe returns tokens with repeats removed. Equality is exact and
// case-sensitive; the first occurrence of each token wins and relative order
// is preserved. The input slice is not modified.
func Dedupe(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}
	return unique
}

// Tally reports each distinct token in first-occurrence order together with
// where it first appeared and how many times it occurred.
func Tally(tokens []string) []TokenStat {
	index := make(map[string]int, len(tokens))
	stats := make([]TokenStat, 0, len(tokens))
	for pos, token := range tokens {
		if i, ok := index[token]; ok {
			stats[i].Count++
			continue
		}
		index[token] = len(stats)
		stats = append(stats, TokenStat{Token: token, First: pos, Count: 1})
	}
	return stats
}
