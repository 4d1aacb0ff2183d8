package matching

import "strings"

// Tokenize splits a comma-separated interests string into lower-cased,
// trimmed keywords. Empty pieces are dropped; order and duplicates are kept.
func Tokenize(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}

// containedIn reports whether the query keyword appears inside the candidate keyword
func containedIn(query, candidate string) bool {
	return query == candidate || strings.Contains(candidate, query)
}

// overlaps reports whether either keyword contains the other
func overlaps(query, candidate string) bool {
	return containedIn(query, candidate) || strings.Contains(query, candidate)
}

// countMatches counts query keywords that match at least one candidate keyword.
// Each query keyword contributes at most once.
func countMatches(query, candidate []string, match func(q, c string) bool) int {
	matches := 0
	for _, q := range query {
		for _, c := range candidate {
			if match(q, c) {
				matches++
				break
			}
		}
	}
	return matches
}
