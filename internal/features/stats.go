package features

import "strings"

// LexicalStats returns the whitespace token count of cleaned text and the
// arithmetic mean of token character lengths. Empty text has zero tokens
// and a mean token length of 0.0.
func LexicalStats(cleaned string) (tokenCount int, avgTokenLen float64) {
	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return 0, 0.0
	}

	total := 0
	for _, t := range tokens {
		total += len(t)
	}
	return len(tokens), float64(total) / float64(len(tokens))
}
