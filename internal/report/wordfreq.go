package report

import (
	"sort"
	"strings"
)

// WordFrequencies counts tokens across texts and keeps the topN most
// frequent, ties broken alphabetically.
func WordFrequencies(texts []string, topN int) map[string]int {
	counts := make(map[string]int)
	for _, t := range texts {
		for _, w := range strings.Fields(t) {
			counts[w]++
		}
	}
	if len(counts) <= topN {
		return counts
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	top := make(map[string]int, topN)
	for _, w := range words[:topN] {
		top[w] = counts[w]
	}
	return top
}
