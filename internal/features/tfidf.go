package features

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
)

// Vectorizer is a TF-IDF vectorizer over whitespace-tokenized documents.
// The vocabulary keeps the maxTerms most document-frequent terms; ties
// break alphabetically so the mapping is deterministic. Vectors are
// L2-normalized term-frequency times smoothed inverse document frequency.
type Vectorizer struct {
	maxTerms   int
	vocabulary map[string]int
	terms      []string
	idf        []float64
}

func NewVectorizer(maxTerms int) *Vectorizer {
	return &Vectorizer{
		maxTerms:   maxTerms,
		vocabulary: make(map[string]int),
	}
}

// Fit builds the vocabulary and IDF weights over docs.
func (v *Vectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return fmt.Errorf("tfidf: fit on empty corpus")
	}

	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range strings.Fields(doc) {
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	terms := make([]string, 0, len(docFreq))
	for t := range docFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if docFreq[terms[i]] != docFreq[terms[j]] {
			return docFreq[terms[i]] > docFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > v.maxTerms {
		terms = terms[:v.maxTerms]
	}

	v.terms = terms
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, t := range terms {
		v.vocabulary[t] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}

	slog.Info("[TFIDF] Vocabulary fitted",
		slog.Int("documents", len(docs)),
		slog.Int("distinct_terms", len(docFreq)),
		slog.Int("vocabulary", len(v.terms)))

	return nil
}

// Transform maps one document to its weighted term vector. Terms outside
// the vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, term := range strings.Fields(doc) {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= v.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Terms returns the vocabulary in column order.
func (v *Vectorizer) Terms() []string {
	return append([]string(nil), v.terms...)
}

func (v *Vectorizer) NumTerms() int {
	return len(v.terms)
}
