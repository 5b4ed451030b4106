package features

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/emoscope/emoscope/internal/models"
)

// EngineeredNames are the trailing dense columns of the feature matrix, in
// column order.
var EngineeredNames = []string{"text_length", "avg_word_length", "polarity", "subjectivity"}

// NumEngineered is the count of dense engineered columns.
const NumEngineered = 4

// Assemble builds the combined feature matrix: one row per post, lexical
// TF-IDF columns first, then the four engineered columns. The vectorizer
// must already be fitted.
func Assemble(posts []models.Post, vec *Vectorizer) (*mat.Dense, error) {
	if len(posts) == 0 {
		return nil, fmt.Errorf("features: no posts to assemble")
	}
	if vec.NumTerms() == 0 {
		return nil, fmt.Errorf("features: vectorizer not fitted")
	}

	cols := vec.NumTerms() + NumEngineered
	m := mat.NewDense(len(posts), cols, nil)

	for i, p := range posts {
		row := vec.Transform(p.Cleaned)
		row = append(row,
			float64(p.TokenCount),
			p.AvgTokenLen,
			p.Polarity,
			p.Subjectivity,
		)
		m.SetRow(i, row)
	}

	return m, nil
}

// SelectRows copies the given rows of m into a new matrix, preserving
// order.
func SelectRows(m *mat.Dense, rows []int) *mat.Dense {
	_, cols := m.Dims()
	out := mat.NewDense(len(rows), cols, nil)
	for i, r := range rows {
		out.SetRow(i, m.RawRowView(r))
	}
	return out
}
