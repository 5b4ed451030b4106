package features

import (
	"testing"

	"github.com/emoscope/emoscope/internal/models"
)

func TestAssembleColumnOrder(t *testing.T) {
	t.Parallel()

	posts := []models.Post{
		{Cleaned: "apple banana", TokenCount: 2, AvgTokenLen: 5.5, Polarity: 0.4, Subjectivity: 0.7},
		{Cleaned: "apple", TokenCount: 1, AvgTokenLen: 5, Polarity: -0.2, Subjectivity: 0.1},
	}

	vec := NewVectorizer(10)
	if err := vec.Fit([]string{posts[0].Cleaned, posts[1].Cleaned}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	m, err := Assemble(posts, vec)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	rows, cols := m.Dims()
	if rows != 2 || cols != vec.NumTerms()+NumEngineered {
		t.Fatalf("dims = %dx%d, want 2x%d", rows, cols, vec.NumTerms()+NumEngineered)
	}

	// Engineered columns sit after the lexical block, in fixed order.
	base := vec.NumTerms()
	if m.At(0, base) != 2 || m.At(0, base+1) != 5.5 || m.At(0, base+2) != 0.4 || m.At(0, base+3) != 0.7 {
		t.Errorf("engineered row 0 = [%v %v %v %v]",
			m.At(0, base), m.At(0, base+1), m.At(0, base+2), m.At(0, base+3))
	}
	if m.At(1, base+2) != -0.2 {
		t.Errorf("polarity row 1 = %v, want -0.2", m.At(1, base+2))
	}
}

func TestAssembleRequiresFit(t *testing.T) {
	t.Parallel()

	posts := []models.Post{{Cleaned: "hello"}}
	if _, err := Assemble(posts, NewVectorizer(10)); err == nil {
		t.Error("expected error with unfitted vectorizer")
	}
}

func TestSelectRows(t *testing.T) {
	t.Parallel()

	posts := []models.Post{
		{Cleaned: "a", TokenCount: 1},
		{Cleaned: "b", TokenCount: 2},
		{Cleaned: "c", TokenCount: 3},
	}
	vec := NewVectorizer(10)
	if err := vec.Fit([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	m, err := Assemble(posts, vec)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	sub := SelectRows(m, []int{2, 0})
	rows, _ := sub.Dims()
	if rows != 2 {
		t.Fatalf("selected %d rows, want 2", rows)
	}
	base := vec.NumTerms()
	if sub.At(0, base) != 3 || sub.At(1, base) != 1 {
		t.Errorf("row selection out of order: [%v %v]", sub.At(0, base), sub.At(1, base))
	}
}
