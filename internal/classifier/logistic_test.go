package classifier

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

// blobs builds a tiny linearly separable three-class dataset.
func blobs() (*mat.Dense, []int) {
	data := []float64{
		0.0, 0.1,
		0.2, 0.0,
		-0.1, 0.2,
		0.1, -0.2,
		5.0, 5.1,
		5.2, 4.9,
		4.8, 5.0,
		5.1, 5.2,
		-5.0, 5.0,
		-5.1, 4.8,
		-4.9, 5.2,
		-5.2, 5.1,
	}
	y := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}
	return mat.NewDense(12, 2, data), y
}

func TestLogisticRegressionSeparable(t *testing.T) {
	t.Parallel()

	x, y := blobs()
	lr := NewLogisticRegression()
	if err := lr.Fit(x, y, 3); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	preds := lr.Predict(x)
	for i, p := range preds {
		if p != y[i] {
			t.Errorf("row %d predicted %d, want %d", i, p, y[i])
		}
	}
}

func TestLogisticRegressionDeterministic(t *testing.T) {
	t.Parallel()

	x, y := blobs()

	a := NewLogisticRegression()
	b := NewLogisticRegression()
	if err := a.Fit(x, y, 3); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if err := b.Fit(x, y, 3); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	probe := mat.NewDense(3, 2, []float64{0.3, 0.3, 4.5, 4.5, -4.5, 4.5})
	pa, pb := a.Predict(probe), b.Predict(probe)
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("probe %d: %d vs %d — training is not deterministic", i, pa[i], pb[i])
		}
	}
}

func TestLogisticRegressionRejectsBadInput(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(2, 2, []float64{0, 0, 1, 1})

	lr := NewLogisticRegression()
	if err := lr.Fit(x, []int{0}, 2); err == nil {
		t.Error("expected error for mismatched label count")
	}
	if err := lr.Fit(x, []int{0, 1}, 1); err == nil {
		t.Error("expected error for single class")
	}
	if err := lr.Fit(x, []int{0, 5}, 2); err == nil {
		t.Error("expected error for out-of-range label")
	}
}
