package classifier

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// LogisticRegression is a multinomial softmax classifier trained by
// full-batch gradient descent with a fixed iteration cap. Features are
// standardized internally on the training partition, so TF-IDF columns
// and raw counts can share one matrix.
type LogisticRegression struct {
	MaxIter      int
	LearningRate float64

	numClasses int
	weights    *mat.Dense // (features+1) x classes, last row is the bias
	means      []float64
	stds       []float64
}

func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		MaxIter:      200,
		LearningRate: 0.5,
	}
}

func (l *LogisticRegression) Name() string { return "logistic_regression" }

func (l *LogisticRegression) Fit(x *mat.Dense, y []int, numClasses int) error {
	rows, cols := x.Dims()
	if rows != len(y) {
		return fmt.Errorf("logistic: %d rows but %d labels", rows, len(y))
	}
	if rows == 0 || numClasses < 2 {
		return fmt.Errorf("logistic: need rows and at least two classes")
	}

	l.numClasses = numClasses
	l.fitScaler(x)
	xb := withBias(l.scale(x))

	// One-hot targets.
	targets := mat.NewDense(rows, numClasses, nil)
	for i, c := range y {
		if c < 0 || c >= numClasses {
			return fmt.Errorf("logistic: label %d outside [0,%d)", c, numClasses)
		}
		targets.Set(i, c, 1)
	}

	l.weights = mat.NewDense(cols+1, numClasses, nil)
	grad := mat.NewDense(cols+1, numClasses, nil)
	probs := mat.NewDense(rows, numClasses, nil)

	for iter := 0; iter < l.MaxIter; iter++ {
		l.forward(xb, probs)
		probs.Sub(probs, targets)

		// grad = [X 1]^T * (P - Y) / n
		grad.Mul(xb.T(), probs)
		grad.Scale(l.LearningRate/float64(rows), grad)
		l.weights.Sub(l.weights, grad)
	}

	slog.Info("[LogisticRegression] Fit complete",
		slog.Int("rows", rows),
		slog.Int("features", cols),
		slog.Int("classes", numClasses),
		slog.Int("iterations", l.MaxIter))

	return nil
}

func (l *LogisticRegression) Predict(x *mat.Dense) []int {
	rows, _ := x.Dims()
	probs := mat.NewDense(rows, l.numClasses, nil)
	l.forward(withBias(l.scale(x)), probs)

	preds := make([]int, rows)
	for i := range preds {
		preds[i] = floats.MaxIdx(probs.RawRowView(i))
	}
	return preds
}

// forward fills dst with row-wise softmax of xb * W, where xb already
// carries the bias column.
func (l *LogisticRegression) forward(xb *mat.Dense, dst *mat.Dense) {
	dst.Mul(xb, l.weights)

	rows, _ := dst.Dims()
	for i := 0; i < rows; i++ {
		row := dst.RawRowView(i)
		max := floats.Max(row)
		var sum float64
		for j := range row {
			row[j] = math.Exp(row[j] - max)
			sum += row[j]
		}
		floats.Scale(1/sum, row)
	}
}

func (l *LogisticRegression) fitScaler(x *mat.Dense) {
	rows, cols := x.Dims()
	l.means = make([]float64, cols)
	l.stds = make([]float64, cols)

	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, x)
		mean := floats.Sum(col) / float64(rows)
		var ss float64
		for _, v := range col {
			d := v - mean
			ss += d * d
		}
		std := math.Sqrt(ss / float64(rows))
		if std == 0 {
			std = 1
		}
		l.means[j] = mean
		l.stds[j] = std
	}
}

func (l *LogisticRegression) scale(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		src := x.RawRowView(i)
		dst := out.RawRowView(i)
		for j := 0; j < cols; j++ {
			dst[j] = (src[j] - l.means[j]) / l.stds[j]
		}
	}
	return out
}

// withBias appends a constant-one column to x.
func withBias(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		copy(out.RawRowView(i), x.RawRowView(i))
		out.Set(i, cols, 1)
	}
	return out
}
