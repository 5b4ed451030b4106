package classifier

import (
	"fmt"
	"log/slog"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomForest bags NumTrees CART trees, each fit on a bootstrap sample
// with sqrt-of-features subsampling at every split. Prediction is a
// majority vote; ties go to the lower class index.
type RandomForest struct {
	NumTrees int
	MinLeaf  int
	Seed     int64

	trees       []*decisionTree
	numClasses  int
	importances []float64
}

func NewRandomForest(seed int64) *RandomForest {
	return &RandomForest{
		NumTrees: 100,
		MinLeaf:  1,
		Seed:     seed,
	}
}

func (f *RandomForest) Name() string { return "random_forest" }

func (f *RandomForest) Fit(x *mat.Dense, y []int, numClasses int) error {
	rows, cols := x.Dims()
	if rows != len(y) {
		return fmt.Errorf("forest: %d rows but %d labels", rows, len(y))
	}
	if rows == 0 || numClasses < 2 {
		return fmt.Errorf("forest: need rows and at least two classes")
	}

	f.numClasses = numClasses
	f.trees = make([]*decisionTree, f.NumTrees)
	f.importances = make([]float64, cols)

	rng := rand.New(rand.NewSource(f.Seed))
	for i := 0; i < f.NumTrees; i++ {
		sample := make([]int, rows)
		for j := range sample {
			sample[j] = rng.Intn(rows)
		}

		tree := &decisionTree{
			maxFeatures: sqrtFeatures(cols),
			minLeaf:     f.MinLeaf,
			rng:         rand.New(rand.NewSource(rng.Int63())),
		}
		tree.fit(x, y, sample, numClasses, cols)
		f.trees[i] = tree

		for j, imp := range tree.importances {
			f.importances[j] += imp
		}
	}

	normalize(f.importances)

	slog.Info("[RandomForest] Fit complete",
		slog.Int("rows", rows),
		slog.Int("features", cols),
		slog.Int("trees", f.NumTrees))

	return nil
}

func (f *RandomForest) Predict(x *mat.Dense) []int {
	rows, _ := x.Dims()
	preds := make([]int, rows)

	for i := 0; i < rows; i++ {
		votes := make([]int, f.numClasses)
		row := x.RawRowView(i)
		for _, tree := range f.trees {
			votes[tree.predictRow(row)]++
		}
		preds[i] = majority(votes)
	}
	return preds
}

// FeatureImportances returns the normalized mean impurity-decrease
// importance of every feature column.
func (f *RandomForest) FeatureImportances() []float64 {
	return append([]float64(nil), f.importances...)
}
