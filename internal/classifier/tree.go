package classifier

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// treeNode is one node of a CART tree. Leaves carry a predicted class;
// internal nodes route on feature <= threshold.
type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	leaf      bool
	class     int
}

// decisionTree is a CART classifier with Gini impurity splitting and
// per-node random feature subsampling, as used inside the forest.
type decisionTree struct {
	root        *treeNode
	maxFeatures int
	minLeaf     int
	numClasses  int
	importances []float64
	rng         *rand.Rand
}

func (t *decisionTree) fit(x *mat.Dense, y []int, rows []int, numClasses, numFeatures int) {
	t.numClasses = numClasses
	t.importances = make([]float64, numFeatures)
	t.root = t.build(x, y, rows, len(rows))
	normalize(t.importances)
}

func (t *decisionTree) build(x *mat.Dense, y []int, rows []int, rootSize int) *treeNode {
	counts := classCounts(y, rows, t.numClasses)
	impurity := gini(counts, len(rows))

	if len(rows) <= t.minLeaf || impurity == 0 {
		return &treeNode{leaf: true, class: majority(counts)}
	}

	feature, threshold, gain, ok := t.bestSplit(x, y, rows, impurity)
	if !ok {
		return &treeNode{leaf: true, class: majority(counts)}
	}

	var left, right []int
	for _, r := range rows {
		if x.At(r, feature) <= threshold {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{leaf: true, class: majority(counts)}
	}

	// Importance is the split's impurity decrease weighted by node size.
	t.importances[feature] += float64(len(rows)) / float64(rootSize) * gain

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      t.build(x, y, left, rootSize),
		right:     t.build(x, y, right, rootSize),
	}
}

// bestSplit scans a random subset of features and returns the split with
// the largest impurity decrease.
func (t *decisionTree) bestSplit(x *mat.Dense, y []int, rows []int, parentImpurity float64) (feature int, threshold, gain float64, ok bool) {
	_, numFeatures := x.Dims()
	candidates := t.rng.Perm(numFeatures)[:t.maxFeatures]
	n := float64(len(rows))

	bestGain := 0.0
	type pair struct {
		value float64
		class int
	}
	pairs := make([]pair, len(rows))

	for _, f := range candidates {
		for i, r := range rows {
			pairs[i] = pair{value: x.At(r, f), class: y[r]}
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].value < pairs[j].value })

		leftCounts := make([]int, t.numClasses)
		rightCounts := classCounts(y, rows, t.numClasses)

		for i := 0; i < len(pairs)-1; i++ {
			leftCounts[pairs[i].class]++
			rightCounts[pairs[i].class]--
			if pairs[i].value == pairs[i+1].value {
				continue
			}

			nl, nr := i+1, len(pairs)-i-1
			split := (float64(nl)*gini(leftCounts, nl) + float64(nr)*gini(rightCounts, nr)) / n
			if g := parentImpurity - split; g > bestGain {
				bestGain = g
				feature = f
				threshold = (pairs[i].value + pairs[i+1].value) / 2
			}
		}
	}

	if bestGain <= 0 {
		return 0, 0, 0, false
	}
	return feature, threshold, bestGain, true
}

func (t *decisionTree) predictRow(row []float64) int {
	node := t.root
	for !node.leaf {
		if row[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.class
}

func classCounts(y []int, rows []int, numClasses int) []int {
	counts := make([]int, numClasses)
	for _, r := range rows {
		counts[y[r]]++
	}
	return counts
}

func gini(counts []int, total int) float64 {
	if total == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		impurity -= p * p
	}
	return impurity
}

// majority returns the most frequent class, lowest index on ties.
func majority(counts []int) int {
	best, bestCount := 0, -1
	for c, n := range counts {
		if n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

func normalize(vals []float64) {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	if sum == 0 {
		return
	}
	for i := range vals {
		vals[i] /= sum
	}
}

func sqrtFeatures(numFeatures int) int {
	m := int(math.Sqrt(float64(numFeatures)))
	if m < 1 {
		m = 1
	}
	return m
}
