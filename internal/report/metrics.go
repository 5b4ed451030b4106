package report

import (
	"fmt"
	"strings"
)

// ClassMetrics is one row of a classification report.
type ClassMetrics struct {
	Label     string
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Evaluation summarizes held-out performance of one classifier.
type Evaluation struct {
	Accuracy float64
	MacroF1  float64
	PerClass []ClassMetrics
}

// ConfusionMatrix counts [trueClass][predictedClass] over the held-out
// partition.
func ConfusionMatrix(yTrue, yPred []int, numClasses int) [][]int {
	cm := make([][]int, numClasses)
	for i := range cm {
		cm[i] = make([]int, numClasses)
	}
	for i, t := range yTrue {
		cm[t][yPred[i]]++
	}
	return cm
}

// Evaluate computes accuracy, per-class precision/recall/F1 and macro-F1.
// Classes absent from both truth and prediction score zero.
func Evaluate(yTrue, yPred []int, labels []string) Evaluation {
	cm := ConfusionMatrix(yTrue, yPred, len(labels))

	var correct int
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}

	ev := Evaluation{PerClass: make([]ClassMetrics, len(labels))}
	if len(yTrue) > 0 {
		ev.Accuracy = float64(correct) / float64(len(yTrue))
	}

	var f1Sum float64
	for c, label := range labels {
		tp := cm[c][c]
		var predicted, actual int
		for j := 0; j < len(labels); j++ {
			predicted += cm[j][c]
			actual += cm[c][j]
		}

		m := ClassMetrics{Label: label, Support: actual}
		if predicted > 0 {
			m.Precision = float64(tp) / float64(predicted)
		}
		if actual > 0 {
			m.Recall = float64(tp) / float64(actual)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		f1Sum += m.F1
		ev.PerClass[c] = m
	}
	if len(labels) > 0 {
		ev.MacroF1 = f1Sum / float64(len(labels))
	}

	return ev
}

// Format renders an evaluation as a classification-report table.
func Format(name string, ev Evaluation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s ===\n", name)
	fmt.Fprintf(&b, "%-14s %9s %9s %9s %9s\n", "", "precision", "recall", "f1-score", "support")
	for _, m := range ev.PerClass {
		fmt.Fprintf(&b, "%-14s %9.3f %9.3f %9.3f %9d\n",
			m.Label, m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\n%-14s %9.3f\n", "accuracy", ev.Accuracy)
	fmt.Fprintf(&b, "%-14s %9.3f\n", "macro f1", ev.MacroF1)

	return b.String()
}
