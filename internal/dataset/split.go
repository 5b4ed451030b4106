package dataset

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"
)

// Split partitions row indices into train and test sets, stratified by
// label: each label's rows are shuffled and carved up independently, so the
// label mix of the full dataset carries over to both partitions. The same
// labels and seed always produce the same partition. Labels with too few
// rows to fill a test slot stay entirely in train; if that leaves the test
// partition empty the dataset is too small to evaluate and Split errors.
func Split(labels []string, testSize float64, seed int64) (train, test []int, err error) {
	if len(labels) == 0 {
		return nil, nil, fmt.Errorf("split: empty dataset")
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, fmt.Errorf("split: test size %v outside (0,1)", testSize)
	}

	byLabel := make(map[string][]int)
	for i, l := range labels {
		byLabel[l] = append(byLabel[l], i)
	}

	distinct := make([]string, 0, len(byLabel))
	for l := range byLabel {
		distinct = append(distinct, l)
	}
	sort.Strings(distinct)

	rng := rand.New(rand.NewSource(seed))
	for _, l := range distinct {
		group := append([]int(nil), byLabel[l]...)
		rng.Shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})

		nTest := int(math.Round(testSize * float64(len(group))))
		if nTest >= len(group) {
			nTest = len(group) - 1
		}

		test = append(test, group[:nTest]...)
		train = append(train, group[nTest:]...)
	}

	if len(test) == 0 {
		return nil, nil, fmt.Errorf("split: test partition is empty, every label has too few rows for test size %v", testSize)
	}

	sort.Ints(train)
	sort.Ints(test)

	slog.Info("[Split] Stratified partition built",
		slog.Int("train", len(train)),
		slog.Int("test", len(test)),
		slog.Int("labels", len(distinct)),
		slog.Int64("seed", seed))

	return train, test, nil
}
