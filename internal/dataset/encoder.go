package dataset

import "sort"

// LabelEncoder maps emotion strings to dense integer indices and back.
// Indices are assigned over the sorted distinct label set, so the mapping
// is stable across runs of the same dataset.
type LabelEncoder struct {
	toIndex map[string]int
	toLabel []string
}

func NewLabelEncoder(labels []string) *LabelEncoder {
	seen := make(map[string]bool, len(labels))
	var distinct []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			distinct = append(distinct, l)
		}
	}
	sort.Strings(distinct)

	enc := &LabelEncoder{
		toIndex: make(map[string]int, len(distinct)),
		toLabel: distinct,
	}
	for i, l := range distinct {
		enc.toIndex[l] = i
	}
	return enc
}

// Encode returns the dense index for label, or -1 for an unseen label.
func (e *LabelEncoder) Encode(label string) int {
	idx, ok := e.toIndex[label]
	if !ok {
		return -1
	}
	return idx
}

// Decode returns the label for index, or "" when out of range.
func (e *LabelEncoder) Decode(index int) string {
	if index < 0 || index >= len(e.toLabel) {
		return ""
	}
	return e.toLabel[index]
}

// Labels returns the distinct labels in index order.
func (e *LabelEncoder) Labels() []string {
	return append([]string(nil), e.toLabel...)
}

func (e *LabelEncoder) NumClasses() int {
	return len(e.toLabel)
}
