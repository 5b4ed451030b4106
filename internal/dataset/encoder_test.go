package dataset

import "testing"

func TestLabelEncoderBijection(t *testing.T) {
	t.Parallel()

	labels := []string{"joy", "anger", "joy", "sadness", "fear", "anger"}
	enc := NewLabelEncoder(labels)

	if enc.NumClasses() != 4 {
		t.Fatalf("NumClasses = %d, want 4", enc.NumClasses())
	}

	seen := make(map[int]bool)
	for _, l := range labels {
		idx := enc.Encode(l)
		if idx < 0 || idx >= enc.NumClasses() {
			t.Fatalf("Encode(%q) = %d out of range", l, idx)
		}
		if got := enc.Decode(idx); got != l {
			t.Errorf("Decode(Encode(%q)) = %q", l, got)
		}
		seen[idx] = true
	}
	if len(seen) != 4 {
		t.Errorf("encoding collided: %d distinct indices for 4 labels", len(seen))
	}
}

func TestLabelEncoderStableOrder(t *testing.T) {
	t.Parallel()

	a := NewLabelEncoder([]string{"joy", "anger", "fear"})
	b := NewLabelEncoder([]string{"fear", "joy", "anger", "joy"})

	for i := 0; i < a.NumClasses(); i++ {
		if a.Decode(i) != b.Decode(i) {
			t.Errorf("index %d: %q vs %q — ordering depends on input order", i, a.Decode(i), b.Decode(i))
		}
	}
}

func TestLabelEncoderUnknown(t *testing.T) {
	t.Parallel()

	enc := NewLabelEncoder([]string{"joy"})
	if got := enc.Encode("surprise"); got != -1 {
		t.Errorf("Encode(unseen) = %d, want -1", got)
	}
	if got := enc.Decode(99); got != "" {
		t.Errorf("Decode(out of range) = %q, want empty", got)
	}
}
