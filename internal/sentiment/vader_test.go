package sentiment

import "testing"

func TestAnalyzeWithVADER(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLabel string
	}{
		{name: "clearly positive", input: "i love this it is wonderful and amazing", wantLabel: "positive"},
		{name: "clearly negative", input: "i hate this it is terrible and awful", wantLabel: "negative"},
		{name: "empty text", input: "", wantLabel: "neutral"},
		{name: "neutral statement", input: "the train leaves at noon", wantLabel: "neutral"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := AnalyzeWithVADER(tt.input)

			if s.Label != tt.wantLabel {
				t.Errorf("label = %q (polarity %v), want %q", s.Label, s.Polarity, tt.wantLabel)
			}
			if s.Polarity < -1 || s.Polarity > 1 {
				t.Errorf("polarity %v outside [-1,1]", s.Polarity)
			}
			if s.Subjectivity < 0 || s.Subjectivity > 1 {
				t.Errorf("subjectivity %v outside [0,1]", s.Subjectivity)
			}
		})
	}
}

func TestLabelThresholds(t *testing.T) {
	t.Parallel()

	cases := map[float64]string{
		0.5:   "positive",
		0.20:  "positive",
		0.19:  "neutral",
		0.0:   "neutral",
		-0.19: "neutral",
		-0.20: "negative",
		-0.9:  "negative",
	}
	for compound, want := range cases {
		if got := labelFor(compound); got != want {
			t.Errorf("labelFor(%v) = %q, want %q", compound, got, want)
		}
	}
}
