package features

import (
	"math"
	"testing"
)

func TestLexicalStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantCount int
		wantAvg   float64
	}{
		{name: "empty text", input: "", wantCount: 0, wantAvg: 0},
		{name: "single token", input: "hello", wantCount: 1, wantAvg: 5},
		{name: "two tokens", input: "ab cde", wantCount: 2, wantAvg: 2.5},
		{name: "cleaned sentence", input: "check this out wow", wantCount: 4, wantAvg: 3.75},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			count, avg := LexicalStats(tt.input)
			if count != tt.wantCount {
				t.Errorf("token count = %d, want %d", count, tt.wantCount)
			}
			if math.Abs(avg-tt.wantAvg) > 1e-12 {
				t.Errorf("avg token len = %v, want %v", avg, tt.wantAvg)
			}
		})
	}
}
