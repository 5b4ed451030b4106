package sentiment

import (
	"github.com/jonreiter/govader"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// Scores holds the lexicon-based sentiment of a single cleaned post.
// Polarity is VADER's compound score in [-1,1]. Subjectivity is the share
// of the text VADER scored as non-neutral, which lands in [0,1].
type Scores struct {
	Polarity     float64
	Subjectivity float64
	Label        string
}

func AnalyzeWithVADER(text string) Scores {
	s := analyzer.PolarityScores(text)

	return Scores{
		Polarity:     s.Compound,
		Subjectivity: clamp01(s.Positive + s.Negative),
		Label:        labelFor(s.Compound),
	}
}

func labelFor(compound float64) string {
	switch {
	case compound >= 0.20:
		return "positive"
	case compound <= -0.20:
		return "negative"
	default:
		return "neutral"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
