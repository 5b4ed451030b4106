package models

// Post is one social-media post as loaded from the dataset. Text and
// Emotion never change after loading; every later stage writes to the
// derived fields only.
type Post struct {
	Text    string `json:"text"`
	Emotion string `json:"emotion"`

	Cleaned       string  `json:"cleaned"`
	Polarity      float64 `json:"polarity"`
	Subjectivity  float64 `json:"subjectivity"`
	TokenCount    int     `json:"token_count"`
	AvgTokenLen   float64 `json:"avg_token_len"`
	VADERLabel    string  `json:"vader_label"`
	VADERCompound float64 `json:"vader_compound"`
}
