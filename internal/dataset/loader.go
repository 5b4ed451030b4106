package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/emoscope/emoscope/internal/models"
)

// Load reads the dataset CSV at path into memory. The header must contain
// `text` and `emotion` columns (case-insensitive); rows too short to cover
// both columns are skipped.
func Load(path string) ([]models.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	csvReader := csv.NewReader(f)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	textIdx, emotionIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "text":
			textIdx = i
		case "emotion":
			emotionIdx = i
		}
	}
	if textIdx == -1 {
		return nil, fmt.Errorf("dataset %s: missing required column %q", path, "text")
	}
	if emotionIdx == -1 {
		return nil, fmt.Errorf("dataset %s: missing required column %q", path, "emotion")
	}

	var posts []models.Post
	skipped := 0
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row of %s: %w", path, err)
		}
		if len(record) <= textIdx || len(record) <= emotionIdx {
			skipped++
			continue
		}

		posts = append(posts, models.Post{
			Text:    record[textIdx],
			Emotion: strings.TrimSpace(record[emotionIdx]),
		})
	}

	if skipped > 0 {
		slog.Warn("[Loader] Skipped malformed rows",
			slog.String("path", path),
			slog.Int("skipped", skipped))
	}
	slog.Info("[Loader] Dataset loaded",
		slog.String("path", path),
		slog.Int("rows", len(posts)))

	return posts, nil
}
