package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/emoscope/emoscope/config"
	"github.com/emoscope/emoscope/internal/classifier"
	"github.com/emoscope/emoscope/internal/dataset"
	"github.com/emoscope/emoscope/internal/features"
	"github.com/emoscope/emoscope/internal/logging"
	"github.com/emoscope/emoscope/internal/models"
	"github.com/emoscope/emoscope/internal/report"
	"github.com/emoscope/emoscope/internal/sentiment"
	"github.com/emoscope/emoscope/internal/textclean"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	cfg := config.FromEnv()
	runID := uuid.NewString()

	slog.Info("[Pipeline] Starting run",
		slog.String("run_id", runID),
		slog.String("dataset", cfg.DatasetPath),
		slog.Int64("seed", cfg.RandomSeed))

	if err := run(cfg, runID); err != nil {
		slog.Error("[Pipeline] Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("[Pipeline] Run complete", slog.String("run_id", runID))
}

func run(cfg config.Config, runID string) error {
	posts, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return err
	}

	// Clean and featurize every post in place. Raw text stays untouched.
	vaderDist := make(map[string]int)
	for i := range posts {
		posts[i].Cleaned = textclean.Clean(posts[i].Text)
		posts[i].TokenCount, posts[i].AvgTokenLen = features.LexicalStats(posts[i].Cleaned)

		s := sentiment.AnalyzeWithVADER(posts[i].Cleaned)
		posts[i].Polarity = s.Polarity
		posts[i].Subjectivity = s.Subjectivity
		posts[i].VADERCompound = s.Polarity
		posts[i].VADERLabel = s.Label
		vaderDist[s.Label]++
	}

	labels := make([]string, len(posts))
	cleaned := make([]string, len(posts))
	for i, p := range posts {
		labels[i] = p.Emotion
		cleaned[i] = p.Cleaned
	}
	enc := dataset.NewLabelEncoder(labels)
	if enc.NumClasses() < 2 {
		return fmt.Errorf("dataset has %d emotion labels, need at least 2", enc.NumClasses())
	}

	y := make([]int, len(posts))
	for i, l := range labels {
		y[i] = enc.Encode(l)
	}

	// Vocabulary is fit over the full corpus before splitting, matching
	// the source pipeline's order.
	vec := features.NewVectorizer(cfg.VocabSize)
	if err := vec.Fit(cleaned); err != nil {
		return err
	}

	x, err := features.Assemble(posts, vec)
	if err != nil {
		return err
	}

	trainIdx, testIdx, err := dataset.Split(labels, cfg.TestSize, cfg.RandomSeed)
	if err != nil {
		return err
	}

	xTrain := features.SelectRows(x, trainIdx)
	xTest := features.SelectRows(x, testIdx)
	yTrain := selectLabels(y, trainIdx)
	yTest := selectLabels(y, testIdx)

	logreg := classifier.NewLogisticRegression()
	if err := logreg.Fit(xTrain, yTrain, enc.NumClasses()); err != nil {
		return err
	}
	forest := classifier.NewRandomForest(cfg.RandomSeed)
	if err := forest.Fit(xTrain, yTrain, enc.NumClasses()); err != nil {
		return err
	}

	evLogreg := report.Evaluate(yTest, logreg.Predict(xTest), enc.Labels())
	forestPreds := forest.Predict(xTest)
	evForest := report.Evaluate(yTest, forestPreds, enc.Labels())

	fmt.Printf("run %s — %d posts, %d labels, %d train / %d test\n\n",
		runID, len(posts), enc.NumClasses(), len(trainIdx), len(testIdx))
	fmt.Println(report.Format("Logistic Regression", evLogreg))
	fmt.Println(report.Format("Random Forest", evForest))
	fmt.Printf("VADER label distribution: positive=%d neutral=%d negative=%d\n\n",
		vaderDist["positive"], vaderDist["neutral"], vaderDist["negative"])

	return renderPlots(cfg, posts, enc, forest, yTest, forestPreds, evLogreg, evForest)
}

func renderPlots(cfg config.Config, posts []models.Post, enc *dataset.LabelEncoder,
	forest *classifier.RandomForest, yTest, forestPreds []int, evLogreg, evForest report.Evaluation) error {

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	fontPath, err := report.EnsureFont(cfg.OutputDir)
	if err != nil {
		return err
	}

	cm := report.ConfusionMatrix(yTest, forestPreds, enc.NumClasses())
	if err := report.SaveConfusionHeatmap(cm, enc.Labels(),
		filepath.Join(cfg.OutputDir, "confusion_matrix.png")); err != nil {
		return err
	}

	// The forest ranks every column; only the trailing engineered columns
	// make the chart, lexical importances are discarded.
	importances := forest.FeatureImportances()
	engineered := importances[len(importances)-features.NumEngineered:]
	if err := report.SaveImportanceBars(features.EngineeredNames, engineered,
		filepath.Join(cfg.OutputDir, "feature_importance.png")); err != nil {
		return err
	}

	for _, label := range enc.Labels() {
		var texts []string
		for _, p := range posts {
			if p.Emotion == label {
				texts = append(texts, p.Cleaned)
			}
		}
		counts := report.WordFrequencies(texts, 120)
		slog.Debug("[Pipeline] Word cloud terms",
			slog.String("label", label),
			slog.Int("terms", len(counts)))
		if err := report.SaveWordCloud(counts, fontPath,
			filepath.Join(cfg.OutputDir, "wordcloud_"+label+".png")); err != nil {
			return err
		}
	}

	if err := report.SaveModelComparison(
		"logistic regression", evLogreg,
		"random forest", evForest,
		filepath.Join(cfg.OutputDir, "model_comparison.png")); err != nil {
		return err
	}

	slog.Info("[Pipeline] Plots written", slog.String("dir", cfg.OutputDir))
	return nil
}

func selectLabels(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, r := range idx {
		out[i] = y[r]
	}
	return out
}
