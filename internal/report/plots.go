package report

import (
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/psykhi/wordclouds"
	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	steelBlue = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	darkCoral = color.RGBA{R: 205, G: 92, B: 92, A: 255}

	cloudColors = []color.Color{
		color.RGBA{R: 30, G: 60, B: 120, A: 255},
		color.RGBA{R: 70, G: 130, B: 180, A: 255},
		color.RGBA{R: 205, G: 92, B: 92, A: 255},
		color.RGBA{R: 46, G: 139, B: 87, A: 255},
	}
)

// EnsureFont writes the bundled Go Regular TTF under dir and returns its
// path; the word-cloud renderer needs a font file on disk.
func EnsureFont(dir string) (string, error) {
	path := filepath.Join(dir, "goregular.ttf")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		return "", fmt.Errorf("writing font file: %w", err)
	}
	return path, nil
}

// confusionGrid adapts a confusion matrix to the heat-map grid interface.
// Rows are flipped so the first class reads top-down, matching the usual
// confusion-matrix orientation.
type confusionGrid struct {
	cm [][]int
}

func (g confusionGrid) Dims() (c, r int)   { return len(g.cm), len(g.cm) }
func (g confusionGrid) X(c int) float64    { return float64(c) }
func (g confusionGrid) Y(r int) float64    { return float64(r) }
func (g confusionGrid) Z(c, r int) float64 { return float64(g.cm[len(g.cm)-1-r][c]) }

// SaveConfusionHeatmap renders the confusion matrix as a heat map PNG.
func SaveConfusionHeatmap(cm [][]int, labels []string, path string) error {
	p := plot.New()
	p.Title.Text = "Confusion matrix (random forest)"
	p.X.Label.Text = "predicted"
	p.Y.Label.Text = "actual"

	p.Add(plotter.NewHeatMap(confusionGrid{cm: cm}, palette.Heat(12, 1)))

	xTicks := make([]plot.Tick, len(labels))
	yTicks := make([]plot.Tick, len(labels))
	for i, l := range labels {
		xTicks[i] = plot.Tick{Value: float64(i), Label: l}
		yTicks[len(labels)-1-i] = plot.Tick{Value: float64(len(labels) - 1 - i), Label: labels[i]}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	return p.Save(6*vg.Inch, 5*vg.Inch, path)
}

// SaveImportanceBars renders a bar chart of the engineered features'
// forest importances.
func SaveImportanceBars(names []string, values []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Engineered feature importance"
	p.Y.Label.Text = "importance"

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(30))
	if err != nil {
		return fmt.Errorf("importance bars: %w", err)
	}
	bars.Color = steelBlue
	p.Add(bars)
	p.NominalX(names...)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// SaveModelComparison renders grouped accuracy / macro-F1 bars for the two
// classifiers.
func SaveModelComparison(nameA string, evA Evaluation, nameB string, evB Evaluation, path string) error {
	p := plot.New()
	p.Title.Text = "Model comparison"
	p.Y.Label.Text = "score"
	p.Y.Max = 1

	w := vg.Points(25)

	barsA, err := plotter.NewBarChart(plotter.Values{evA.Accuracy, evA.MacroF1}, w)
	if err != nil {
		return fmt.Errorf("comparison bars: %w", err)
	}
	barsA.Color = steelBlue
	barsA.Offset = -w / 2

	barsB, err := plotter.NewBarChart(plotter.Values{evB.Accuracy, evB.MacroF1}, w)
	if err != nil {
		return fmt.Errorf("comparison bars: %w", err)
	}
	barsB.Color = darkCoral
	barsB.Offset = w / 2

	p.Add(barsA, barsB)
	p.Legend.Add(nameA, barsA)
	p.Legend.Add(nameB, barsB)
	p.Legend.Top = true
	p.NominalX("accuracy", "macro f1")

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// SaveWordCloud renders a word-frequency cloud PNG for one label's corpus.
// A label whose posts all cleaned down to nothing has no words to draw;
// its cloud is skipped with a warning rather than failing the run.
func SaveWordCloud(counts map[string]int, fontPath, path string) error {
	if len(counts) == 0 {
		slog.Warn("[Report] No words to draw, skipping word cloud",
			slog.String("path", path))
		return nil
	}

	cloud := wordclouds.NewWordcloud(counts,
		wordclouds.FontFile(fontPath),
		wordclouds.FontMaxSize(90),
		wordclouds.FontMinSize(12),
		wordclouds.Width(800),
		wordclouds.Height(480),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Colors(cloudColors),
	)
	img := cloud.Draw()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("word cloud: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("word cloud: %w", err)
	}
	return nil
}
