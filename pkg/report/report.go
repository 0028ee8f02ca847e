package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/subra9minion/Shopping/pkg/model"
)

var barColor = color.RGBA{R: 50, G: 50, B: 255, A: 255}

// Summary is what a run reports.
type Summary struct {
	Confusion   model.Confusion
	Sensitivity float64
	Specificity float64
}

// Write prints the four result lines.
func Write(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w, "Correct: %d\nIncorrect: %d\nTrue Positive Rate: %.2f%%\nTrue Negative Rate: %.2f%%\n",
		s.Confusion.Correct(),
		s.Confusion.Incorrect(),
		100*s.Sensitivity,
		100*s.Specificity,
	)
	return err
}

// SavePlot saves a bar chart of the confusion counts to filename. The image
// format follows the file extension (png, svg, pdf, ...).
func SavePlot(s Summary, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("TPR %.2f%%  TNR %.2f%%", 100*s.Sensitivity, 100*s.Specificity)
	p.Y.Label.Text = "Test sessions"

	c := s.Confusion
	values := plotter.Values{float64(c.TP), float64(c.FN), float64(c.TN), float64(c.FP)}
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX("True Pos", "False Neg", "True Neg", "False Pos")

	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
