package report

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subra9minion/Shopping/pkg/model"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	s := Summary{
		Confusion:   model.Confusion{TP: 300, FN: 400, TN: 3900, FP: 332},
		Sensitivity: 300.0 / 700.0,
		Specificity: 3900.0 / 4232.0,
	}
	require.NoError(t, Write(&buf, s))
	assert.Equal(t, "Correct: 4200\nIncorrect: 732\nTrue Positive Rate: 42.86%\nTrue Negative Rate: 92.16%\n", buf.String())
}

func TestSavePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "confusion.png")
	s := Summary{Confusion: model.Confusion{TP: 3, FN: 1, TN: 5, FP: 2}, Sensitivity: 0.75, Specificity: 5.0 / 7.0}
	require.NoError(t, SavePlot(s, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSavePlotBarColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "confusion.png")
	s := Summary{Confusion: model.Confusion{TP: 30, FN: 10, TN: 50, FP: 20}}
	require.NoError(t, SavePlot(s, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) == barColor {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "no pixel drawn in the bar color")
}

func TestSavePlotUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "confusion.unknown")
	assert.Error(t, SavePlot(Summary{}, path))
}
