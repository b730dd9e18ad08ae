package visualize

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/linreg/linear"
	"github.com/YuminosukeSato/linreg/pkg/errors"
)

var (
	sampleX = []float64{1, 2, 3, 4, 5}
	sampleY = []float64{1, 3, 2, 3, 5}
	fitted  = linear.Params{Intercept: 0.4, Coefficient: 0.8}
)

func TestNewChart(t *testing.T) {
	c, err := NewChart(sampleX, sampleY, fitted, WithTitle("reference"), WithSize(4*vg.Inch, 3*vg.Inch))
	require.NoError(t, err)

	assert.Equal(t, "reference", c.Plot().Title.Text)
	assert.Equal(t, "x", c.Plot().X.Label.Text)
	assert.InDelta(t, 1.0, c.Plot().X.Min, 1e-9)
	assert.InDelta(t, 5.0, c.Plot().X.Max, 1e-9)
}

func TestNewChartErrors(t *testing.T) {
	_, err := NewChart([]float64{1, 2}, []float64{1}, fitted)
	var lenErr *errors.LengthMismatchError
	assert.True(t, errors.As(err, &lenErr))

	_, err = NewChart(nil, nil, fitted)
	var valErr *errors.ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestChartRender(t *testing.T) {
	c, err := NewChart(sampleX, sampleY, fitted)
	require.NoError(t, err)

	var png bytes.Buffer
	n, err := c.Render(&png, "png")
	require.NoError(t, err)
	assert.Equal(t, int64(png.Len()), n)
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	_, err = c.Render(&svg, "SVG")
	require.NoError(t, err)
	assert.Contains(t, svg.String(), "<svg")

	_, err = c.Render(&bytes.Buffer{}, "bmp")
	assert.Error(t, err)
}

func TestChartSave(t *testing.T) {
	c, err := NewChart(sampleX, sampleY, fitted)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fit.png")
	require.NoError(t, c.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	err = c.Save(filepath.Join(t.TempDir(), "fit"))
	var valErr *errors.ValidationError
	assert.True(t, errors.As(err, &valErr))
}
