// Package visualize renders regression results with gonum/plot: the sample
// points as a scatter and the fitted line across the sampled x range.
package visualize

import (
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/linreg/linear"
	"github.com/YuminosukeSato/linreg/pkg/errors"
	"github.com/YuminosukeSato/linreg/pkg/log"
)

var (
	sampleColor = color.RGBA{R: 255, A: 255}
	lineColor   = color.RGBA{B: 200, A: 255}
)

// Chart is a rendered-on-demand plot of samples and a fitted line.
type Chart struct {
	plot   *plot.Plot
	width  vg.Length
	height vg.Length
	logger log.Logger
}

// Option configures a Chart.
type Option func(*Chart)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(c *Chart) {
		c.plot.Title.Text = title
	}
}

// WithSize sets the output size.
func WithSize(width, height vg.Length) Option {
	return func(c *Chart) {
		c.width = width
		c.height = height
	}
}

// NewChart builds a chart of the (x, y) samples and the line described by p.
func NewChart(x, y []float64, p linear.Params, opts ...Option) (*Chart, error) {
	const op = "visualize.NewChart"

	if err := errors.CheckSameLength(op, len(x), len(y)); err != nil {
		return nil, err
	}
	if len(x) == 0 {
		return nil, errors.NewValidationError("x", errors.ErrEmptyData.Error(), 0)
	}

	pl := plot.New()
	pl.Title.Text = "Linear regression"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"

	samples := make(plotter.XYs, len(x))
	for i := range x {
		samples[i].X = x[i]
		samples[i].Y = y[i]
	}

	scatter, err := plotter.NewScatter(samples)
	if err != nil {
		return nil, errors.Wrap(err, "creating scatter")
	}
	scatter.GlyphStyle.Color = sampleColor
	scatter.GlyphStyle.Radius = vg.Points(3)

	lo, hi := floats.Min(x), floats.Max(x)
	fitted, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: p.Predict(lo)},
		{X: hi, Y: p.Predict(hi)},
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating fitted line")
	}
	fitted.LineStyle.Color = lineColor
	fitted.LineStyle.Width = vg.Points(1.5)

	pl.Add(plotter.NewGrid(), scatter, fitted)
	pl.Legend.Add("samples", scatter)
	pl.Legend.Add(p.String(), fitted)
	pl.Legend.Top = true
	pl.Legend.Left = true

	c := &Chart{
		plot:   pl,
		width:  6 * vg.Inch,
		height: 4 * vg.Inch,
		logger: log.GetLoggerWithName("visualize"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Plot exposes the underlying gonum plot for further customization.
func (c *Chart) Plot() *plot.Plot {
	return c.plot
}

// Render writes the chart in the given format ("png", "svg", "pdf", ...) to w.
func (c *Chart) Render(w io.Writer, format string) (int64, error) {
	wt, err := c.plot.WriterTo(c.width, c.height, strings.ToLower(format))
	if err != nil {
		return 0, errors.Wrapf(err, "rendering chart as %q", format)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return n, errors.Wrap(err, "writing chart")
	}
	return n, nil
}

// Save renders the chart to path; the format follows the file extension.
func (c *Chart) Save(path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return errors.NewValidationError("path", "missing file extension", path)
	}
	if err := c.plot.Save(c.width, c.height, path); err != nil {
		return errors.Wrapf(err, "saving chart to %s", path)
	}
	c.logger.Debug("chart saved", "path", path, "format", ext)
	return nil
}
