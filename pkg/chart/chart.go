// Package chart renders severity-count bar charts as PNG images for
// embedding into report documents.
//
// Charts always cover the fixed category set CRITICAL/MEDIUM/LOW in
// that order; categories absent from the counts render as zero-height
// bars so every chart in a report has the same x axis.
package chart

import (
	"fmt"
	"io"
	"os"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nessdoc/nessdoc/pkg/finding"
)

// Default raster size. Word embeds at 96 DPI, so this lands close to
// the 5x3 inch figure the report layout expects.
const (
	defaultWidth  = 512
	defaultHeight = 320
)

// SeverityChart is a bar chart of finding counts per severity.
type SeverityChart struct {
	// Title renders above the bars.
	Title string

	// Counts holds finding counts per severity. Only the fixed
	// category set is charted; other keys are ignored.
	Counts map[finding.Severity]int

	// Width and Height are raster dimensions in pixels.
	// Zero values take the package defaults.
	Width  int
	Height int
}

// New returns a chart over counts with the default dimensions.
func New(title string, counts map[finding.Severity]int) *SeverityChart {
	return &SeverityChart{Title: title, Counts: counts}
}

// Render writes the chart as PNG to w.
func (c *SeverityChart) Render(w io.Writer) error {
	width, height := c.Width, c.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	max := 0
	bars := make([]gochart.Value, 0, 3)
	for _, sev := range finding.Ordered() {
		n := c.Counts[sev]
		if n > max {
			max = n
		}
		r, g, b := sev.RGB()
		fill := drawing.Color{R: r, G: g, B: b, A: 255}
		bars = append(bars, gochart.Value{
			Label: sev.String(),
			Value: float64(n),
			Style: gochart.Style{FillColor: fill, StrokeColor: fill},
		})
	}
	if max == 0 {
		// Keep the y range non-degenerate when every count is zero.
		max = 1
	}

	bc := gochart.BarChart{
		Title:    c.Title,
		Width:    width,
		Height:   height,
		BarWidth: 80,
		Bars:     bars,
		YAxis: gochart.YAxis{
			ValueFormatter: gochart.IntValueFormatter,
			Range:          &gochart.ContinuousRange{Min: 0, Max: float64(max)},
		},
	}
	if err := bc.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("chart: render %q: %w", c.Title, err)
	}
	return nil
}

// WriteTemp renders the chart to a transient PNG file and returns its
// path. The caller owns the file and must remove it once the image is
// embedded; the usual shape is an immediate deferred os.Remove.
func (c *SeverityChart) WriteTemp() (string, error) {
	f, err := os.CreateTemp("", "severity_chart_*.png")
	if err != nil {
		return "", fmt.Errorf("chart: create temp file: %w", err)
	}
	if err := c.Render(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("chart: close %s: %w", f.Name(), err)
	}
	return f.Name(), nil
}
