// Package chart draws grouped bar charts with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrUnsupportedFormat is returned for output files whose extension has no
// canvas backend.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Series is one bar series, one value per category.
type Series struct {
	Label  string
	Values []float64
}

// Panel is a single set of axes holding grouped bar series.
type Panel struct {
	Title  string
	YLabel string
	Labels []string
	Series []Series
}

// Figure is a rectangular grid of panels, indexed [row][col].
type Figure struct {
	Panels [][]Panel
}

type Style struct {
	BarWidth  vg.Length
	TitleSize vg.Length
	Padding   vg.Length
	// Headroom scales the Y range above the tallest bar to leave space for
	// the legend.
	Headroom float64
}

func DefaultStyle() Style {
	return Style{
		BarWidth:  vg.Points(20),
		TitleSize: vg.Points(14),
		Padding:   5 * vg.Millimeter,
		Headroom:  1.25,
	}
}

// Size is the output canvas size. DPI only applies to raster formats.
type Size struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

// NewPanelPlot builds the plot for p. Series are drawn side by side around
// each category tick, series i shifted by (i - (n-1)/2) bar widths. A panel
// without categories is drawn with its title and axes only.
func NewPanelPlot(p Panel, style Style) (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = p.Title
	plt.Title.TextStyle.Font.Size = style.TitleSize
	plt.Title.TextStyle.Font.Weight = xfont.WeightBold
	plt.Y.Label.Text = p.YLabel
	plt.Y.Min = 0
	plt.Legend.Top = true

	if len(p.Labels) == 0 {
		plt.X.Min, plt.X.Max = 0, 1
		plt.Y.Max = 1
		return plt, nil
	}
	plt.NominalX(p.Labels...)

	bars, err := newBars(p, style)
	if err != nil {
		return nil, err
	}
	for i, b := range bars {
		plt.Add(b)
		plt.Legend.Add(p.Series[i].Label, b)
	}
	if top := maxValue(p.Series); top > 0 && style.Headroom > 1 {
		plt.Y.Max = top * style.Headroom
	}
	return plt, nil
}

func maxValue(series []Series) float64 {
	var top float64
	for _, s := range series {
		for _, v := range s.Values {
			top = max(top, v)
		}
	}
	return top
}

// newBars returns one bar chart per series of p, in series order.
func newBars(p Panel, style Style) ([]*plotter.BarChart, error) {
	if len(p.Labels) == 0 {
		return nil, nil
	}
	out := make([]*plotter.BarChart, 0, len(p.Series))
	for i, s := range p.Series {
		if len(s.Values) != len(p.Labels) {
			return nil, fmt.Errorf("series %q has %d values for %d labels", s.Label, len(s.Values), len(p.Labels))
		}
		bars, err := plotter.NewBarChart(plotter.Values(s.Values), style.BarWidth)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i)
		bars.Offset = barOffset(i, len(p.Series), style.BarWidth)
		out = append(out, bars)
	}
	return out, nil
}

func barOffset(i, n int, width vg.Length) vg.Length {
	return vg.Length(float64(i)-float64(n-1)/2) * width
}

// SavePanel writes a figure holding only p.
func SavePanel(p Panel, style Style, size Size, path string) error {
	return SaveFigure(Figure{Panels: [][]Panel{{p}}}, style, size, path)
}

// SaveFigure renders f and writes it to path, replacing any existing file.
// The format is taken from the file extension.
func SaveFigure(f Figure, style Style, size Size, path string) error {
	rows := len(f.Panels)
	if rows == 0 || len(f.Panels[0]) == 0 {
		return errors.New("figure has no panels")
	}
	cols := len(f.Panels[0])

	plots := make([][]*plot.Plot, rows)
	for r, row := range f.Panels {
		if len(row) != cols {
			return fmt.Errorf("figure row %d has %d panels, want %d", r, len(row), cols)
		}
		plots[r] = make([]*plot.Plot, cols)
		for c, p := range row {
			plt, err := NewPanelPlot(p, style)
			if err != nil {
				return fmt.Errorf("panel %q: %w", p.Title, err)
			}
			plots[r][c] = plt
		}
	}

	canvas, err := newCanvas(size, formatOf(path))
	if err != nil {
		return err
	}
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      style.Padding,
		PadY:      style.Padding,
		PadTop:    style.Padding,
		PadBottom: style.Padding,
		PadLeft:   style.Padding,
		PadRight:  style.Padding,
	}
	canvases := plot.Align(plots, tiles, draw.New(canvas))
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	return writeCanvas(canvas, path)
}

func formatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func newCanvas(size Size, format string) (vg.CanvasWriterTo, error) {
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		img := vgimg.NewWith(vgimg.UseWH(size.Width, size.Height), vgimg.UseDPI(size.DPI))
		switch format {
		case "png":
			return vgimg.PngCanvas{Canvas: img}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: img}, nil
		default:
			return vgimg.TiffCanvas{Canvas: img}, nil
		}
	case "svg", "pdf", "eps":
		return draw.NewFormattedCanvas(size.Width, size.Height, format)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func writeCanvas(c vg.CanvasWriterTo, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
