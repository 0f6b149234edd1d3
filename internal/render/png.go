// Package render draws radar charts to raster images with gg. All shape
// coordinates come from the geom package; this package only paints them.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"radarchart/internal/chart"
	"radarchart/internal/geom"
	"radarchart/internal/logging"
)

// RingStyle selects how grid rings are drawn.
type RingStyle int

const (
	RingCircles RingStyle = iota
	RingPolygons
)

// Options control the exported image. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	Size       int // side of the chart square in pixels
	Margin     int // padding around the chart for axis markers
	Rings      int
	RingStyle  RingStyle
	Closing    geom.Closing
	Palette    []gg.RGBA
	Background gg.RGBA
	Grid       gg.RGBA
	LineWidth  float64
	Opacity    float64
	Logger     *slog.Logger
}

// DefaultPalette colors successive series.
var DefaultPalette = []gg.RGBA{
	gg.Hex("#22C55E"),
	gg.Hex("#7C3AED"),
	gg.Hex("#F59E0B"),
	gg.Hex("#0EA5E9"),
	gg.Hex("#EF4444"),
}

// DefaultOptions is a 250px board with five circular rings and hairline grid.
func DefaultOptions() Options {
	return Options{
		Size:       250,
		Margin:     int(geom.DefaultInset) + 6,
		Rings:      5,
		RingStyle:  RingCircles,
		Closing:    geom.CloseAtRim,
		Palette:    DefaultPalette,
		Background: gg.White,
		Grid:       gg.Hex("#808080"),
		LineWidth:  0.3,
		Opacity:    0.75,
	}
}

// Bounds returns the full image width and height.
func (o Options) Bounds() (int, int) {
	side := o.Size + 2*o.Margin
	return side, side
}

// Draw paints c onto dc.
func Draw(dc *gg.Context, c chart.Chart, o Options) error {
	lg := logging.OrDiscard(o.Logger)
	if err := c.Validate(); err != nil {
		return err
	}
	colors, err := geom.NewColorCycle(o.Palette...)
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}

	n := c.Corners()
	r := geom.Rect{Width: float64(o.Size), Height: float64(o.Size)}
	off := float64(o.Margin)
	moveTo := func(p geom.Point) { dc.MoveTo(p.X+off, p.Y+off) }
	lineTo := func(p geom.Point) { dc.LineTo(p.X+off, p.Y+off) }

	dc.ClearWithColor(o.Background)

	// grid
	dc.SetRGBA(o.Grid.R, o.Grid.G, o.Grid.B, o.Grid.A)
	dc.SetLineWidth(o.LineWidth)
	switch o.RingStyle {
	case RingPolygons:
		rings, err := geom.RingPolygons(n, o.Rings, r)
		if err != nil {
			return err
		}
		for _, ring := range rings {
			tracePath(ring, moveTo, lineTo)
			if err := dc.Stroke(); err != nil {
				return err
			}
		}
	default:
		ctr := r.Center()
		for _, rad := range geom.RingRadii(o.Rings, r) {
			dc.DrawCircle(ctr.X+off, ctr.Y+off, rad)
			if err := dc.Stroke(); err != nil {
				return err
			}
		}
	}
	for _, s := range geom.Spokes(n, r) {
		moveTo(s.From)
		lineTo(s.To)
	}
	if err := dc.Stroke(); err != nil {
		return err
	}
	for _, p := range geom.AxisEndpoints(n, r, geom.DefaultInset) {
		dc.DrawCircle(p.X+off, p.Y+off, 1.5)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	// series
	for i, s := range c.Series {
		col := colors.Next()
		factors, err := c.Factors(i)
		if err != nil {
			return err
		}
		pts, err := geom.PolygonPathClosing(n, factors, r, o.Closing)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		tracePath(pts, moveTo, lineTo)
		dc.SetRGBA(col.R, col.G, col.B, o.Opacity)
		if err := dc.Fill(); err != nil {
			return err
		}
		lg.Debug("series drawn", slog.String("name", s.Name), slog.Int("points", len(pts)))
	}
	return nil
}

func tracePath(pts []geom.Point, moveTo, lineTo func(geom.Point)) {
	for i, p := range pts {
		if i == 0 {
			moveTo(p)
		} else {
			lineTo(p)
		}
	}
}

// Encode renders c and writes it as PNG.
func Encode(w io.Writer, c chart.Chart, o Options) error {
	width, height := o.Bounds()
	dc := gg.NewContext(width, height)
	defer dc.Close()
	if err := Draw(dc, c, o); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders c to a PNG file at path.
func SavePNG(path string, c chart.Chart, o Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, c, o); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logging.OrDiscard(o.Logger).Info("chart exported", slog.String("path", path), slog.Int("series", len(c.Series)))
	return nil
}
