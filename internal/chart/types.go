package chart

import (
	"errors"
	"fmt"

	"radarchart/internal/geom"
)

var (
	// ErrInvalidChart wraps every validation failure.
	ErrInvalidChart = errors.New("invalid chart")
	// ErrUnsupported is returned for file types with no loader.
	ErrUnsupported = errors.New("unsupported file type")
)

// Series is one data polygon: a name and one raw value per axis.
type Series struct {
	Name   string
	Values []float64
}

// Chart is a radar chart dataset. Max holds the per-axis value that maps to
// the rim.
type Chart struct {
	Title  string
	Axes   []string
	Max    []float64
	Series []Series
}

// Corners is the number of axes.
func (c Chart) Corners() int { return len(c.Axes) }

// Validate checks the chart is drawable.
func (c Chart) Validate() error {
	if len(c.Axes) < 2 {
		return fmt.Errorf("%w: need at least 2 axes, have %d", ErrInvalidChart, len(c.Axes))
	}
	if len(c.Max) != len(c.Axes) {
		return fmt.Errorf("%w: %d maxima for %d axes", ErrInvalidChart, len(c.Max), len(c.Axes))
	}
	for i, m := range c.Max {
		if !(m > 0) {
			return fmt.Errorf("%w: axis %q max %g is not positive", ErrInvalidChart, c.Axes[i], m)
		}
	}
	for _, s := range c.Series {
		if len(s.Values) != len(c.Axes) {
			return fmt.Errorf("%w: series %q has %d values for %d axes", ErrInvalidChart, s.Name, len(s.Values), len(c.Axes))
		}
	}
	return nil
}

// Factors returns series i scaled against the axis maxima.
func (c Chart) Factors(i int) ([]float64, error) {
	if i < 0 || i >= len(c.Series) {
		return nil, fmt.Errorf("%w: series %d out of range", ErrInvalidChart, i)
	}
	return geom.Normalize(c.Series[i].Values, c.Max)
}

// UnitMax returns n maxima of 1, for data already in [0,1].
func UnitMax(n int) []float64 { return geom.Uniform(n, 1) }

// DefaultAxes names n axes A1..An.
func DefaultAxes(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("A%d", i+1)
	}
	return out
}

// Demo is the sample chart shown when nothing is loaded.
func Demo() Chart {
	return Chart{
		Title:  "demo",
		Axes:   DefaultAxes(5),
		Max:    UnitMax(5),
		Series: []Series{{Name: "sample", Values: []float64{1, 0.3, 0.9, 1, 0.5}}},
	}
}
