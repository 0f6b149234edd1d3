package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a caller breaks an input contract
// (factor count mismatch, empty palette, non-positive maximum).
var ErrInvalidArgument = errors.New("invalid argument")

// DefaultInset is the distance axis endpoints sit outside the grid rim.
const DefaultInset = 10.0

// Point is a planar coordinate in target rect space (origin top-left, Y down).
type Point struct {
	X float64
	Y float64
}

// Rect is the target drawing area. Shapes are centered in it and scaled by
// half its width and height independently.
type Rect struct {
	Width  float64
	Height float64
}

// Center returns the middle of the rect.
func (r Rect) Center() Point {
	return Point{X: r.Width / 2, Y: r.Height / 2}
}

// Segment is a single straight line, used for spokes.
type Segment struct {
	From Point
	To   Point
}

// Closing selects which vertex ends a polygon path.
type Closing int

const (
	// CloseAtRim ends the path on the unscaled corner-0 rim position.
	CloseAtRim Closing = iota
	// CloseAtData ends the path on the scaled corner-0 data point.
	CloseAtData
)

func (c Closing) String() string {
	switch c {
	case CloseAtRim:
		return "rim"
	case CloseAtData:
		return "data"
	}
	return "unknown"
}

// ParseClosing maps "rim" or "data" to a Closing.
func ParseClosing(s string) (Closing, error) {
	switch s {
	case "rim", "":
		return CloseAtRim, nil
	case "data":
		return CloseAtData, nil
	}
	return CloseAtRim, fmt.Errorf("%w: closing must be rim or data, got %q", ErrInvalidArgument, s)
}
