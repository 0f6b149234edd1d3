package geom

import "math"

// AxisEndpoints returns the outer end of each axis, pushed inset units past
// the rim on both x and y. The inner end of every axis is r.Center().
func AxisEndpoints(corners int, r Rect, inset float64) []Point {
	if corners < 2 {
		return nil
	}
	c := r.Center()
	rx, ry := c.X+inset, c.Y+inset
	out := make([]Point, 0, corners)
	for i := 0; i < corners; i++ {
		a := cornerAngle(i, corners)
		out = append(out, Point{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)})
	}
	return out
}

// Spokes returns one center-to-rim segment per axis. Spokes are never joined
// into a closed path.
func Spokes(corners int, r Rect) []Segment {
	if corners < 2 {
		return nil
	}
	c := r.Center()
	out := make([]Segment, 0, corners)
	for i := 0; i < corners; i++ {
		a := cornerAngle(i, corners)
		out = append(out, Segment{
			From: c,
			To:   Point{X: c.X + c.X*math.Cos(a), Y: c.Y + c.Y*math.Sin(a)},
		})
	}
	return out
}
