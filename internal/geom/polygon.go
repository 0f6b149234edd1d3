package geom

import (
	"fmt"
	"math"
)

// startAngle puts corner 0 at twelve o'clock.
const startAngle = -math.Pi / 2

// cornerAngle returns the angle of corner i out of n, stepping clockwise on
// a Y-down screen.
func cornerAngle(i, n int) float64 {
	return startAngle + float64(i)*(2*math.Pi/float64(n))
}

// PolygonPath computes the closed outline of an n-corner radar polygon in r.
// Corner i sits at fraction factors[i] of the rim. The returned path has
// corners+1 points; the final point is the unscaled corner-0 rim position.
// Fewer than two corners yields an empty path.
func PolygonPath(corners int, factors []float64, r Rect) ([]Point, error) {
	return PolygonPathClosing(corners, factors, r, CloseAtRim)
}

// PolygonPathClosing is PolygonPath with an explicit closing vertex choice.
func PolygonPathClosing(corners int, factors []float64, r Rect, closing Closing) ([]Point, error) {
	if corners < 2 {
		return nil, nil
	}
	if len(factors) != corners {
		return nil, fmt.Errorf("%w: %d factors for %d corners", ErrInvalidArgument, len(factors), corners)
	}
	c := r.Center()

	// The rim start is fixed before any scaling happens.
	start := Point{X: c.X * math.Cos(startAngle), Y: c.Y * math.Sin(startAngle)}

	pts := make([]Point, 0, corners+1)
	for i := 0; i < corners; i++ {
		a := cornerAngle(i, corners)
		f := factors[i]
		pts = append(pts, Point{X: f * c.X * math.Cos(a), Y: c.Y * math.Sin(a) * f})
	}
	if closing == CloseAtData {
		pts = append(pts, pts[0])
	} else {
		pts = append(pts, start)
	}

	for i := range pts {
		pts[i].X += c.X
		pts[i].Y += c.Y
	}
	return pts, nil
}

// Uniform returns n copies of f, the factor list for grid rings.
func Uniform(n int, f float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f
	}
	return out
}

// RingPolygons returns the concentric grid rings, ring k of n drawn at
// fraction k/n of the rim. The outermost ring is the full rim. Each ring
// closes on its own first vertex.
func RingPolygons(corners, rings int, r Rect) ([][]Point, error) {
	if rings < 1 || corners < 2 {
		return nil, nil
	}
	out := make([][]Point, 0, rings)
	for k := 1; k <= rings; k++ {
		p, err := PolygonPathClosing(corners, Uniform(corners, float64(k)/float64(rings)), r, CloseAtData)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// RingRadii returns radii for circular grid rings evenly stepped out to
// half the shorter side of r.
func RingRadii(rings int, r Rect) []float64 {
	if rings < 1 {
		return nil
	}
	rim := math.Min(r.Width, r.Height) / 2
	out := make([]float64, rings)
	for k := range out {
		out[k] = rim * float64(k+1) / float64(rings)
	}
	return out
}

// Normalize divides each value by its axis maximum. Values outside [0,1]
// after division are passed through untouched.
func Normalize(values, maxima []float64) ([]float64, error) {
	if len(values) != len(maxima) {
		return nil, fmt.Errorf("%w: %d values for %d axes", ErrInvalidArgument, len(values), len(maxima))
	}
	out := make([]float64, len(values))
	for i, v := range values {
		if !(maxima[i] > 0) {
			return nil, fmt.Errorf("%w: axis %d max %g is not positive", ErrInvalidArgument, i, maxima[i])
		}
		out[i] = v / maxima[i]
	}
	return out, nil
}
