package geom

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func dist(p, q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

func TestPolygonPath_UnitFactorsInscribed(t *testing.T) {
	rects := []Rect{{400, 400}, {250, 250}, {37.5, 37.5}}
	for _, r := range rects {
		for n := 2; n <= 12; n++ {
			pts, err := PolygonPath(n, Uniform(n, 1), r)
			if err != nil {
				t.Fatalf("n=%d: %v", n, err)
			}
			if len(pts) != n+1 {
				t.Fatalf("n=%d: got %d points, want %d", n, len(pts), n+1)
			}
			if pts[0] != pts[n] {
				t.Errorf("n=%d: path not closed: first %v last %v", n, pts[0], pts[n])
			}
			want := math.Min(r.Width, r.Height) / 2
			for i, p := range pts[:n] {
				if d := dist(p, r.Center()); math.Abs(d-want) > 1e-6 {
					t.Errorf("n=%d vertex %d: radius %g, want %g", n, i, d, want)
				}
			}
		}
	}
}

func TestPolygonPath_Degenerate(t *testing.T) {
	for _, n := range []int{-3, 0, 1} {
		pts, err := PolygonPath(n, []float64{1}, Rect{100, 100})
		if err != nil {
			t.Errorf("corners=%d: unexpected error %v", n, err)
		}
		if len(pts) != 0 {
			t.Errorf("corners=%d: got %d points, want none", n, len(pts))
		}
	}
}

func TestPolygonPath_FactorMismatch(t *testing.T) {
	_, err := PolygonPath(5, []float64{1, 1, 1}, Rect{100, 100})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestPolygonPath_SquareOrientation(t *testing.T) {
	pts, err := PolygonPath(4, []float64{1, 1, 1, 1}, Rect{400, 400})
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{{200, 0}, {400, 200}, {200, 400}, {0, 200}, {200, 0}}
	for i, w := range want {
		if math.Abs(pts[i].X-w.X) > 1e-9 || math.Abs(pts[i].Y-w.Y) > 1e-9 {
			t.Errorf("vertex %d = %v, want %v", i, pts[i], w)
		}
	}
}

func TestPolygonPath_ScaledFactors(t *testing.T) {
	r := Rect{200, 100}
	pts, err := PolygonPath(4, []float64{0.5, 0, 1, 0.25}, r)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{{100, 25}, {100, 50}, {100, 100}, {75, 50}}
	for i, w := range want {
		if math.Abs(pts[i].X-w.X) > 1e-9 || math.Abs(pts[i].Y-w.Y) > 1e-9 {
			t.Errorf("vertex %d = %v, want %v", i, pts[i], w)
		}
	}
}

func TestPolygonPath_ClosesAtRim(t *testing.T) {
	r := Rect{300, 300}
	pts, err := PolygonPath(3, []float64{0.2, 0.5, 0.5}, r)
	if err != nil {
		t.Fatal(err)
	}
	last := pts[len(pts)-1]
	if !near(last.X, 150) || !near(last.Y, 0) {
		t.Errorf("closing vertex = %v, want rim top (150, 0)", last)
	}
	if pts[0] == last {
		t.Errorf("closing vertex should differ from scaled corner 0 %v", pts[0])
	}
}

func TestPolygonPathClosing_AtData(t *testing.T) {
	r := Rect{300, 300}
	pts, err := PolygonPathClosing(3, []float64{0.2, 0.5, 0.5}, r, CloseAtData)
	if err != nil {
		t.Fatal(err)
	}
	if pts[0] != pts[len(pts)-1] {
		t.Errorf("closing vertex %v, want scaled corner 0 %v", pts[len(pts)-1], pts[0])
	}
	if !near(pts[0].Y, 150-0.2*150) {
		t.Errorf("corner 0 y = %g, want %g", pts[0].Y, 150-0.2*150)
	}
}

func TestPolygonPath_OutOfRangeFactorsPassThrough(t *testing.T) {
	r := Rect{100, 100}
	pts, err := PolygonPath(2, []float64{2, -1}, r)
	if err != nil {
		t.Fatal(err)
	}
	// corner 0 at twice the rim above center, corner 1 flipped back above too.
	if !near(pts[0].Y, 50-100) {
		t.Errorf("corner 0 y = %g, want -50", pts[0].Y)
	}
	if !near(pts[1].Y, 50-50) {
		t.Errorf("corner 1 y = %g, want 0", pts[1].Y)
	}
}

func TestPolygonPath_Deterministic(t *testing.T) {
	f := []float64{1, 0.3, 0.9, 1, 0.5}
	a, _ := PolygonPath(5, f, Rect{250, 250})
	b, _ := PolygonPath(5, f, Rect{250, 250})
	if len(a) != len(b) {
		t.Fatalf("length differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Float64bits(a[i].X) != math.Float64bits(b[i].X) || math.Float64bits(a[i].Y) != math.Float64bits(b[i].Y) {
			t.Errorf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPolygonPath_DoesNotMutateFactors(t *testing.T) {
	f := []float64{1, 0.3, 0.9}
	if _, err := PolygonPath(3, f, Rect{10, 10}); err != nil {
		t.Fatal(err)
	}
	if f[0] != 1 || f[1] != 0.3 || f[2] != 0.9 {
		t.Errorf("factors mutated: %v", f)
	}
}

func TestRingPolygons(t *testing.T) {
	r := Rect{200, 200}
	rings, err := RingPolygons(6, 4, r)
	if err != nil {
		t.Fatal(err)
	}
	if len(rings) != 4 {
		t.Fatalf("got %d rings, want 4", len(rings))
	}
	for k, ring := range rings {
		want := 100 * float64(k+1) / 4
		if d := dist(ring[1], r.Center()); math.Abs(d-want) > 1e-9 {
			t.Errorf("ring %d radius %g, want %g", k, d, want)
		}
		if ring[0] != ring[len(ring)-1] {
			t.Errorf("ring %d not closed on itself: %v vs %v", k, ring[0], ring[len(ring)-1])
		}
	}

	if got, _ := RingPolygons(6, 0, r); got != nil {
		t.Errorf("zero rings: got %v, want nil", got)
	}
	if got, _ := RingPolygons(1, 3, r); got != nil {
		t.Errorf("one corner: got %v, want nil", got)
	}
}

func TestRingRadii(t *testing.T) {
	got := RingRadii(5, Rect{250, 300})
	want := []float64{25, 50, 75, 100, 125}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("radius %d = %g, want %g", i, got[i], want[i])
		}
	}
	if RingRadii(0, Rect{10, 10}) != nil {
		t.Error("zero rings should yield nil")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		max     []float64
		want    []float64
		wantErr bool
	}{
		{name: "unit", values: []float64{1, 0.5}, max: []float64{1, 1}, want: []float64{1, 0.5}},
		{name: "scaled", values: []float64{50, 20, 0}, max: []float64{100, 40, 10}, want: []float64{0.5, 0.5, 0}},
		{name: "over max kept", values: []float64{150}, max: []float64{100}, want: []float64{1.5}},
		{name: "length mismatch", values: []float64{1, 2}, max: []float64{1}, wantErr: true},
		{name: "zero max", values: []float64{1}, max: []float64{0}, wantErr: true},
		{name: "negative max", values: []float64{1}, max: []float64{-2}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.values, tt.max)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("err = %v, want ErrInvalidArgument", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			for i := range tt.want {
				if !near(got[i], tt.want[i]) {
					t.Errorf("got[%d] = %g, want %g", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseClosing(t *testing.T) {
	for in, want := range map[string]Closing{"": CloseAtRim, "rim": CloseAtRim, "data": CloseAtData} {
		got, err := ParseClosing(in)
		if err != nil || got != want {
			t.Errorf("ParseClosing(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseClosing("scaled"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}
