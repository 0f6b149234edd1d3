package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"radarchart/internal/geom"
)

const (
	ringCount = 5
	// labelInset pushes axis labels past the rim, in micro pixels.
	labelInset = 6
	// padX and padY keep room around the chart for labels, in micro pixels.
	padX = 16
	padY = 8
)

// canvasLayout places the chart square inside a w x h cell canvas.
type canvasLayout struct {
	rect   geom.Rect
	ox, oy float64 // micro-pixel offset of the rect's top-left corner
}

func (m Model) layout(w, h int) canvasLayout {
	wMic, hMic := w*2, h*4
	side := float64(min(wMic-2*padX, hMic-2*padY)) * m.zoom
	if side < 4 {
		side = 4
	}
	return canvasLayout{
		rect: geom.Rect{Width: side, Height: side},
		ox:   float64(wMic)/2 - side/2 + float64(m.offsetX*2),
		oy:   float64(hMic)/2 - side/2 + float64(m.offsetY*4),
	}
}

// mic maps a rect-relative point to integer micro-pixel coordinates.
func (l canvasLayout) mic(p geom.Point) [2]int {
	return [2]int{round(p.X + l.ox), round(p.Y + l.oy)}
}

func (l canvasLayout) micAll(pts []geom.Point) [][2]int {
	out := make([][2]int, len(pts))
	for i, p := range pts {
		out[i] = l.mic(p)
	}
	return out
}

// seriesPath returns the micro-pixel outline of series i.
func (m Model) seriesPath(i int, l canvasLayout) ([][2]int, error) {
	factors, err := m.chart.Factors(i)
	if err != nil {
		return nil, err
	}
	pts, err := geom.PolygonPathClosing(m.chart.Corners(), factors, l.rect, m.closing)
	if err != nil {
		return nil, err
	}
	return l.micAll(pts), nil
}

// renderCanvas draws the radar chart into a w x h block of braille cells.
func (m Model) renderCanvas(w, h int) string {
	br := newBrailleBuf(w, h)
	l := m.layout(w, h)
	n := m.chart.Corners()

	if m.showRings {
		br.usePen(gridStyle)
		if m.ringCircles {
			c := l.mic(l.rect.Center())
			for _, r := range geom.RingRadii(ringCount, l.rect) {
				br.drawCircleMicro(c[0], c[1], round(r))
			}
		} else if rings, err := geom.RingPolygons(n, ringCount, l.rect); err == nil {
			for _, ring := range rings {
				br.drawRingMicro(l.micAll(ring))
			}
		}
	}

	if m.showSpokes {
		br.usePen(gridStyle)
		for _, s := range geom.Spokes(n, l.rect) {
			a, b := l.mic(s.From), l.mic(s.To)
			br.drawLineMicro(a[0], a[1], b[0], b[1])
		}
	}

	if m.showData && len(m.chart.Series) > 0 {
		// one cycle per frame so colors follow series order
		colors, _ := geom.NewColorCycle(seriesPalette...)
		styles := make([]lipgloss.Style, len(m.chart.Series))
		for i := range styles {
			styles[i] = lipgloss.NewStyle().Foreground(colors.Next())
		}
		draw := func(i int) {
			path, err := m.seriesPath(i, l)
			if err != nil {
				return
			}
			br.usePen(styles[i])
			if i == m.highlight {
				br.fillPolygonMicro(path)
			}
			br.drawRingMicro(path)
		}
		for i := range m.chart.Series {
			if i != m.highlight {
				draw(i)
			}
		}
		if m.highlight < len(m.chart.Series) {
			draw(m.highlight)
		}
	}

	if m.showLabels {
		br.usePen(labelStyle)
		for i, p := range geom.AxisEndpoints(n, l.rect, labelInset) {
			q := l.mic(p)
			br.putText(floorDiv(q[0], 2), floorDiv(q[1], 4), m.chart.Axes[i])
		}
	}

	if m.hovering && m.hoverAxis >= 0 {
		br.usePen(hoverStyle)
		br.putText(floorDiv(m.hoverMicX, 2), floorDiv(m.hoverMicY, 4), "◯")
	}
	return strings.Join(br.toLines(), "\n")
}

// nearestVertex finds the highlighted series vertex closest to the micro
// pixel (hx, hy) on a w x h canvas.
func (m Model) nearestVertex(hx, hy, w, h int) (axis, mx, my int, ok bool) {
	if m.highlight >= len(m.chart.Series) {
		return -1, 0, 0, false
	}
	path, err := m.seriesPath(m.highlight, m.layout(w, h))
	if err != nil {
		return -1, 0, 0, false
	}
	best := math.MaxInt
	for i, p := range path[:m.chart.Corners()] {
		dx, dy := p[0]-hx, p[1]-hy
		if d := dx*dx + dy*dy; d < best {
			best, axis, mx, my = d, i, p[0], p[1]
		}
	}
	return axis, mx, my, true
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
