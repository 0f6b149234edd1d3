package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a 2x4 micro-pixel canvas per terminal cell. Each cell
// remembers the pen of the last stroke that touched it.
type brailleBuf struct {
	w, h   int       // in cells
	m      [][]uint8 // per-cell 8-bit mask
	pens   [][]int   // per-cell style index, 0 = unstyled
	text   [][]rune  // per-cell overlay glyph, 0 = none
	styles []lipgloss.Style
	pen    int
}

func newBrailleBuf(w, h int) *brailleBuf {
	b := &brailleBuf{w: w, h: h}
	b.m = make([][]uint8, h)
	b.pens = make([][]int, h)
	b.text = make([][]rune, h)
	for i := 0; i < h; i++ {
		b.m[i] = make([]uint8, w)
		b.pens[i] = make([]int, w)
		b.text[i] = make([]rune, w)
	}
	return b
}

// usePen makes s the style for everything drawn until the next usePen.
func (b *brailleBuf) usePen(s lipgloss.Style) {
	b.styles = append(b.styles, s)
	b.pen = len(b.styles)
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.pens[cy][cx] = b.pen
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawRingMicro draws a closed outline through pts, including the edge
// from the last point back to the first.
func (b *brailleBuf) drawRingMicro(pts [][2]int) {
	for i := range pts {
		a := pts[i]
		c := pts[(i+1)%len(pts)]
		b.drawLineMicro(a[0], a[1], c[0], c[1])
	}
}

// drawCircleMicro draws a circle outline with the midpoint algorithm.
func (b *brailleBuf) drawCircleMicro(cx, cy, r int) {
	if r <= 0 {
		b.setPixel(cx, cy)
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		for _, p := range [][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			b.setPixel(cx+p[0], cy+p[1])
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// fillPolygonMicro fills pts with the even-odd rule, one scanline per
// micro row.
func (b *brailleBuf) fillPolygonMicro(pts [][2]int) {
	if len(pts) < 3 {
		return
	}
	hMic := b.h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := 0; i < len(pts); i++ {
			a := pts[i]
			c := pts[(i+1)%len(pts)]
			if a[1] == c[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], c[1]
			x0, x1 := a[0], c[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, xs[i]); xMic <= xs[i+1]; xMic++ {
				b.setPixel(xMic, yMic)
			}
		}
	}
}

// putText writes s centered on cell (cx, cy), shifted to stay on canvas.
func (b *brailleBuf) putText(cx, cy int, s string) {
	if cy < 0 || cy >= b.h {
		return
	}
	rs := []rune(s)
	if len(rs) > b.w {
		rs = rs[:b.w]
	}
	x0 := cx - len(rs)/2
	if x0 < 0 {
		x0 = 0
	}
	if x0+len(rs) > b.w {
		x0 = b.w - len(rs)
	}
	for i, r := range rs {
		b.text[cy][x0+i] = r
		b.pens[cy][x0+i] = b.pen
	}
}

// cell returns the glyph and pen for one cell.
func (b *brailleBuf) cell(x, y int) (rune, int) {
	if r := b.text[y][x]; r != 0 {
		return r, b.pens[y][x]
	}
	mask := b.m[y][x]
	if mask == 0 {
		return ' ', 0
	}
	return rune(0x2800 + int(mask)), b.pens[y][x]
}

// toLines renders every row, styling runs of cells that share a pen.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		runPen := -1
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runPen > 0 {
				sb.WriteString(b.styles[runPen-1].Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			r, pen := b.cell(x, y)
			if r == ' ' {
				pen = 0
			}
			if pen != runPen {
				flush()
				runPen = pen
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
