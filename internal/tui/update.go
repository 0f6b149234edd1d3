package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"radarchart/internal/chart"
	"radarchart/internal/geom"
	"radarchart/internal/render"
)

// exportDoneMsg reports the outcome of a PNG export.
type exportDoneMsg struct {
	path string
	err  error
}

func (m Model) exportCmd() tea.Cmd {
	c := m.chart
	o := render.DefaultOptions()
	o.Closing = m.closing
	if !m.ringCircles {
		o.RingStyle = render.RingPolygons
	}
	o.Logger = m.lg
	name := strings.Map(func(r rune) rune {
		if r == ' ' || r == filepath.Separator {
			return '_'
		}
		return r
	}, c.Title)
	if name == "" {
		name = "chart"
	}
	path := filepath.Join(m.cwd, name+".png")
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: render.SavePNG(path, c, o)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		}
	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export error: " + msg.err.Error()
			m.lg.Error("export failed", slog.String("path", msg.path), slog.Any("error", msg.err))
		} else {
			m.status = "exported: " + filepath.Base(msg.path)
		}
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				s := strings.TrimSpace(m.ta.Value())
				if s == "" {
					m.status = "paste: empty"
					return m, nil
				}
				c, err := chart.ParseText(s)
				if err != nil {
					m.status = "parse error: " + err.Error()
					return m, nil
				}
				if c.Title == "" {
					c.Title = "pasted"
				}
				m.selPath = ""
				m.setChart(c)
				m.status = fmt.Sprintf("rendered paste  axes=%d series=%d", c.Corners(), len(c.Series))
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showTable {
			switch msg.String() {
			case "esc", "a":
				m.showTable = false
				return m, nil
			case "enter":
				m.highlight = m.tbl.Cursor()
				m.showTable = false
				m.status = "highlight: " + m.chart.Series[m.highlight].Name
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.showRings = !m.showRings
			m.status = fmt.Sprintf("rings: %v", m.showRings)
		case "s":
			m.showSpokes = !m.showSpokes
			m.status = fmt.Sprintf("spokes: %v", m.showSpokes)
		case "d":
			m.showData = !m.showData
			m.status = fmt.Sprintf("data: %v", m.showData)
		case "l":
			// toggle all layers
			all := m.showRings && m.showSpokes && m.showData && m.showLabels
			m.showRings = !all
			m.showSpokes = !all
			m.showData = !all
			m.showLabels = !all
			m.status = fmt.Sprintf("layers: rings=%v spokes=%v data=%v labels=%v", m.showRings, m.showSpokes, m.showData, m.showLabels)
		case "o":
			m.ringCircles = !m.ringCircles
			if m.ringCircles {
				m.status = "rings: circles"
			} else {
				m.status = "rings: polygons"
			}
		case "c":
			if m.closing == geom.CloseAtRim {
				m.closing = geom.CloseAtData
			} else {
				m.closing = geom.CloseAtRim
			}
			m.status = "closing: " + m.closing.String()
		case "n":
			if len(m.chart.Series) > 0 {
				m.highlight = (m.highlight + 1) % len(m.chart.Series)
				m.status = "highlight: " + m.chart.Series[m.highlight].Name
			}
		case "+", "=":
			if m.zoom < 8 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.1 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = true
			m.refreshTable()
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				break
			}
			m.inspectPopup = m.inspectText()
			m.status = "inspect popup"
		case "e":
			m.status = "exporting..."
			return m, m.exportCmd()
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		originX, originY, mapW, mapH, _, _ := m.mapArea()
		cx, cy := msg.X, msg.Y
		if cx >= originX && cx < originX+mapW && cy >= originY && cy < originY+mapH {
			hx := (cx - originX) * 2
			hy := (cy - originY) * 4
			axis, mx, my, ok := m.nearestVertex(hx, hy, mapW, mapH)
			m.hovering = ok
			m.hoverAxis, m.hoverMicX, m.hoverMicY = axis, mx, my
		} else {
			m.hovering = false
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// inspectText summarizes the highlighted series for the popup.
func (m Model) inspectText() string {
	c := m.chart
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<unsaved>"
	}
	meta := []string{
		fmt.Sprintf("chart: %s (%s)", c.Title, name),
		fmt.Sprintf("axes: %d  series: %d", c.Corners(), len(c.Series)),
		"closing: " + m.closing.String(),
	}
	if m.highlight < len(c.Series) {
		s := c.Series[m.highlight]
		meta = append(meta, "series: "+s.Name)
		for i, a := range c.Axes {
			meta = append(meta, fmt.Sprintf("  %s: %g / %g", a, s.Values[i], c.Max[i]))
		}
	}
	return strings.Join(meta, "\n")
}
