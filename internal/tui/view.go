package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// mapArea returns where the chart canvas sits on screen and the overall
// content size. Update and View must agree on it.
func (m Model) mapArea() (originX, originY, mapW, mapH, contentW, contentH int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
	}
	contentH = m.height - headerHeight - footerHeight
	if contentH < 4 {
		contentH = 4
	}
	contentW = max(10, m.width)
	mapW = contentW - sw - 1
	if mapW < 10 {
		mapW = 10
	}
	mapH = contentH
	if m.showSidebar {
		originX = sw + 1
	}
	return originX, headerHeight, mapW, mapH, contentW, contentH
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	_, _, mapWidth, mapHeight, contentWidth, contentHeight := m.mapArea()

	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
	}

	// Header
	title := " radarchart ─ " + m.chart.Title + " "
	header := titleStyle.Render(title)
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showTable:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, contentWidth-6)
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderCanvas(mapWidth, mapHeight))
	}

	popup := ""
	if m.inspectPopup != "" && !m.showTable {
		maxPopupW := max(20, min(48, contentWidth/2))
		box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Center, box)
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	hover := ""
	if v := m.hoverText(); v != "" {
		hover = dimStyle.Render("  " + v + "  ")
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(hover))
	right := lipgloss.Place(spacerW+lipgloss.Width(hover), 1, lipgloss.Right, lipgloss.Center, hover)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// hoverText describes the hovered vertex, e.g. "speed=7 (70%)".
func (m Model) hoverText() string {
	if !m.hovering || m.hoverAxis < 0 || m.highlight >= len(m.chart.Series) {
		return ""
	}
	s := m.chart.Series[m.highlight]
	if m.hoverAxis >= len(s.Values) {
		return ""
	}
	v := s.Values[m.hoverAxis]
	return fmt.Sprintf("%s %s=%g (%.0f%%)", s.Name, m.chart.Axes[m.hoverAxis], v, 100*v/m.chart.Max[m.hoverAxis])
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"Tab sidebar",
		"Enter open",
		"p paste",
		"n next",
		"a table",
		"i inspect",
		"r/s/d/l layers",
		"o rings",
		"c close",
		"e export",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
