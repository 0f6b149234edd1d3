package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	gridFg    = lipgloss.Color("#4B5563")
	labelFg   = lipgloss.Color("#66CCEE")
	hoverFg   = lipgloss.Color("#FFA500")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	gridStyle  = lipgloss.NewStyle().Foreground(gridFg)
	labelStyle = lipgloss.NewStyle().Foreground(labelFg)
	hoverStyle = lipgloss.NewStyle().Foreground(hoverFg)
)

// seriesPalette colors successive series, one ColorCycle per frame.
var seriesPalette = []lipgloss.Color{
	"#22C55E",
	"#7C3AED",
	"#F59E0B",
	"#0EA5E9",
	"#EF4444",
	"#EC4899",
}
