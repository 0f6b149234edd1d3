package tui

import (
	"log/slog"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"radarchart/internal/chart"
	"radarchart/internal/geom"
	"radarchart/internal/logging"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string
	lg     *slog.Logger

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	chart     chart.Chart
	highlight int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	showRings  bool
	showSpokes bool
	showData   bool
	showLabels bool

	ringCircles bool
	closing     geom.Closing

	// inspect popup
	inspectPopup string

	// hover state
	hovering  bool
	hoverAxis int
	hoverMicX int
	hoverMicY int

	// series table
	showTable bool
	tbl       table.Model
}

// Option customizes a Model at construction.
type Option func(*Model)

// WithLogger routes UI events to l.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.lg = logging.OrDiscard(l) }
}

// WithClosing picks how data polygons close.
func WithClosing(c geom.Closing) Option {
	return func(m *Model) { m.closing = c }
}

func New(opts ...Option) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "radarchart ready",
		lg:          logging.Discard(),
		chart:       chart.Demo(),
		showRings:   true,
		showSpokes:  true,
		showData:    true,
		showLabels:  true,
		ringCircles: true,
		closing:     geom.CloseAtRim,
		hoverAxis:   -1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Charts"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste series here, e.g. \"axes: a, b, c; max: 10; alpha: 7, 3, 9\". Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// series table setup (columns follow the chart axes)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a chart file at launch.
func NewWithPath(path string, opts ...Option) Model {
	m := New(opts...)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Chart returns the chart currently on screen.
func (m Model) Chart() chart.Chart { return m.chart }

// setChart swaps in a freshly loaded chart and resets the viewport.
func (m *Model) setChart(c chart.Chart) {
	m.chart = c
	m.highlight = 0
	m.hovering = false
	m.hoverAxis = -1
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	if m.showTable {
		m.refreshTable()
	}
	m.lg.Info("chart loaded",
		slog.String("title", c.Title),
		slog.Int("axes", c.Corners()),
		slog.Int("series", len(c.Series)))
}
