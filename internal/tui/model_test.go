package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"radarchart/internal/geom"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	nm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return nm.(Model)
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		nm, _ := m.Update(msg)
		m = nm.(Model)
	}
	return m
}

func TestNew_ShowsDemo(t *testing.T) {
	m := sized(t, New())
	if m.chart.Corners() != 5 {
		t.Fatalf("demo chart has %d axes, want 5", m.chart.Corners())
	}
	v := m.View()
	if !strings.Contains(v, "radarchart") {
		t.Error("view is missing the header")
	}
	for _, a := range m.chart.Axes {
		if !strings.Contains(v, a) {
			t.Errorf("view is missing axis label %q", a)
		}
	}
	if !strings.ContainsAny(v, "⠁⠂⠄⡀⠈⠐⠠⢀⣿") {
		t.Error("view has no braille cells")
	}
}

func TestView_ZeroSize(t *testing.T) {
	if New().View() != "" {
		t.Error("view before the first WindowSizeMsg should be empty")
	}
}

func TestUpdate_LayerToggles(t *testing.T) {
	m := sized(t, New())
	m = press(m, key("r"), key("s"), key("d"))
	if m.showRings || m.showSpokes || m.showData {
		t.Errorf("layers still on: rings=%v spokes=%v data=%v", m.showRings, m.showSpokes, m.showData)
	}
	m = press(m, key("l"))
	if !m.showRings || !m.showSpokes || !m.showData || !m.showLabels {
		t.Error("l should turn every layer back on")
	}
	m = press(m, key("l"))
	if m.showRings || m.showLabels {
		t.Error("second l should turn every layer off")
	}
	if got := m.renderCanvas(40, 10); strings.Trim(got, " \n") != "" {
		t.Errorf("canvas with every layer off = %q, want blank", got)
	}
}

func TestUpdate_ClosingAndRings(t *testing.T) {
	m := New()
	if m.closing != geom.CloseAtRim {
		t.Fatalf("default closing = %v", m.closing)
	}
	m = press(m, key("c"), key("o"))
	if m.closing != geom.CloseAtData {
		t.Errorf("closing = %v, want data", m.closing)
	}
	if m.ringCircles {
		t.Error("o should switch to polygon rings")
	}
	if !strings.Contains(m.status, "polygons") {
		t.Errorf("status = %q", m.status)
	}
	if m2 := New(WithClosing(geom.CloseAtData)); m2.closing != geom.CloseAtData {
		t.Error("WithClosing not applied")
	}
}

func TestUpdate_PasteCyclesHighlight(t *testing.T) {
	m := sized(t, New())
	m = press(m, key("p"))
	if !m.pasteMode {
		t.Fatal("p should enter paste mode")
	}
	m.ta.SetValue("axes: a, b, c; max: 10; x: 1, 2, 3; y: 4, 5, 6; z: 7, 8, 9")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.pasteMode {
		t.Fatalf("still in paste mode, status %q", m.status)
	}
	if len(m.chart.Series) != 3 || m.chart.Title != "pasted" {
		t.Fatalf("chart = %+v", m.chart)
	}
	m = press(m, key("n"), key("n"))
	if m.highlight != 2 {
		t.Errorf("highlight = %d, want 2", m.highlight)
	}
	m = press(m, key("n"))
	if m.highlight != 0 {
		t.Errorf("highlight should wrap, got %d", m.highlight)
	}
}

func TestUpdate_PasteErrorKeepsChart(t *testing.T) {
	m := press(New(), key("p"))
	m.ta.SetValue("x: 1, nope")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.pasteMode || !strings.HasPrefix(m.status, "parse error") {
		t.Errorf("pasteMode=%v status=%q", m.pasteMode, m.status)
	}
	if m.chart.Title != "demo" {
		t.Errorf("chart replaced by failed paste: %q", m.chart.Title)
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.pasteMode {
		t.Error("esc should leave paste mode")
	}
}

func TestNewWithPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cars.csv")
	if err := os.WriteFile(p, []byte("name,speed,comfort,price\nmax,200,10,50\nvan,120,8,30\ncoupe,190,5,45\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := NewWithPath(p)
	if m.chart.Title != "cars" || len(m.chart.Series) != 2 {
		t.Fatalf("chart = %+v, status %q", m.chart, m.status)
	}
	if !strings.HasPrefix(m.status, "loaded: cars.csv") {
		t.Errorf("status = %q", m.status)
	}

	bad := NewWithPath(filepath.Join(t.TempDir(), "missing.csv"))
	if !strings.HasPrefix(bad.status, "load error") || bad.chart.Title != "demo" {
		t.Errorf("missing file: status %q chart %q", bad.status, bad.chart.Title)
	}
}

func TestSeriesTable(t *testing.T) {
	m := sized(t, New())
	m = press(m, key("a"))
	if !m.showTable {
		t.Fatal("a should open the series table")
	}
	cols := m.tbl.Columns()
	if len(cols) != 2+m.chart.Corners() || cols[1].Title != "series" {
		t.Errorf("columns = %+v", cols)
	}
	rows := m.tbl.Rows()
	if len(rows) != 1 || rows[0][1] != "sample" || rows[0][3] != "0.3 (30%)" {
		t.Errorf("rows = %v", rows)
	}
	if !strings.Contains(m.View(), "sample") {
		t.Error("table view missing series name")
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showTable {
		t.Error("esc should close the table")
	}
}

func TestInspectPopup(t *testing.T) {
	m := sized(t, New())
	m = press(m, key("i"))
	for _, want := range []string{"chart: demo", "series: sample", "A2: 0.3 / 1"} {
		if !strings.Contains(m.inspectPopup, want) {
			t.Errorf("popup missing %q:\n%s", want, m.inspectPopup)
		}
	}
	m = press(m, key("i"))
	if m.inspectPopup != "" {
		t.Error("second i should close the popup")
	}
}

func TestNearestVertex(t *testing.T) {
	m := New()
	w, h := 80, 24
	l := m.layout(w, h)
	top := l.mic(geom.Point{X: l.rect.Width / 2, Y: 0})
	axis, _, _, ok := m.nearestVertex(top[0], top[1]-2, w, h)
	if !ok || axis != 0 {
		t.Errorf("nearest to top = axis %d ok=%v, want axis 0", axis, ok)
	}
}

func TestMouseHover(t *testing.T) {
	m := sized(t, New())
	_, originY, mapW, mapH, _, _ := m.mapArea()
	l := m.layout(mapW, mapH)
	top := l.mic(geom.Point{X: l.rect.Width / 2, Y: 0})
	m = press(m, tea.MouseMsg{X: top[0] / 2, Y: originY + top[1]/4})
	if !m.hovering || m.hoverAxis != 0 {
		t.Fatalf("hovering=%v axis=%d", m.hovering, m.hoverAxis)
	}
	if got := m.hoverText(); got != "sample A1=1 (100%)" {
		t.Errorf("hoverText = %q", got)
	}
	m = press(m, tea.MouseMsg{X: 0, Y: 0})
	if m.hovering {
		t.Error("header row should not count as hovering the chart")
	}
}

func TestExport(t *testing.T) {
	m := New()
	m.cwd = t.TempDir()
	nm, cmd := m.Update(key("e"))
	if cmd == nil {
		t.Fatal("e should return an export command")
	}
	msg, ok := cmd().(exportDoneMsg)
	if !ok {
		t.Fatalf("command returned %T", msg)
	}
	if msg.err != nil {
		t.Fatal(msg.err)
	}
	if _, err := os.Stat(filepath.Join(m.cwd, "demo.png")); err != nil {
		t.Fatal(err)
	}
	nm, _ = nm.Update(msg)
	if got := nm.(Model).status; got != "exported: demo.png" {
		t.Errorf("status = %q", got)
	}
}
