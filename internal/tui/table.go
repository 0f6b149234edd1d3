package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable rebuilds the series table from the current chart.
func (m *Model) refreshTable() {
	cols, rows := m.buildTable()
	if len(rows) == 0 {
		m.showTable = false
		m.status = "no series in current chart"
		return
	}
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 3})
	maxColW := 16
	for i, c := range cols {
		w := max(len(c)+2, 7)
		if i == 0 {
			w = max(w, 10)
		}
		tcols = append(tcols, table.Column{Title: c, Width: min(w, maxColW)})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// clear rows before changing columns so the table never sees a mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	m.tbl.SetCursor(m.highlight)
}

// buildTable returns the header (series name then axes) and one row per
// series with raw values and their share of the axis max.
func (m *Model) buildTable() ([]string, [][]string) {
	c := m.chart
	cols := append([]string{"series"}, c.Axes...)
	rows := make([][]string, 0, len(c.Series))
	for i, s := range c.Series {
		row := make([]string, 0, len(cols))
		row = append(row, s.Name)
		factors, err := c.Factors(i)
		for j, v := range s.Values {
			if err != nil {
				row = append(row, fmt.Sprintf("%g", v))
				continue
			}
			row = append(row, fmt.Sprintf("%g (%.0f%%)", v, factors[j]*100))
		}
		rows = append(rows, row)
	}
	return cols, rows
}
