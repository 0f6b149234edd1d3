package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"radarchart/internal/chart"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !chart.Supported(name) {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no chart files in current directory"
	}
}

// loadPath loads a chart file into the model.
func (m *Model) loadPath(p string) {
	c, err := chart.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.lg.Warn("load failed", slog.String("path", p), slog.Any("error", err))
		return
	}
	m.selPath = p
	m.setChart(c)
	m.status = "loaded: " + filepath.Base(p) +
		fmt.Sprintf("  axes=%d series=%d", c.Corners(), len(c.Series))
}
