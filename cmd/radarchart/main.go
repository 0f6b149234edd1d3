package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"radarchart/internal/chart"
	"radarchart/internal/geom"
	"radarchart/internal/logging"
	"radarchart/internal/render"
	"radarchart/internal/tui"
)

var (
	pngOut   = flag.String("png", "", "render the chart to this PNG file and exit")
	size     = flag.Int("size", 250, "chart size in pixels for -png")
	rings    = flag.Int("rings", 5, "number of grid rings for -png")
	polyGrid = flag.Bool("polygrid", false, "draw polygon grid rings instead of circles for -png")
	closing  = flag.String("closing", "rim", "how data polygons close: rim or data")
	logLevel = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir   = flag.String("logdir", "", "log file directory")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [chart.csv|chart.json|chart.txt]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	lg, logFile, err := logging.New(*logLevel, *logDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}

	cl, err := geom.ParseClosing(*closing)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	path := flag.Arg(0)
	if *pngOut != "" {
		if err := export(path, cl, lg); err != nil {
			lg.Error("export failed", slog.Any("error", err))
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	lg.Info("Starting UI", slog.String("logfile", logFile))
	var m tea.Model
	if path != "" {
		m = tui.NewWithPath(path, tui.WithLogger(lg), tui.WithClosing(cl))
	} else {
		m = tui.New(tui.WithLogger(lg), tui.WithClosing(cl))
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		lg.Error("program exited", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func export(path string, cl geom.Closing, lg *slog.Logger) error {
	c := chart.Demo()
	if path != "" {
		var err error
		if c, err = chart.Load(path); err != nil {
			return err
		}
	}
	o := render.DefaultOptions()
	o.Size = *size
	o.Rings = *rings
	o.Closing = cl
	o.Logger = lg
	if *polyGrid {
		o.RingStyle = render.RingPolygons
	}
	return render.SavePNG(*pngOut, c, o)
}
