// Package logging sets up the structured logger. The terminal belongs to the
// UI, so records go to a rotating file instead of stderr.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file created inside the log directory.
const FileName = "radarchart.slog"

// ParseLevel maps debug/info/warn/error to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%s: invalid log level", level)
}

// New returns a JSON logger writing to dir/radarchart.slog. An empty dir
// means the user config directory.
func New(level, dir string) (*slog.Logger, string, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, "", err
	}
	if dir == "" {
		cfg, err := os.UserConfigDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to find user config dir: %v\n", err)
			cfg = "."
		}
		dir = filepath.Join(cfg, "radarchart")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", err
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, FileName),
		MaxSize:    8, // MB
		MaxBackups: 2,
	}
	if lvl == slog.LevelDebug {
		w.MaxSize = 64
	}

	l := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	l.Info("Hello logging", slog.Time("start", time.Now()))
	l.Info("System information",
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS))
	if bi, ok := debug.ReadBuildInfo(); ok {
		l.Debug("Build", slog.String("Go version", bi.GoVersion), slog.String("Path", bi.Path))
	}
	return l, w.Filename, nil
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Discard returns a logger that drops everything.
func Discard() *slog.Logger { return slog.New(nopHandler{}) }

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
