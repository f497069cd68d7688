// Package logger owns the process-wide slog logger used by the CLI and the browser.
// Records go to the workspace log file named by domain.Config.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aalvaropc/orchard/internal/domain"
)

var (
	mu     sync.RWMutex
	global = discard()
	sink   io.Closer
)

// Setup points the global logger at cfg.LogPath(root). The level comes from
// cfg.Logging.Level unless debug is set, which also adds source locations.
// The returned cleanup closes the file and restores the discard logger.
func Setup(root string, cfg domain.Config, debug bool) (func() error, error) {
	level, err := ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, &domain.OpError{Op: "logger.setup", Kind: domain.KindInvalidConfig, Err: err}
	}
	if debug {
		level = slog.LevelDebug
	}

	path := cfg.LogPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &domain.OpError{Op: "logger.setup", Kind: domain.KindExecution, Path: path, Err: err}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, &domain.OpError{Op: "logger.setup", Kind: domain.KindExecution, Path: path, Err: err}
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:       level,
		AddSource:   debug,
		ReplaceAttr: utcTime,
	})
	l := slog.New(h).With("workspace", filepath.Base(root))

	if err := swap(l, f); err != nil {
		l.Warn("logger.previous_close_failed", "err", err)
	}
	l.Info("logger.initialized", "path", path, "level", level.String(), "debug", debug)

	return func() error { return swap(discard(), nil) }, nil
}

// ParseLevel accepts debug, info, warn or error in any case. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// swap installs l and closes the previous sink.
func swap(l *slog.Logger, c io.Closer) error {
	mu.Lock()
	prev := sink
	global, sink = l, c
	mu.Unlock()

	if prev != nil {
		return prev.Close()
	}
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}
