// Package logging builds the service's slog logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// Level names a logging severity as written in configuration.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// Validate reports an error for names outside debug, info, warn and error.
func (l Level) Validate() error {
	if _, ok := levels[l]; !ok {
		return fmt.Errorf("invalid log level %q (want one of %s)", l, choices(levels))
	}
	return nil
}

// ToSlogLevel maps l onto slog. Unknown names log at info.
func (l Level) ToSlogLevel() slog.Level {
	if lvl, ok := levels[l]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// Format selects the record encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type handlerFunc func(io.Writer, *slog.HandlerOptions) slog.Handler

var formats = map[Format]handlerFunc{
	FormatText: func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, o) },
	FormatJSON: func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, o) },
}

// Validate reports an error for formats other than text and json.
func (f Format) Validate() error {
	if _, ok := formats[f]; !ok {
		return fmt.Errorf("invalid log format %q (want one of %s)", f, choices(formats))
	}
	return nil
}

// New returns a logger writing to w, or stdout when w is nil. An unknown
// format falls back to text.
func New(cfg *Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	build, ok := formats[cfg.Format]
	if !ok {
		build = formats[FormatText]
	}

	return slog.New(build(w, &slog.HandlerOptions{
		Level:     cfg.Level.ToSlogLevel(),
		AddSource: cfg.AddSource,
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func choices[K ~string, V any](m map[K]V) string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
