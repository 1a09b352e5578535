package main

import (
	"fmt"
	"io"
	"log/slog"
)

type logger struct {
	*slog.Logger
}

func (rcc *rootCmdConfig) setup(w io.Writer) error {
	l, err := newLogger(w, rcc.logFormat, rcc.verbose)
	if err != nil {
		return err
	}
	rcc.Logger = l
	return nil
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	switch format {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q: expected text or json", format)
}

// Logf logs a progress message, only shown in verbose mode.
func (l *logger) Logf(format string, a ...interface{}) {
	if l.Logger == nil {
		return
	}
	l.Debug(fmt.Sprintf(format, a...))
}
