package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cdidc/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	OutputPaths []string
	// Stderr replaces os.Stderr for the "stderr" output path.
	Stderr      io.Writer
}

// New constructs a slog logger using the provided options. The returned
// close function releases any log files the logger opened; it is never nil.
func New(opts Options) (*slog.Logger, func() error, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	if format != "json" && format != "console" {
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	outputWriter, closers, err := openWriters(defaultSlice(opts.OutputPaths, []string{"stderr"}), opts.Stderr)
	if err != nil {
		return nil, nil, err
	}

	addSource := level <= slog.LevelDebug

	var handler slog.Handler
	if format == "json" {
		handler = newJSONHandler(outputWriter, levelVar, addSource)
	} else {
		handler = newPrettyHandler(outputWriter, levelVar, addSource)
	}

	return slog.New(handler), closeAll(closers), nil
}

// NewFromConfig creates a logger using application config defaults. Logs
// always go to stderr because stdout carries disc identifiers; a configured
// log file receives a copy. Callers must invoke the returned close function.
func NewFromConfig(cfg *config.Config, stderr io.Writer) (*slog.Logger, func() error, error) {
	if cfg == nil {
		return New(Options{Level: "warn", Format: "console", Stderr: stderr})
	}

	outputPaths := []string{"stderr"}
	if cfg.Logging.File != "" {
		outputPaths = append(outputPaths, cfg.Logging.File)
	}

	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputPaths,
		Stderr:      stderr,
	})
}

func closeAll(closers []io.Closer) func() error {
	return func() error {
		var errs []error
		for _, c := range closers {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		closers = nil
		return errors.Join(errs...)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	case "warn", "":
		return slog.LevelWarn
	default:
		return slog.LevelWarn
	}
}

func defaultSlice(value []string, fallback []string) []string {
	if len(value) == 0 {
		cp := make([]string, len(fallback))
		copy(cp, fallback)
		return cp
	}
	cp := make([]string, len(value))
	copy(cp, value)
	return cp
}

func openWriters(paths []string, stderr io.Writer) (io.Writer, []io.Closer, error) {
	if stderr == nil {
		stderr = os.Stderr
	}
	seen := map[string]struct{}{}
	var writers []io.Writer
	var closers []io.Closer

	fail := func(err error) (io.Writer, []io.Closer, error) {
		for _, c := range closers {
			_ = c.Close()
		}
		return nil, nil, err
	}

	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}

		switch trimmed {
		case "stderr":
			writers = append(writers, stderr)
		case "stdout":
			return fail(fmt.Errorf("log output: stdout is reserved for disc identifiers"))
		default:
			if err := ensureLogDir(trimmed); err != nil {
				return fail(err)
			}
			file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
			if err != nil {
				return fail(fmt.Errorf("open log file %s: %w", trimmed, err))
			}
			writers = append(writers, file)
			closers = append(closers, file)
		}
	}

	switch len(writers) {
	case 0:
		return stderr, closers, nil
	case 1:
		return writers[0], closers, nil
	default:
		return io.MultiWriter(writers...), closers, nil
	}
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
