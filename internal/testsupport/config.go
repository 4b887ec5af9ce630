package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"cdidc/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a default config with logging routed to a per-test file.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Logging.File = filepath.Join(t.TempDir(), "cdidc.log")

	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithDevice overrides the optical drive path on the test config.
func WithDevice(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Disc.Device = path
	}
}

// WithBrowser overrides the submission browser on the test config.
func WithBrowser(browser string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Submission.Browser = browser
	}
}

// WithBrief enables brief output on the test config.
func WithBrief() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Brief = true
	}
}

// WithLogLevel sets the logging level on the test config.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// WriteConfigFile writes body to a config.toml in a fresh temp directory and
// returns its path.
func WriteConfigFile(t testing.TB, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
	return path
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH for the duration of the test.
func WithStubbedBinaries(t testing.TB, names ...string) string {
	t.Helper()
	binDir := filepath.Join(t.TempDir(), "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	script := []byte("#!/bin/sh\nexit 0\n")
	for _, name := range names {
		target := filepath.Join(binDir, name)
		if err := os.WriteFile(target, script, 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return binDir
}
