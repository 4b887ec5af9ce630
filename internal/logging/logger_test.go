package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cdidc/internal/config"
	"cdidc/internal/logging"
)

func TestNewFromConfigWritesToStderrOnly(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "info"

	var stderr bytes.Buffer
	logger, _, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("reading disc", logging.String(logging.FieldDevice, "/dev/sr0"))

	out := stderr.String()
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "reading disc") {
		t.Fatalf("expected info line on stderr, got %q", out)
	}
	if !strings.Contains(out, "    - device: /dev/sr0") {
		t.Fatalf("expected device field, got %q", out)
	}
}

func TestDefaultLevelSuppressesInfo(t *testing.T) {
	cfg := config.Default()

	var stderr bytes.Buffer
	logger, _, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("quiet")
	logger.Debug("quieter")
	if stderr.Len() != 0 {
		t.Fatalf("expected no output at warn level, got %q", stderr.String())
	}
	logger.Warn("loud")
	if !strings.Contains(stderr.String(), "WARN") {
		t.Fatalf("expected warning output, got %q", stderr.String())
	}
}

func TestNewFromConfigCopiesToLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.File = filepath.Join(t.TempDir(), "nested", "cdidc.log")

	var stderr bytes.Buffer
	logger, closeLog, err := logging.NewFromConfig(&cfg, &stderr)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("track layout", logging.Int("first_track", 1))
	if err := closeLog(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	logger.Debug("after close")

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "track layout") {
		t.Fatalf("expected log file copy, got %q", content)
	}
	if strings.Contains(string(content), "after close") {
		t.Fatalf("log file must not be written after close, got %q", content)
	}
	if !strings.Contains(stderr.String(), "track layout") {
		t.Fatalf("expected stderr copy, got %q", stderr.String())
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var stderr bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "info", Stderr: &stderr})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")
	if strings.Contains(stderr.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", stderr.String())
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var stderr bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "debug", Stderr: &stderr})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")
	if !strings.Contains(stderr.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", stderr.String())
	}
}

func TestComponentLoggerRendersBracketedComponent(t *testing.T) {
	var stderr bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "info", Stderr: &stderr})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "identify").Info("disc read", logging.Error(errors.New("boom")))

	out := stderr.String()
	if !strings.Contains(out, "[identify]") {
		t.Fatalf("expected component label, got %q", out)
	}
	if strings.Contains(out, "- component:") {
		t.Fatalf("component should not be repeated as a field, got %q", out)
	}
	if !strings.Contains(out, "- error: boom") {
		t.Fatalf("expected error field, got %q", out)
	}
}

func TestJSONLoggerUsesShortKeys(t *testing.T) {
	var stderr bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "json", Level: "info", Stderr: &stderr})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("json line", logging.String(logging.FieldDevice, "/dev/sr0"))

	var payload map[string]any
	if err := json.Unmarshal(stderr.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, stderr.String())
	}
	if payload["msg"] != "json line" || payload["level"] != "info" || payload["device"] != "/dev/sr0" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", payload)
	}
}

func TestNewRejectsUnknownFormatAndStdout(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if _, _, err := logging.New(logging.Options{OutputPaths: []string{"stdout"}}); err == nil {
		t.Fatal("expected error for stdout output")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var stderr bytes.Buffer
	logger, _, err := logging.New(logging.Options{Level: "warn", Stderr: &stderr})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WarnWithContext(logger, "drive not ready", "drive_wait_failed",
		logging.String(logging.FieldImpact, "reading anyway"),
	)

	out := stderr.String()
	for _, want := range []string{"- event_type: drive_wait_failed", "- error_hint:", "- impact: \"reading anyway\""} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(t.Context(), 12) {
		t.Fatal("nop logger should never be enabled")
	}
	logging.NewComponentLogger(nil, "x").Error("ignored")
}

func TestCloseWithoutFilesIsNoop(t *testing.T) {
	var stderr bytes.Buffer
	_, closeLog, err := logging.New(logging.Options{Stderr: &stderr})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("close without files: %v", err)
	}
}

func TestNewRejectsFormatBeforeOpeningFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdidc.log")
	if _, _, err := logging.New(logging.Options{Format: "xml", OutputPaths: []string{path}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("log file must not be created for a rejected format, stat err %v", err)
	}
}
