package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mindspace/internal/platform/logging"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger, err := logging.New(buf, "warn")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "key", "roadmap")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "roadmap") {
		t.Fatalf("expected warn line with key, got %s", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	if _, err := logging.New(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatalf("unknown level must fail")
	}
}

func TestOpenCreatesLogFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "mindspace.log")
	logger, closer, err := logging.Open(path, "debug")
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	logger.Debug("tick")
	if err := closer.Close(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "tick") {
		t.Fatalf("expected debug line in log file, got %q", string(b))
	}
}
