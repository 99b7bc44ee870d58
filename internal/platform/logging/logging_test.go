package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"aperture/internal/platform/logging"
)

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "aperture.log")
	logger, closeFn, err := logging.New(path, "info")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("exam completed", zap.String("subject", "camera"))
	if err := closeFn(); err != nil {
		t.Fatalf("close logger: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(raw)
	if !strings.Contains(content, "exam completed") || !strings.Contains(content, "camera") {
		t.Fatalf("log line missing: %q", content)
	}
	if strings.Contains(content, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %q", content)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	if _, _, err := logging.New(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatalf("expected unknown level to fail")
	}
}

func TestOrNop(t *testing.T) {
	t.Parallel()
	if logging.OrNop(nil) == nil {
		t.Fatalf("expected a logger for nil input")
	}
}
