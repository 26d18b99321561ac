package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bral/lsnote/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(false, &buf)
	logger.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("Debug output should be suppressed without debug, got: %s", buf.String())
	}

	logger.Info().Str("path", "/tmp").Msg("listed")
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Log output is not JSON: %v (%s)", err, buf.String())
	}
	if entry["level"] != "info" || entry["message"] != "listed" || entry["path"] != "/tmp" {
		t.Errorf("Unexpected log entry: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Errorf("Log entry has no timestamp: %v", entry)
	}

	buf.Reset()
	debugLogger := NewLogger(true, &buf)
	debugLogger.Debug().Msg("visible")
	if !strings.Contains(buf.String(), `"level":"debug"`) {
		t.Errorf("Debug logger should emit debug entries, got: %s", buf.String())
	}
}

func TestNewWritesRotatingFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "lsnote.log")
	cfg := config.LogConfig{File: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}

	logger, closer := New(false, cfg)
	logger.Info().Msg("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Log file not written: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("Log file missing entry, got: %s", data)
	}
}

func TestNewWithoutFileIsQuiet(t *testing.T) {
	logger, closer := New(false, config.LogConfig{})
	logger.Info().Msg("discarded")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() on a no-op closer returned %v", err)
	}
}
