package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestComponentFields(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(&buf, slog.LevelDebug), "tui")

	logger.Debug("tab opened", slog.String("tab", "about"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "tui" || entry["system"] != "folio" || entry["tab"] != "about" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("level filtering failed: %q", out)
	}
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")

	logger, closer, err := Open(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	logger.Info("first")
	closer.Close()

	logger, closer, err = Open(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	logger.Info("second")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(data), "\n") != 2 {
		t.Errorf("expected two log lines, got %q", data)
	}
}

func TestComponentNilLogger(t *testing.T) {
	logger := Component(nil, "x")
	logger.Info("does not panic")
}
