package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.WarnLevel},
		{"bogus", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error", "off"} {
		if !ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = false, want true", lvl)
		}
	}
	if ValidLevel("verbose") {
		t.Error("ValidLevel(verbose) = true, want false")
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, "info")

	logger.Debug().Msg("hidden")
	logger.Info().Str("component", "wallet").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "shown" {
		t.Errorf("message = %v, want shown", entry["message"])
	}
	if entry["component"] != "wallet" {
		t.Errorf("component = %v, want wallet", entry["component"])
	}
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed-converter.log")
	if err := Init("debug", true, path); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	t.Cleanup(func() {
		Close()
		Logger = NewConsoleLogger(os.Stderr, "warn")
		initComponentLoggers()
	})

	Wallet.Debug().Msg("to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"component":"wallet"`) {
		t.Errorf("log file missing component field: %s", data)
	}
}

func TestInit_ClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() {
		Close()
		Logger = NewConsoleLogger(os.Stderr, "warn")
		initComponentLoggers()
	})

	if err := Init("info", true, filepath.Join(dir, "first.log")); err != nil {
		t.Fatalf("Init(first) error: %v", err)
	}
	first := logFile

	if err := Init("info", true, filepath.Join(dir, "second.log")); err != nil {
		t.Fatalf("Init(second) error: %v", err)
	}
	if logFile == first {
		t.Fatal("second Init should open a new file")
	}
	if _, err := first.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("write to first file error = %v, want os.ErrClosed", err)
	}

	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if logFile != nil {
		t.Error("Close() should forget the file")
	}
	if err := Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}

func TestInit_NoFileClosesPrevious(t *testing.T) {
	t.Cleanup(func() {
		Logger = NewConsoleLogger(os.Stderr, "warn")
		initComponentLoggers()
	})

	if err := Init("info", true, filepath.Join(t.TempDir(), "x.log")); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	f := logFile

	if err := Init("warn", false, ""); err != nil {
		t.Fatalf("Init(no file) error: %v", err)
	}
	if logFile != nil {
		t.Error("Init without a file should leave no file open")
	}
	if _, err := f.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("write to old file error = %v, want os.ErrClosed", err)
	}
}
