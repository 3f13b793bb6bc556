package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerRendersComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	WithComponent(logger, "pipeline").Info("note captured", Int64("note_id", 7))

	line := buf.String()
	if !strings.Contains(line, "INFO pipeline: note captured") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "note_id=7") {
		t.Fatalf("expected note_id attr in line: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Warn("fallback", String("reason", "no api key"))

	if !strings.Contains(buf.String(), `reason="no api key"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(nil, slog.LevelError) { //nolint:staticcheck
		t.Fatal("expected nop logger to be disabled")
	}
}
