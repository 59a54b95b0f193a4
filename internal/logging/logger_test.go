package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("scan complete", Args(Int("missing", 3), String(FieldRunID, "abc"))...)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "scan complete" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["missing"] != float64(3) {
		t.Fatalf("unexpected missing attr: %v", entry["missing"])
	}
	if entry[FieldRunID] != "abc" {
		t.Fatalf("unexpected run_id attr: %v", entry[FieldRunID])
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Warn("sidecar skipped", Args(String(FieldPath, "Assets/Foo.cs.meta"), Error(errors.New("permission denied")))...)

	line := buf.String()
	if !strings.Contains(line, "WRN sidecar skipped") {
		t.Fatalf("missing level/message: %q", line)
	}
	if !strings.Contains(line, "path=Assets/Foo.cs.meta") {
		t.Fatalf("missing path attr: %q", line)
	}
	if !strings.Contains(line, `error="permission denied"`) {
		t.Fatalf("missing quoted error attr: %q", line)
	}
}

func TestConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("also hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestComponentLoggerNilBase(t *testing.T) {
	logger := NewComponentLogger(nil, "collector")
	// Must not panic and must swallow output.
	logger.Info("noop")
}
