// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger output, derivation, formats, error logging
//              and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial logger tests
// - 2026-10-19 v0.2.0: Session IDs and deterministic field order

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	loxerror "github.com/msto63/lox/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{Level: level, Format: format, Output: buf})
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered message: %q", out)
	}
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "shown") {
		t.Errorf("output missing warning: %q", out)
	}
}

func TestLoggerDerivationIsImmutable(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelInfo, FormatText)
	child := base.WithField("stage", "scan").WithName("lox")

	base.Info("from base")
	child.Info("from child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if strings.Contains(lines[0], "stage=scan") {
		t.Errorf("base logger picked up child field: %q", lines[0])
	}
	if !strings.Contains(lines[1], "stage=scan") || !strings.Contains(lines[1], "{lox}") {
		t.Errorf("child line = %q", lines[1])
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON).WithSessionID("abc")

	logger.Debug("parsed", Fields{"nodes": 3})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, output %q", err, buf.String())
	}
	if decoded["message"] != "parsed" {
		t.Errorf("message = %v, want parsed", decoded["message"])
	}
	if decoded["session_id"] != "abc" {
		t.Errorf("session_id = %v, want abc", decoded["session_id"])
	}
	if decoded["nodes"] != float64(3) {
		t.Errorf("nodes = %v, want 3", decoded["nodes"])
	}
	if decoded["level"] != "debug" {
		t.Errorf("level = %v, want debug", decoded["level"])
	}
}

func TestLogfmtFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatLogfmt)

	logger.Info("x", Fields{"b": 2, "a": "one"})

	out := buf.String()
	ia := strings.Index(out, `a="one"`)
	ib := strings.Index(out, "b=2")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("fields not sorted in %q", out)
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantField string
	}{
		{
			name:      "syntax error is info",
			err:       loxerror.New("bad").WithCode(loxerror.CodeSyntax),
			wantLevel: "info",
			wantField: "LOX_SYNTAX",
		},
		{
			name:      "config error is error",
			err:       loxerror.New("bad").WithCode(loxerror.CodeConfigError),
			wantLevel: "error",
			wantField: "CONFIG_ERROR",
		},
		{
			name:      "plain error",
			err:       errors.New("plain"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newTestLogger(&buf, LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var decoded map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if decoded["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", decoded["level"], tt.wantLevel)
			}
			if tt.wantField != "" && decoded["error_code"] != tt.wantField {
				t.Errorf("error_code = %v, want %v", decoded["error_code"], tt.wantField)
			}
		})
	}

	var buf bytes.Buffer
	newTestLogger(&buf, LevelTrace, FormatJSON).LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestLogWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelTrace, FormatLogfmt)

	logger.WarnWithErr("reread failed", errors.New("gone"))
	logger.ErrorWithErr("watcher failed", errors.New("closed"))

	out := buf.String()
	for _, want := range []string{"level=warn", `error="gone"`, "level=error", `error="closed"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSetDefault(t *testing.T) {
	previous := GetDefault()
	defer SetDefault(previous)

	var buf bytes.Buffer
	SetDefault(newTestLogger(&buf, LevelDebug, FormatText))
	Debug("through the default logger")

	if !strings.Contains(buf.String(), "through the default logger") {
		t.Errorf("default logger output = %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should have every level disabled")
	}
	logger.Error("nowhere")
}

func TestCallerInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatText).WithCaller()
	logger.Info("here")

	if !strings.Contains(buf.String(), "caller=logger_test.go:") {
		t.Errorf("missing caller in %q", buf.String())
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatText)

	timer := logger.StartTimer("scan").WithField("bytes", 10)
	if !timer.IsRunning() {
		t.Fatal("timer should be running")
	}
	timer.Checkpoint("halfway")
	elapsed := timer.Stop()

	if elapsed < 0 {
		t.Errorf("Stop() = %v, want >= 0", elapsed)
	}
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	out := buf.String()
	for _, want := range []string{"scan checkpoint: halfway", "scan completed", "bytes=10", "operation=scan"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTimerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatText)

	logger.StartTimer("parse").StopWithError(errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "parse failed") || !strings.Contains(out, `error="boom"`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true
	out, err := f.Format(NewEntry(LevelError, "red"))
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(string(out), LevelError.Color()) {
		t.Errorf("Format() = %q, want color prefix", out)
	}

	f.DisableColors = true
	out, _ = f.Format(NewEntry(LevelError, "plain"))
	if got, want := string(out), "[ERR] plain\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
