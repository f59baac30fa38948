// Copyright 2025 The md5check Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newBufferLogger(level LogLevel, format LogFormat) (*DefaultLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLoggerWithOptions(LoggerOptions{
		Level:  level,
		Format: format,
		Output: &buf,
	})
	return l, &buf
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(LevelWarn, FormatText)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Fatalf("levels below warn leaked through: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Fatalf("warn and error should pass at warn level: %q", out)
	}
}

func TestSilentLevel(t *testing.T) {
	l, buf := newBufferLogger(LevelSilent, FormatText)

	l.Error("should not appear")

	if buf.Len() != 0 {
		t.Fatalf("silent logger wrote output: %q", buf.String())
	}
}

func TestTextFormatterFields(t *testing.T) {
	l, buf := newBufferLogger(LevelInfo, FormatText)

	l.WithField("file", "a.txt").Warnln("checksum mismatch")

	out := buf.String()
	if !strings.Contains(out, "checksum mismatch") {
		t.Fatalf("message missing from output: %q", out)
	}
	if !strings.Contains(out, "file=a.txt") {
		t.Fatalf("field missing from output: %q", out)
	}
}

func TestTextFormatterShowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithOptions(LoggerOptions{
		Level:     LevelInfo,
		Output:    &buf,
		Formatter: &TextFormatter{ShowLevel: true},
	})

	l.Info("hello")

	if !strings.Contains(buf.String(), "[INFO]") {
		t.Fatalf("level prefix missing: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	l, buf := newBufferLogger(LevelInfo, FormatJSON)

	l.WithFields(map[string]interface{}{
		"correct":   3,
		"incorrect": 1,
	}).Infoln("verification finished")

	var entry struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v: %q", err, buf.String())
	}

	if entry.Level != "info" || entry.Message != "verification finished" {
		t.Fatalf("entry = %+v, want info/verification finished", entry)
	}
	if entry.Fields["correct"] != float64(3) {
		t.Fatalf("fields = %v, want correct=3", entry.Fields)
	}
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatText)

	_ = parent.WithField("child", "only")
	parent.Infoln("from parent")

	if strings.Contains(buf.String(), "child=only") {
		t.Fatalf("child field leaked into parent logger: %q", buf.String())
	}
}

func TestFormatArgs(t *testing.T) {
	l, buf := newBufferLogger(LevelInfo, FormatText)

	l.Info("checked %d files in %s", 42, "1.5s")

	if !strings.Contains(buf.String(), "checked 42 files in 1.5s") {
		t.Fatalf("printf formatting broken: %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"off", LevelSilent},
		{"bogus", LevelInfo},
	}

	for _, tc := range tests {
		if got := ParseLogLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseLogFormat(t *testing.T) {
	if got := ParseLogFormat("json"); got != FormatJSON {
		t.Fatalf("ParseLogFormat(json) = %v, want FormatJSON", got)
	}
	if got := ParseLogFormat("anything-else"); got != FormatText {
		t.Fatalf("ParseLogFormat fallback = %v, want FormatText", got)
	}
}

func TestEnsureLogger(t *testing.T) {
	if EnsureLogger(nil) == nil {
		t.Fatalf("EnsureLogger(nil) returned nil")
	}

	l := NewLogger(false)
	if EnsureLogger(l) != Logger(l) {
		t.Fatalf("EnsureLogger should return the given logger unchanged")
	}
}
