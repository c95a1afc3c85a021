// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sfcinsert

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Level
		wantErr bool
	}{
		{name: "debug", want: LevelDebug},
		{name: " INFO ", want: LevelInfo},
		{name: "", want: LevelInfo},
		{name: "warning", want: LevelWarn},
		{name: "error", want: LevelError},
		{name: "trace", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err=%v, wantErr %v", tt.name, err, tt.wantErr)
		}

		if got != tt.want {
			t.Fatalf("ParseLevel(%q)=%v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Fatalf("ParseFormat(JSON)=%v, %v", f, err)
	}

	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Fatalf("ParseFormat(text)=%v, %v", f, err)
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("ParseFormat(xml) must fail")
	}
}

func TestNewText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, LevelWarn, FormatText)

	logger.Info("hidden")
	logger.Warn("component not parsed", "path", "src/App.vue")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record must be filtered at warn level: %q", out)
	}

	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "path=src/App.vue") {
		t.Fatalf("unexpected text output: %q", out)
	}
}

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, LevelDebug, FormatJSON)
	logger.Debug("component unchanged", "rule", 2)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Unmarshal(%q): %v", buf.String(), err)
	}

	if record["msg"] != "component unchanged" || record["level"] != "DEBUG" || record["rule"] != float64(2) {
		t.Fatalf("unexpected record: %v", record)
	}

	ts, ok := record["time"].(string)
	if !ok || !strings.Contains(ts, "T") {
		t.Fatalf("time=%v, want RFC3339 string", record["time"])
	}
}
