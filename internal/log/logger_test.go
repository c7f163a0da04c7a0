// bezsel - a Bézier curve selection engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package log

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleLine(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Level: "debug", Console: buf})
	t.Cleanup(func() { _ = Close() })

	l := WithOperation(WithComponent("raster"), "fill")
	l.Debug("row done", "y", 3, "ok", true, "t", 0.25)

	line := strings.TrimSpace(buf.String())
	for _, want := range []string{
		" DBG row done",
		"app=bezsel",
		"component=raster",
		"op=fill",
		"y=3",
		"ok=true",
		"t=0.25",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q lacks %q", line, want)
		}
	}
}

func TestLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Level: "warn", Console: buf})
	t.Cleanup(func() { _ = Close() })

	L().Info("hidden")
	L().Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "WRN shown") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestGroups(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Level: "info", Console: buf})
	t.Cleanup(func() { _ = Close() })

	L().WithGroup("mask").Info("done", "w", 10)
	if !strings.Contains(buf.String(), "mask.w=10") {
		t.Errorf("group prefix missing in %q", buf.String())
	}
}

// TestFileLogging verifies that the rotating file receives JSON records
// with the static and contextual attributes.
func TestFileLogging(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "bezsel.log")
	console := &bytes.Buffer{}
	Init(Options{Level: "debug", Format: "json", File: fpath, Console: console})

	WithComponent("cli").Info("hello", slog.String("k", "v"))
	if err := Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(b))
	var last string
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			last = s
		}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(last), &m); err != nil {
		t.Fatalf("unmarshal json log: %v", err)
	}
	if m["app"] != "bezsel" || m["component"] != "cli" || m["k"] != "v" || m["msg"] != "hello" {
		t.Errorf("unexpected record %v", m)
	}

	// the console handler saw the same record
	if !strings.Contains(console.String(), `"msg":"hello"`) {
		t.Errorf("console output %q", console.String())
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvSource, "TRUE")
	t.Setenv(EnvFile, "/tmp/x.log")

	got := FromEnv()
	want := Options{Level: "debug", Format: "json", AddSource: true, File: "/tmp/x.log"}
	if got != want {
		t.Errorf("FromEnv() = %+v, want %+v", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
