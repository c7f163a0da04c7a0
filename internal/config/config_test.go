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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPartialFile(t *testing.T) {
	path := writeFile(t, "render:\n  subdivisions: 64\nlogging:\n  level: DEBUG\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Render.Subdivisions != 64 {
		t.Errorf("Subdivisions = %d, want 64", cfg.Render.Subdivisions)
	}
	// keys missing from the file keep their defaults
	if !cfg.Render.Antialias || cfg.Render.Supersample != 3 || cfg.Edit.HalfWidth != 4 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeFile(t, "render:\n  subdivision: 64\n")
	if _, err := Load(path); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing config file accepted")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Defaults() {
		t.Errorf("empty file gives %+v", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvSubdivisions, "32")
	t.Setenv(EnvAntialias, "off")
	t.Setenv(EnvSupersample, "0")
	t.Setenv(EnvHalfWidth, "2.5")
	t.Setenv(EnvLogFormat, "JSON")

	cfg, err := Load(writeFile(t, "render:\n  subdivisions: 64\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Render.Subdivisions != 32 {
		t.Errorf("Subdivisions = %d, want 32", cfg.Render.Subdivisions)
	}
	if cfg.Render.Antialias {
		t.Error("Antialias not switched off")
	}
	if cfg.Render.Supersample != 3 {
		t.Errorf("Supersample = %d, want the default 3", cfg.Render.Supersample)
	}
	if cfg.Edit.HalfWidth != 2.5 {
		t.Errorf("HalfWidth = %g", cfg.Edit.HalfWidth)
	}
	if opts := cfg.LogOptions(); opts.Format != "json" {
		t.Errorf("log format %q", opts.Format)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Defaults()
	cfg.Render.Subdivisions = 200
	cfg.Logging.File = "/var/log/bezsel.log"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}

func TestRasterizer(t *testing.T) {
	cfg := Defaults()
	cfg.Render.Subdivisions = 50
	cfg.Render.Antialias = false
	r := cfg.Rasterizer(8, 6)
	if r.Width != 8 || r.Height != 6 || r.Subdivisions != 50 || r.Antialias {
		t.Errorf("unexpected rasterizer %+v", r)
	}
}
