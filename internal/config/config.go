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

// Package config loads the settings of the bezsel command from a YAML
// file, with environment variables as read-only overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	bezsel "github.com/GNOME/gimp-sub073"
	"github.com/GNOME/gimp-sub073/edit"
	"github.com/GNOME/gimp-sub073/internal/log"
)

// RenderConfig holds the rasterizer settings.
type RenderConfig struct {
	Subdivisions int  `yaml:"subdivisions"`
	Antialias    bool `yaml:"antialias"`
	Supersample  int  `yaml:"supersample"`
}

// EditConfig holds the editing session settings.
type EditConfig struct {
	HalfWidth float64 `yaml:"halfwidth"` // pick tolerance in screen pixels
}

// LoggingConfig holds the log settings.  The BEZSEL_LOG_* environment
// variables take precedence.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// Config is the complete configuration.
type Config struct {
	ConfigVersion int           `yaml:"config_version"`
	Render        RenderConfig  `yaml:"render"`
	Edit          EditConfig    `yaml:"edit"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		ConfigVersion: 1,
		Render: RenderConfig{
			Subdivisions: bezsel.DefaultSubdivisions,
			Antialias:    true,
			Supersample:  bezsel.DefaultSupersample,
		},
		Edit:    EditConfig{HalfWidth: edit.DefaultHalfWidth},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvSubdivisions = "BEZSEL_SUBDIVISIONS"
	EnvAntialias    = "BEZSEL_ANTIALIAS"
	EnvSupersample  = "BEZSEL_SUPERSAMPLE"
	EnvHalfWidth    = "BEZSEL_HALFWIDTH"
	EnvLogLevel     = log.EnvLevel
	EnvLogFormat    = log.EnvFormat
	EnvLogSource    = log.EnvSource
	EnvLogFile      = log.EnvFile
)

// DefaultPath returns the per-user config file path.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(base, "bezsel", "config.yaml"), nil
}

// Load reads the config file at path on top of the defaults and applies
// environment overrides.  If path is empty, the file at DefaultPath is
// used if it exists.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := decode(bytes.NewReader(data), &cfg); err != nil {
				return cfg, fmt.Errorf("config %s: %w", path, err)
			}
		case explicit || !errors.Is(err, fs.ErrNotExist):
			return cfg, err
		}
	}

	applyEnvOverrides(&cfg)
	normalize(&cfg)
	return cfg, nil
}

// decode reads YAML into cfg.  Keys missing from the input keep their
// current values, unknown keys are an error.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// normalize replaces out-of-range values by their defaults.
func normalize(cfg *Config) {
	def := Defaults()
	if cfg.Render.Subdivisions <= 0 {
		cfg.Render.Subdivisions = def.Render.Subdivisions
	}
	if cfg.Render.Supersample < 1 {
		cfg.Render.Supersample = def.Render.Supersample
	}
	if cfg.Edit.HalfWidth < 0 {
		cfg.Edit.HalfWidth = def.Edit.HalfWidth
	}
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	cfg.Logging.File = strings.TrimSpace(cfg.Logging.File)
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvSubdivisions)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Render.Subdivisions = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvAntialias)); v != "" {
		cfg.Render.Antialias = isTrue(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvSupersample)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Render.Supersample = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvHalfWidth)); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Edit.HalfWidth = x
		}
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = isTrue(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func isTrue(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

// LogOptions returns the logger options for cfg.
func (cfg Config) LogOptions() log.Options {
	return log.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	}
}

// Rasterizer returns a rasterizer for output of the given size, set up
// with the configured parameters.
func (cfg Config) Rasterizer(width, height int) *bezsel.Rasterizer {
	r := bezsel.NewRasterizer(width, height)
	r.Subdivisions = cfg.Render.Subdivisions
	r.Antialias = cfg.Render.Antialias
	r.Supersample = cfg.Render.Supersample
	return r
}
