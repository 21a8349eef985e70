/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields should be preserved when possible (yaml handles this by ignoring extras on unmarshal).

type GeneralConfig struct {
	Theme string `yaml:"theme"` // "system" | "light" | "dark" (informational for now)
}

// EditorConfig carries the interaction tolerances consumed by the pen and edit
// tools. All distances are in canvas units.
type EditorConfig struct {
	DragThreshold       float64 `yaml:"drag_threshold"`        // pointer travel before a press becomes a handle drag
	CloseThreshold      float64 `yaml:"close_threshold"`       // distance to the first anchor that closes a path
	HoverDistance       float64 `yaml:"hover_distance"`        // max distance for segment hover detection
	HandleHitRadius     float64 `yaml:"handle_hit_radius"`     // pick radius for handle knobs
	AnchorHitRadius     float64 `yaml:"anchor_hit_radius"`     // pick radius for anchor points
	DefaultHandleLength float64 `yaml:"default_handle_length"` // basis for synthesized handles
	SampleSteps         int     `yaml:"sample_steps"`          // uniform parameter steps per segment for hover sampling
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Editor        EditorConfig  `yaml:"editor"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{Theme: "system"},
		Editor: EditorConfig{
			DragThreshold:       5,
			CloseThreshold:      10,
			HoverDistance:       5,
			HandleHitRadius:     10,
			AnchorHitRadius:     10,
			DefaultHandleLength: 50,
			SampleSteps:         50,
		},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvTheme = "PENKIT_THEME"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "PENKIT_LOG_LEVEL"
	EnvLogFormat = "PENKIT_LOG_FORMAT"
	EnvLogSource = "PENKIT_LOG_SOURCE"
	EnvLogFile   = "PENKIT_LOG_FILE"
	// Editor envs
	EnvDragThreshold  = "PENKIT_DRAG_THRESHOLD"
	EnvCloseThreshold = "PENKIT_CLOSE_THRESHOLD"
	EnvHoverDistance  = "PENKIT_HOVER_DISTANCE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "Penkit")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "Penkit")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "penkit")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.General.Theme != "" {
		dst.General.Theme = src.General.Theme
	}
	// editor tolerances: zero means "use default"
	if src.Editor.DragThreshold > 0 {
		dst.Editor.DragThreshold = src.Editor.DragThreshold
	}
	if src.Editor.CloseThreshold > 0 {
		dst.Editor.CloseThreshold = src.Editor.CloseThreshold
	}
	if src.Editor.HoverDistance > 0 {
		dst.Editor.HoverDistance = src.Editor.HoverDistance
	}
	if src.Editor.HandleHitRadius > 0 {
		dst.Editor.HandleHitRadius = src.Editor.HandleHitRadius
	}
	if src.Editor.AnchorHitRadius > 0 {
		dst.Editor.AnchorHitRadius = src.Editor.AnchorHitRadius
	}
	if src.Editor.DefaultHandleLength > 0 {
		dst.Editor.DefaultHandleLength = src.Editor.DefaultHandleLength
	}
	if src.Editor.SampleSteps > 0 {
		dst.Editor.SampleSteps = src.Editor.SampleSteps
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.General.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDragThreshold)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Editor.DragThreshold = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCloseThreshold)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Editor.CloseThreshold = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvHoverDistance)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Editor.HoverDistance = f
		}
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	switch key {
	case "general.theme":
		if os.Getenv(EnvTheme) != "" {
			return EnvTheme, true
		}
	case "editor.drag_threshold":
		if os.Getenv(EnvDragThreshold) != "" {
			return EnvDragThreshold, true
		}
	case "editor.close_threshold":
		if os.Getenv(EnvCloseThreshold) != "" {
			return EnvCloseThreshold, true
		}
	case "editor.hover_distance":
		if os.Getenv(EnvHoverDistance) != "" {
			return EnvHoverDistance, true
		}
	case "logging.level":
		if os.Getenv(EnvLogLevel) != "" {
			return EnvLogLevel, true
		}
	case "logging.format":
		if os.Getenv(EnvLogFormat) != "" {
			return EnvLogFormat, true
		}
	case "logging.source":
		if os.Getenv(EnvLogSource) != "" {
			return EnvLogSource, true
		}
	case "logging.file":
		if os.Getenv(EnvLogFile) != "" {
			return EnvLogFile, true
		}
	}
	return "", false
}
