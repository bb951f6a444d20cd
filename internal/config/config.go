// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config type, loading, saving, env overrides.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config represents the complete modelport configuration.
type Config struct {
	// OutputDir is the destination root for exported models.
	// Empty means the built-in default "./ollama".
	OutputDir string `toml:"output_dir"`

	// OllamaDir overrides the Ollama store root.
	// Empty means "detect from the platform" (see store.Resolve).
	OllamaDir string `toml:"ollama_dir"`

	// NoPicker forces the line-mode numeric prompt even when the
	// full-screen picker would otherwise be available.
	NoPicker bool `toml:"no_picker"`

	// UI holds presentation settings.
	UI UIConfig `toml:"ui"`
}

// UIConfig contains presentation configuration.
type UIConfig struct {
	// Color controls colored output: "auto", "always", "never".
	Color string `toml:"color"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		OutputDir: "",
		OllamaDir: "",
		NoPicker:  false,
		UI: UIConfig{
			Color: "auto",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// Dir returns the modelport configuration directory path.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".modelport"), nil
}

// Path returns the path to the TOML config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults.
// Environment overrides are applied last. A missing config file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with env
// overrides and defaults applied.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	return cfg, nil
}

// SetDefaults fills in defaults for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()
	if c.UI.Color == "" {
		c.UI.Color = defaults.UI.Color
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the configuration to the default TOML file, creating the
// config directory if needed.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, "config.toml")
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# modelport configuration file")
	fmt.Fprintln(file, "# Generated by modelport - edit with care")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - MODELPORT_OUTPUT_DIR: overrides output_dir
//   - MODELPORT_OLLAMA_DIR: overrides ollama_dir
//   - MODELPORT_NO_PICKER: set to "1" or "true" to force the line prompt
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("MODELPORT_OUTPUT_DIR"); dir != "" {
		c.OutputDir = dir
	}
	if dir := os.Getenv("MODELPORT_OLLAMA_DIR"); dir != "" {
		c.OllamaDir = dir
	}
	if v := os.Getenv("MODELPORT_NO_PICKER"); v != "" {
		c.NoPicker = v == "1" || strings.EqualFold(v, "true")
	}
}
