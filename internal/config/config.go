// Package config loads constream settings from YAML files and the
// environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/constream/internal/errors"
	"github.com/Aman-CERP/constream/internal/severity"
)

// Color modes accepted in configuration.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Sinks accepted in configuration.
const (
	SinkStdout = "stdout"
	SinkStderr = "stderr"
)

// Project configuration file names, in order of preference.
var projectFiles = []string{".constream.yaml", ".constream.yml"}

// Config represents the complete constream configuration.
type Config struct {
	Version int `yaml:"version" json:"version"`

	// Level is the initial severity threshold. Names (off, raw, error,
	// info, debug) or any integer are accepted.
	Level severity.Level `yaml:"level" json:"level"`

	// Color is auto, always or never.
	Color string `yaml:"color" json:"color"`

	// Sink is stdout or stderr.
	Sink string `yaml:"sink" json:"sink"`
}

// fileConfig distinguishes "absent" from zero values, since level 0 is valid.
type fileConfig struct {
	Version *int            `yaml:"version"`
	Level   *severity.Level `yaml:"level"`
	Color   *string         `yaml:"color"`
	Sink    *string         `yaml:"sink"`
}

// NewConfig creates a new Config with defaults: everything shown, color
// when attached to a terminal, output on stdout.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Level:   severity.DefaultThreshold,
		Color:   ColorAuto,
		Sink:    SinkStdout,
	}
}

// GetUserConfigPath returns the path to the user configuration file:
//   - $XDG_CONFIG_HOME/constream/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/constream/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "constream", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "constream", "config.yaml")
	}
	return filepath.Join(home, ".config", "constream", "config.yaml")
}

// Load loads configuration for the given directory.
// It applies configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User config (~/.config/constream/config.yaml)
//  3. Project config (.constream.yaml in dir)
//  4. Environment variables (CONSTREAM_*, NO_COLOR)
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	userPath := GetUserConfigPath()
	if fileExists(userPath) {
		if err := cfg.loadYAML(userPath); err != nil {
			return nil, err
		}
	}

	for _, name := range projectFiles {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			if err := cfg.loadYAML(path); err != nil {
				return nil, err
			}
			break
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads a single explicit file on top of the defaults and the
// environment. The file must exist.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()

	if !fileExists(path) {
		return nil, errors.New(errors.ErrCodeConfigNotFound,
			fmt.Sprintf("config file %s not found", path), nil)
	}
	if err := cfg.loadYAML(path); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadYAML merges the values present in the file at path into c.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		code := errors.ErrCodeConfigNotFound
		if os.IsPermission(err) {
			code = errors.ErrCodeConfigPermission
		}
		return errors.New(code, fmt.Sprintf("failed to read config file %s", path), err)
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to parse config file %s", path), err).
			WithDetail("path", path)
	}

	c.mergeWith(&parsed)
	slog.Debug("config file loaded", slog.String("path", path))
	return nil
}

// mergeWith copies the fields present in other into c.
func (c *Config) mergeWith(other *fileConfig) {
	if other.Version != nil {
		c.Version = *other.Version
	}
	if other.Level != nil {
		c.Level = *other.Level
	}
	if other.Color != nil {
		c.Color = strings.ToLower(*other.Color)
	}
	if other.Sink != nil {
		c.Sink = strings.ToLower(*other.Sink)
	}
}

// applyEnvOverrides applies CONSTREAM_* and NO_COLOR overrides.
// Invalid values are ignored with a warning.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CONSTREAM_LEVEL"); v != "" {
		if level, err := severity.ParseLevel(v); err == nil {
			c.Level = level
		} else {
			slog.Warn("ignoring CONSTREAM_LEVEL", slog.String("value", v), slog.String("error", err.Error()))
		}
	}
	if v := os.Getenv("CONSTREAM_COLOR"); v != "" {
		c.Color = strings.ToLower(v)
	}
	if v := os.Getenv("CONSTREAM_SINK"); v != "" {
		c.Sink = strings.ToLower(v)
	}
	// https://no-color.org: any presence disables color.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Color = ColorNever
	}
}

// Validate validates the configuration and returns an error if invalid.
// Any integer level is valid.
func (c *Config) Validate() error {
	validColors := map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true}
	if !validColors[c.Color] {
		return errors.ConfigError(
			fmt.Sprintf("color must be 'auto', 'always' or 'never', got %s", c.Color), nil)
	}

	validSinks := map[string]bool{SinkStdout: true, SinkStderr: true}
	if !validSinks[c.Sink] {
		return errors.ConfigError(
			fmt.Sprintf("sink must be 'stdout' or 'stderr', got %s", c.Sink), nil)
	}

	return nil
}

// SinkWriter returns the writer named by Sink.
func (c *Config) SinkWriter() io.Writer {
	return c.SinkWriterFor(os.Stdout, os.Stderr)
}

// SinkWriterFor picks stdout or stderr as named by Sink.
func (c *Config) SinkWriterFor(stdout, stderr io.Writer) io.Writer {
	if c.Sink == SinkStderr {
		return stderr
	}
	return stdout
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.InternalError("failed to marshal config", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(errors.ErrCodeConfigPermission,
			fmt.Sprintf("failed to write config file %s", path), err)
	}

	return nil
}

// String renders the effective settings on one line.
func (c *Config) String() string {
	return "level=" + c.Level.String() + " (" + strconv.Itoa(int(c.Level)) + ") color=" + c.Color + " sink=" + c.Sink
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
