// Package config resolves runtime settings from defaults, TOML files,
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const (
	DefaultFile     = "todo.json"
	DefaultTheme    = "classic"
	DefaultLogLevel = "warn"

	// ProjectFileName is looked up in the working directory.
	ProjectFileName = ".todo.toml"
)

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// Config holds the resolved settings.
type Config struct {
	File     string `toml:"file"`
	Theme    string `toml:"theme"`
	LogLevel string `toml:"log_level"`
	NoClear  bool   `toml:"no_clear"`
}

// Overrides carries values from the command line. Nil fields were not set.
type Overrides struct {
	// ConfigFile replaces the project config lookup when set.
	ConfigFile string
	// WorkDir is where the project config is searched; "." when empty.
	WorkDir string

	File     *string
	Theme    *string
	LogLevel *string
	NoClear  *bool
}

// Load resolves configuration in priority order:
// 1. Defaults
// 2. User config file (<user config dir>/todo/config.toml)
// 3. Project config file (.todo.toml in the working directory, or --config)
// 4. Environment variables
// 5. Flags
func Load(o Overrides) (*Config, error) {
	cfg := Defaults()

	if p := findUserConfigFile(); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", p, err)
		}
	}

	if o.ConfigFile != "" {
		if err := loadConfigFile(cfg, o.ConfigFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", o.ConfigFile, err)
		}
	} else if p := findProjectConfigFile(o.WorkDir); p != "" {
		if err := loadConfigFile(cfg, p); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", p, err)
		}
	}

	loadFromEnv(cfg)
	applyOverrides(cfg, o)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		File:     DefaultFile,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return errors.New("file: empty path")
	}
	if !validTheme(c.Theme) {
		return fmt.Errorf("theme: unknown theme %q (want one of %s)", c.Theme, strings.Join(Themes, ", "))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_NO_CLEAR"); v != "" {
		cfg.NoClear = boolFromString(v)
	}
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.File != nil {
		cfg.File = *o.File
	}
	if o.Theme != nil {
		cfg.Theme = *o.Theme
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
	if o.NoClear != nil {
		cfg.NoClear = *o.NoClear
	}
}

func findUserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "todo", "config.toml")
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

func findProjectConfigFile(workDir string) string {
	if workDir == "" {
		workDir = "."
	}
	p := filepath.Join(workDir, ProjectFileName)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}

func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
