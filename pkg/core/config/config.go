// ============================================================================
// lox - Lox expression front end
// ============================================================================
//
// Package:     config
// Description: Typed command line configuration on top of foundation config
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	loxconfig "github.com/msto63/lox/foundation/core/config"
	loxlog "github.com/msto63/lox/foundation/core/log"
	"github.com/msto63/lox/foundation/lox"
	loxstringx "github.com/msto63/lox/foundation/utils/stringx"
)

// EnvPrefix prefixes every environment override, e.g. LOX_OUTPUT_FORMAT
const EnvPrefix = "LOX"

// ErrNoConfig is returned by LoadFromEnv when no config file was found
var ErrNoConfig = errors.New("no config file found, set LOX_CONFIG or create lox.toml")

// Output formats accepted by Output.Format
var OutputFormats = []string{"sexpr", "tree", "json", "yaml"}

// Config holds the complete command line configuration
type Config struct {
	General GeneralConfig
	Lox     LoxConfig
	Output  OutputConfig
	Watch   WatchConfig

	source *loxconfig.Config
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string
	LogLevel  string
	LogFormat string
	LogFile   string
}

// LoxConfig holds front end settings
type LoxConfig struct {
	TrimStrings     bool
	MaxSourceLength int
	MaxDepth        int
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string
	Color  bool
}

// WatchConfig holds file watching settings
type WatchConfig struct {
	Debounce time.Duration
}

// defaults in dot notation, applied to missing keys
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"general.name":          "lox",
		"general.log_level":     "warn",
		"general.log_format":    "text",
		"general.log_file":      "",
		"lox.trim_strings":      false,
		"lox.max_source_length": lox.DefaultMaxSourceLength,
		"lox.max_depth":         256,
		"output.format":         "sexpr",
		"output.color":          true,
		"watch.debounce":        "200ms",
	}
}

// Default returns the configuration used when no file is present.
// Environment overrides still apply.
func Default() *Config {
	return fromSource(loxconfig.NewFromMap(defaults(), EnvPrefix))
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	source, err := loxconfig.LoadWithOptions(path, loxconfig.LoadOptions{
		Format:    loxconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  defaults(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg := fromSource(source)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from the LOX_CONFIG environment variable
// or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("LOX_CONFIG")
	if path == "" {
		// Try default locations
		home := loxstringx.FirstNonBlank(os.Getenv("HOME"), os.Getenv("USERPROFILE"))
		defaultPaths := []string{
			"./lox.toml",
			"./lox.yaml",
		}
		if home != "" {
			defaultPaths = append(defaultPaths, filepath.Join(home, ".config/lox/config.toml"))
		}

		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, ErrNoConfig
	}

	return Load(path)
}

func fromSource(source *loxconfig.Config) *Config {
	opts := lox.OptionsFromConfig(source)

	return &Config{
		General: GeneralConfig{
			Name:      source.GetString("general.name", "lox"),
			LogLevel:  source.GetString("general.log_level", "warn"),
			LogFormat: source.GetString("general.log_format", "text"),
			LogFile:   os.ExpandEnv(source.GetString("general.log_file")),
		},
		Lox: LoxConfig{
			TrimStrings:     opts.TrimStrings,
			MaxSourceLength: opts.MaxSourceLength,
			MaxDepth:        opts.MaxDepth,
		},
		Output: OutputConfig{
			Format: source.GetString("output.format", "sexpr"),
			Color:  source.GetBool("output.color", true),
		},
		Watch: WatchConfig{
			Debounce: source.GetDuration("watch.debounce", loxconfig.ReloadDebounce),
		},
		source: source,
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if _, err := loxlog.ParseLevel(c.General.LogLevel); err != nil {
		return fmt.Errorf("invalid general.log_level: %w", err)
	}
	if _, err := loxlog.ParseFormat(c.General.LogFormat); err != nil {
		return fmt.Errorf("invalid general.log_format: %w", err)
	}
	if !IsOutputFormat(c.Output.Format) {
		return fmt.Errorf("invalid output.format %q, expected one of %v", c.Output.Format, OutputFormats)
	}
	if c.Lox.MaxSourceLength <= 0 {
		return fmt.Errorf("lox.max_source_length must be positive, got %d", c.Lox.MaxSourceLength)
	}
	if c.Lox.MaxDepth <= 0 {
		return fmt.Errorf("lox.max_depth must be positive, got %d", c.Lox.MaxDepth)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// IsOutputFormat reports whether format is a known output format
func IsOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// EngineOptions returns engine options for the lox section. The logger
// is left to the caller.
func (c *Config) EngineOptions() lox.Options {
	return lox.Options{
		TrimStrings:     c.Lox.TrimStrings,
		MaxSourceLength: c.Lox.MaxSourceLength,
		MaxDepth:        c.Lox.MaxDepth,
	}
}

// Source returns the underlying key/value configuration
func (c *Config) Source() *loxconfig.Config {
	return c.source
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	if c.source == nil {
		return ""
	}
	return c.source.FilePath()
}
