// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/livecode/discover"
)

// Config is the root configuration structure.
type Config struct {
	// Language selects the discovery grammar and the highlighting lexer.
	// Empty means detect from the file extension.
	Language   string          `toml:"language"`
	Discoverer string          `toml:"discoverer"`
	UI         UIConfig        `toml:"ui"`
	Editables  EditablesConfig `toml:"editables"`
	Log        LogConfig       `toml:"log"`
}

// UIConfig holds terminal rendering settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma style name. Defaults to "vulcan".
	SyntaxTheme     string `toml:"syntax_theme"`
	ShowLineNumbers bool   `toml:"show_line_numbers"`
	TabWidth        int    `toml:"tab_width"`
}

// EditablesConfig controls live numbers.
type EditablesConfig struct {
	Enabled bool `toml:"enabled"`
}

// LogConfig holds logging settings. Logs never go to stdout, which belongs
// to the terminal UI; an empty File disables logging.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Discoverer: discover.KindTreeSitter,
		UI: UIConfig{
			SyntaxTheme:     "vulcan",
			ShowLineNumbers: true,
			TabWidth:        4,
		},
		Editables: EditablesConfig{Enabled: true},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads configuration from a TOML file over the defaults and applies
// environment variable overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	switch c.Discoverer {
	case discover.KindTreeSitter, discover.KindChroma:
	default:
		errs = append(errs, fmt.Errorf("discoverer=%q must be %q or %q", c.Discoverer, discover.KindTreeSitter, discover.KindChroma))
	}

	if c.UI.TabWidth < 1 || c.UI.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("ui.tab_width=%d must be between 1 and 16", c.UI.TabWidth))
	}

	if c.UI.SyntaxTheme == "" {
		errs = append(errs, errors.New("ui.syntax_theme must not be empty"))
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level=%q is invalid: %v", c.Log.Level, err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// LogLevel returns the parsed log level. Validate has already checked it.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// LanguageFor returns the configured language, or detects it from path.
func (c *Config) LanguageFor(path string) string {
	if c.Language != "" {
		return c.Language
	}
	return discover.DetectLanguage(path)
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	var errs []error
	for _, setter := range []struct {
		env   string
		apply func(string) error
	}{
		{"LIVECODE_LANGUAGE", func(v string) error {
			cfg.Language = v
			return nil
		}},
		{"LIVECODE_DISCOVERER", func(v string) error {
			cfg.Discoverer = strings.ToLower(v)
			return nil
		}},
		{"LIVECODE_SYNTAX_THEME", func(v string) error {
			cfg.UI.SyntaxTheme = v
			return nil
		}},
		{"LIVECODE_TAB_WIDTH", func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("LIVECODE_TAB_WIDTH=%q: %w", v, err)
			}
			cfg.UI.TabWidth = n
			return nil
		}},
		{"LIVECODE_EDITABLES", func(v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("LIVECODE_EDITABLES=%q: %w", v, err)
			}
			cfg.Editables.Enabled = b
			return nil
		}},
		{"LIVECODE_LOG_FILE", func(v string) error {
			cfg.Log.File = v
			return nil
		}},
		{"LIVECODE_LOG_LEVEL", func(v string) error {
			cfg.Log.Level = v
			return nil
		}},
	} {
		v, ok := os.LookupEnv(setter.env)
		if !ok || v == "" {
			continue
		}
		if err := setter.apply(v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
