// Package config loads and validates contentview settings.
//
// Settings resolve in order: built-in defaults, the global YAML file, a
// project-local .contentview/config.yaml overlay, environment variables and
// finally command-line flags, which the CLI applies on top.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/rshade/contentview/internal/listview"
)

// Environment variables read by ApplyEnv and ResolvePath.
const (
	EnvConfig   = "CONTENTVIEW_CONFIG"
	EnvLogLevel = "CONTENTVIEW_LOG_LEVEL"
	EnvLogFmt   = "CONTENTVIEW_LOG_FORMAT"
	EnvSeed     = "CONTENTVIEW_SEED"
	EnvPageSize = "CONTENTVIEW_PAGE_SIZE"
)

// Defaults.
const (
	DefaultDirName  = ".contentview"
	DefaultFileName = "config.yaml"
	DefaultLocale   = "en"
	DefaultSeed     = 1
)

// Sentinel errors returned by Validate and ApplyEnv.
var (
	ErrInvalidPageSize = errors.New("page size must be a positive integer")
	ErrInvalidLocale   = errors.New("invalid locale")
	ErrInvalidSeed     = errors.New("seed must be a non-negative integer")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidFormat   = errors.New("log format must be 'console' or 'json'")
)

// Config is the full contentview configuration.
type Config struct {
	Display DisplayConfig `yaml:"display" json:"display"`
	Data    DataConfig    `yaml:"data"    json:"data"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// DisplayConfig controls list rendering.
type DisplayConfig struct {
	// PageSize is the initial rows per page.
	PageSize int `yaml:"page_size" json:"page_size"`
	// Locale is the BCP 47 tag used to collate text columns.
	Locale string `yaml:"locale" json:"locale"`
}

// DataConfig controls the sample data.
type DataConfig struct {
	// Seed drives the generated tables.
	Seed uint64 `yaml:"seed" json:"seed"`
}

// New returns a configuration holding the defaults.
func New() *Config {
	return &Config{
		Display: DisplayConfig{PageSize: listview.DefaultPageSize, Locale: DefaultLocale},
		Data:    DataConfig{Seed: DefaultSeed},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// DefaultPath returns ~/.contentview/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, DefaultDirName, DefaultFileName), nil
}

// ResolvePath picks the config file: the flag value, then CONTENTVIEW_CONFIG,
// then the default path.
func ResolvePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, nil
	}
	return DefaultPath()
}

// Load reads the config file at path onto the defaults, overlays the project
// config in projectDir and applies environment overrides. A missing file is
// not an error.
func Load(ctx context.Context, path, projectDir string) (*Config, error) {
	cfg := New()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if mergeErr := MergeYAML(cfg, path); mergeErr != nil {
				return nil, mergeErr
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("checking config file %s: %w", path, err)
		}
	}

	MergeProjectConfig(ctx, cfg, projectDir)

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from CONTENTVIEW_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFmt); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidSeed, EnvSeed, v)
		}
		c.Data.Seed = seed
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		size, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidPageSize, EnvPageSize, v)
		}
		c.Display.PageSize = size
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Display.PageSize < listview.MinPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Display.PageSize)
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Language parses the display locale.
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Display.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %w", ErrInvalidLocale, c.Display.Locale, err)
	}
	return tag, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
