package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/contentview/internal/logging"
)

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `yaml:"level" json:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format" json:"format"`
	// File, when set, receives logs instead of stderr.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Validate checks the level and format names.
func (lc LoggingConfig) Validate() error {
	if lc.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(lc.Level)); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, lc.Level)
		}
	}
	switch lc.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, lc.Format)
	}
}

// ToLoggingConfig converts the settings to a logging.Config.
//
// Logs go to File when one is set and to stderr otherwise. An interactive
// session owns the terminal, so without a file its logs are discarded.
func (lc LoggingConfig) ToLoggingConfig(interactive bool) logging.Config {
	output := logging.OutputStderr
	switch {
	case lc.File != "":
		output = logging.OutputFile
	case interactive:
		output = logging.OutputDiscard
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
