package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations.
const (
	OutputStderr  = "stderr"
	OutputStdout  = "stdout"
	OutputFile    = "file"
	OutputDiscard = "discard"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DefaultLevel is used when the configured level cannot be parsed.
const DefaultLevel = zerolog.InfoLevel

// Config describes how a logger writes.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult is the outcome of NewLoggerWithPath.
type LogPathResult struct {
	Logger zerolog.Logger

	// FilePath is the log file in use, empty when not logging to a file.
	FilePath  string
	UsingFile bool

	// FallbackUsed is set when a file was requested but could not be opened
	// and stderr is used instead.
	FallbackUsed   bool
	FallbackReason string

	closeOnce sync.Once
	file      *os.File
}

// Close releases the log file, if any. It is safe to call more than once.
func (r *LogPathResult) Close() error {
	var err error
	r.closeOnce.Do(func() {
		if r.file != nil {
			err = r.file.Close()
		}
	})
	return err
}

// ParseLevel parses a level name, falling back to DefaultLevel.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return DefaultLevel
	}
	return lvl
}

// NewLogger creates a logger writing to w in the configured format.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	if cfg.Format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: cfg.Output == OutputFile}
	}

	ctx := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// NewLoggerWithPath resolves the configured output and creates the logger.
// A file that cannot be opened falls back to stderr and is reported through
// the result rather than as an error.
func NewLoggerWithPath(cfg Config) *LogPathResult {
	result := &LogPathResult{}

	switch cfg.Output {
	case OutputDiscard:
		result.Logger = zerolog.Nop()
		return result
	case OutputStdout:
		result.Logger = NewLogger(cfg, os.Stdout)
		return result
	case OutputFile:
		file, err := openLogFile(cfg.File)
		if err == nil {
			result.file = file
			result.FilePath = cfg.File
			result.UsingFile = true
			result.Logger = NewLogger(cfg, file)
			return result
		}
		result.FallbackUsed = true
		result.FallbackReason = err.Error()
	}

	cfg.Output = OutputStderr
	result.Logger = NewLogger(cfg, os.Stderr)
	return result
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, errors.New("no log file configured")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return file, nil
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where logs are written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning reports that file logging was unavailable.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
