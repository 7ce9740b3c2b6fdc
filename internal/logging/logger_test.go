package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "debug", want: zerolog.DebugLevel},
		{input: " WARN ", want: zerolog.WarnLevel},
		{input: "error", want: zerolog.ErrorLevel},
		{input: "", want: DefaultLevel},
		{input: "loud", want: DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "info", Format: FormatJSON}, &buf)

	logger.Debug().Msg("hidden")
	componentLogger := ComponentLogger(logger, "catalog")
	componentLogger.Info().Str("operation", "load").Msg("loaded")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"component":"catalog"`)
	assert.Contains(t, out, `"operation":"load"`)
	assert.Contains(t, out, `"message":"loaded"`)
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "debug", Format: FormatConsole, Output: OutputFile}, &buf)
	logger.Debug().Msg("console line")

	assert.Contains(t, buf.String(), "console line")
	assert.NotContains(t, buf.String(), "{")
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "contentview.log")
	result := NewLoggerWithPath(Config{Level: "info", Format: FormatJSON, Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("to file")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close(), "close is idempotent")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	result := NewLoggerWithPath(Config{Output: OutputFile})
	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

func TestNewLoggerWithPath_Discard(t *testing.T) {
	result := NewLoggerWithPath(Config{Level: "debug", Output: OutputDiscard})
	assert.Equal(t, zerolog.Disabled, result.Logger.GetLevel())
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "permission denied")
	assert.Contains(t, buf.String(), "Logging to /tmp/x.log")
	assert.Contains(t, buf.String(), "permission denied")
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	generated := GetOrGenerateTraceID(ctx)
	assert.Len(t, generated, 26)

	ctx = ContextWithTraceID(ctx, generated)
	assert.Equal(t, generated, TraceIDFromContext(ctx))
	assert.Equal(t, generated, GetOrGenerateTraceID(ctx))
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := ContextWithTraceID(context.Background(), "trace-123")
	ctx = logger.WithContext(ctx)
	FromContext(ctx).Info().Msg("hello")
	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)

	FromContext(context.Background()).Info().Msg("dropped")
	assert.NotContains(t, buf.String(), "dropped")
}
