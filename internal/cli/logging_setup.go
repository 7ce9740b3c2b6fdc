package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/contentview/internal/logging"
)

// setupLogging configures logging from the resolved config and the --debug
// flag, and stores a trace-tagged logger in the command context.
func (s *session) setupLogging(cmd *cobra.Command) {
	loggingCfg := s.cfg.Logging
	if s.opts.debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}

	interactive := cmd.Annotations[annotationInteractive] != ""
	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig(interactive))
	s.logResult = result
	s.baseLogger = result.Logger
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
