package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/contentview/internal/config"
)

// isolateEnv points the config at a temporary home and clears overrides.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfig, filepath.Join(home, config.DefaultDirName, config.DefaultFileName))
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFmt, "")
	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvPageSize, "")
	return home
}

// executeCmd runs the root command with args and returns stdout.
func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolateEnv(t)
	return executeRoot(args...)
}

func executeRoot(args ...string) (string, error) {
	cmd := NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// testSession returns a session on default settings.
func testSession() *session {
	return &session{cfg: config.New(), baseLogger: zerolog.Nop()}
}

// testCommand returns a bare command writing to out.
func testCommand(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetContext(context.Background())
	return cmd
}
