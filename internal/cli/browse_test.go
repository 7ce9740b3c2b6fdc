package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/contentview/internal/catalog"
)

func TestRunBrowse_RequiresTerminal(t *testing.T) {
	var out bytes.Buffer
	err := runBrowse(testCommand(&out), testSession(), "packages", false)
	require.ErrorIs(t, err, ErrNotInteractive)
}

func TestRunBrowse_UnknownTable(t *testing.T) {
	var out bytes.Buffer
	err := runBrowse(testCommand(&out), testSession(), "widgets", true)
	require.ErrorIs(t, err, catalog.ErrUnknownTable)
}

func TestBrowseCmd_UnknownTable(t *testing.T) {
	isolateEnv(t)
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"browse", "widgets"})
	require.ErrorIs(t, cmd.Execute(), catalog.ErrUnknownTable)
}
