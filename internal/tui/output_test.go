package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalInfo_Mode(t *testing.T) {
	envWith := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	tests := []struct {
		name       string
		info       TerminalInfo
		forceColor bool
		noColor    bool
		plain      bool
		want       OutputMode
	}{
		{
			name: "interactive terminal",
			info: TerminalInfo{StdinTTY: true, StdoutTTY: true},
			want: OutputModeInteractive,
		},
		{
			name:  "plain flag",
			info:  TerminalInfo{StdinTTY: true, StdoutTTY: true},
			plain: true,
			want:  OutputModePlain,
		},
		{
			name:    "no color flag",
			info:    TerminalInfo{StdinTTY: true, StdoutTTY: true},
			noColor: true,
			want:    OutputModePlain,
		},
		{
			name: "NO_COLOR env",
			info: TerminalInfo{StdinTTY: true, StdoutTTY: true, Env: envWith(map[string]string{"NO_COLOR": "1"})},
			want: OutputModePlain,
		},
		{
			name: "dumb terminal",
			info: TerminalInfo{StdinTTY: true, StdoutTTY: true, Env: envWith(map[string]string{"TERM": "dumb"})},
			want: OutputModePlain,
		},
		{
			name: "piped stdout",
			info: TerminalInfo{StdinTTY: true},
			want: OutputModePlain,
		},
		{
			name:       "piped stdout with forced color",
			info:       TerminalInfo{StdinTTY: true},
			forceColor: true,
			want:       OutputModeStyled,
		},
		{
			name: "CI terminal",
			info: TerminalInfo{StdinTTY: true, StdoutTTY: true, Env: envWith(map[string]string{"CI": "true"})},
			want: OutputModeStyled,
		},
		{
			name: "piped stdin",
			info: TerminalInfo{StdoutTTY: true},
			want: OutputModeStyled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Mode(tt.forceColor, tt.noColor, tt.plain))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
}

func TestViewState_String(t *testing.T) {
	assert.Equal(t, "list", ViewStateList.String())
	assert.Equal(t, "search", ViewStateSearch.String())
	assert.Equal(t, "menu", ViewStateMenu.String())
	assert.Equal(t, "quitting", ViewStateQuitting.String())
	assert.Equal(t, "unknown", ViewState(99).String())
}
