package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea browser.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

const (
	defaultTerminalWidth = 120
	// minTerminalWidth is the narrowest width rendered without wrapping.
	minTerminalWidth = 60
)

// TerminalInfo reports terminal capabilities. Tests substitute their own.
type TerminalInfo struct {
	StdinTTY  bool
	StdoutTTY bool
	Env       func(string) string
}

// currentTerminal inspects the process's terminal.
func currentTerminal() TerminalInfo {
	return TerminalInfo{
		StdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		StdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		Env:       os.Getenv,
	}
}

// DetectOutputMode picks the output mode for the current process.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return currentTerminal().Mode(forceColor, noColor, plain)
}

// Mode picks the output mode: plain when requested, when NO_COLOR is set or
// when stdout is not a terminal (unless colour is forced); interactive when
// both stdin and stdout are terminals outside CI; styled otherwise.
func (ti TerminalInfo) Mode(forceColor, noColor, plain bool) OutputMode {
	env := ti.Env
	if env == nil {
		env = func(string) string { return "" }
	}

	if plain || noColor || env("NO_COLOR") != "" || env("TERM") == "dumb" {
		return OutputModePlain
	}
	if !ti.StdoutTTY {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if ti.StdinTTY && env("CI") == "" {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	ti := currentTerminal()
	return ti.StdinTTY && ti.StdoutTTY
}

// TerminalWidth returns the width of stdout, or a default when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minTerminalWidth {
		return defaultTerminalWidth
	}
	return width
}
