package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("205")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorSubtle    = lipgloss.Color("240")
	ColorInfo      = lipgloss.Color("39")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorError     = lipgloss.Color("196")
	ColorSelection = lipgloss.Color("57")
	ColorOnSelect  = lipgloss.Color("229")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle   = lipgloss.NewStyle().Foreground(ColorValue)
	SubtleStyle  = lipgloss.NewStyle().Foreground(ColorSubtle)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	OKStyle      = lipgloss.NewStyle().Foreground(ColorOK)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSubtle).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorSubtle).
				BorderBottom(true).
				Bold(true).
				Padding(0, 1)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorOnSelect).
				Background(ColorSelection)

	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOnSelect).
			Background(ColorSelection).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorLabel).
				Padding(0, 1)

	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorInfo).
			Padding(0, 1)
)

// StatusStyle colours a Valid/Invalid status cell.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "Valid", "Up-to-date":
		return OKStyle
	case "Invalid":
		return ErrorStyle
	case "Upgradable":
		return WarningStyle
	default:
		return ValueStyle
	}
}
