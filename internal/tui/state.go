package tui

// ViewState is the input mode of a table screen.
type ViewState int

const (
	// ViewStateList navigates rows.
	ViewStateList ViewState = iota
	// ViewStateSearch edits the search text.
	ViewStateSearch
	// ViewStateMenu has a dropdown menu open.
	ViewStateMenu
	// ViewStateQuitting is set once the program is exiting.
	ViewStateQuitting
)

// String returns the state name.
func (s ViewState) String() string {
	switch s {
	case ViewStateList:
		return "list"
	case ViewStateSearch:
		return "search"
	case ViewStateMenu:
		return "menu"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}
