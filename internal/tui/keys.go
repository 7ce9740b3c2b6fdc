package tui

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keySortNext = "s"
	keySortFlip = "S"
	keyLeft     = "left"
	keyRight    = "right"
	keyPageSize = "+"
	keySpace    = " "
	keyBulk     = "b"
	keyFacet    = "f"
	keyClear    = "c"
	keyActions  = "."
	keyAdd      = "a"
	keyDelete   = "d"
	keyScope    = "o"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyUp       = "up"
	keyDown     = "down"
	keyK        = "k"
	keyJ        = "j"
	keyHome     = "home"
	keyEnd      = "end"
)
