package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// defaultMenuHeight is the number of menu items shown at once.
const defaultMenuHeight = 8

// MenuItem is one entry of a dropdown menu.
type MenuItem[T any] struct {
	Label    string
	Value    T
	Disabled bool
}

// MenuAction is the outcome of a key press on a menu.
type MenuAction int

const (
	// MenuNone means the menu stays open.
	MenuNone MenuAction = iota
	// MenuChosen means the highlighted item was picked.
	MenuChosen
	// MenuCancelled means the menu was dismissed.
	MenuCancelled
)

// Menu is a dropdown or kebab menu. Only a window of items around the cursor
// is rendered, so long value lists such as facet menus stay compact.
type Menu[T any] struct {
	title string
	items []MenuItem[T]

	// cursor is the highlighted item index (0-based)
	cursor int

	// visibleFrom and visibleTo bound the rendered window (exclusive end)
	visibleFrom int
	visibleTo   int

	height int
}

// NewMenu creates a menu. The cursor starts on the first enabled item.
func NewMenu[T any](title string, items []MenuItem[T]) *Menu[T] {
	m := &Menu[T]{title: title, items: items, height: defaultMenuHeight}
	for i, it := range items {
		if !it.Disabled {
			m.cursor = i
			break
		}
	}
	m.updateVisibleRange()
	return m
}

// Title returns the menu title.
func (m *Menu[T]) Title() string {
	return m.title
}

// Len returns the number of items.
func (m *Menu[T]) Len() int {
	return len(m.items)
}

// Cursor returns the highlighted index.
func (m *Menu[T]) Cursor() int {
	return m.cursor
}

// Selected returns the highlighted item, or nil for an empty menu.
func (m *Menu[T]) Selected() *MenuItem[T] {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

// SetHeight changes how many items are shown at once.
func (m *Menu[T]) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	m.height = height
	m.updateVisibleRange()
}

// HandleKey moves the cursor or resolves the menu. Disabled items are skipped
// and cannot be chosen.
//
//nolint:exhaustive // Only navigation keys are handled.
func (m *Menu[T]) HandleKey(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case keyEsc, keyQuit:
		return MenuCancelled
	case keyEnter:
		if item := m.Selected(); item != nil && !item.Disabled {
			return MenuChosen
		}
		return MenuNone
	case keyUp, keyK:
		m.move(-1)
	case keyDown, keyJ:
		m.move(1)
	case keyHome:
		m.cursor = 0
		if len(m.items) > 0 && m.items[0].Disabled {
			m.move(1)
		}
	case keyEnd:
		m.cursor = len(m.items) - 1
		if m.cursor >= 0 && m.items[m.cursor].Disabled {
			m.move(-1)
		}
	}
	m.updateVisibleRange()
	return MenuNone
}

// move steps the cursor by delta, skipping disabled items and stopping at
// either end.
func (m *Menu[T]) move(delta int) {
	for next := m.cursor + delta; next >= 0 && next < len(m.items); next += delta {
		if !m.items[next].Disabled {
			m.cursor = next
			return
		}
	}
}

// updateVisibleRange keeps the cursor inside the rendered window.
func (m *Menu[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	halfViewport := m.height / halfViewportDivisor
	from := m.cursor - halfViewport
	to := from + m.height

	if from < 0 {
		from = 0
		to = m.height
	}
	if to > len(m.items) {
		to = len(m.items)
		from = max(to-m.height, 0)
	}

	m.visibleFrom = from
	m.visibleTo = to
}

// View renders the menu box.
func (m *Menu[T]) View() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(m.title))

	if len(m.items) == 0 {
		sb.WriteString("\n" + SubtleStyle.Render("(no options)"))
		return MenuStyle.Render(sb.String())
	}

	if m.visibleFrom > 0 {
		sb.WriteString("\n" + SubtleStyle.Render("  ↑ more"))
	}
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		item := m.items[i]
		line := "  " + item.Label
		style := lipgloss.NewStyle()
		switch {
		case item.Disabled:
			style = SubtleStyle
		case i == m.cursor:
			line = "> " + item.Label
			style = TableSelectedStyle
		}
		sb.WriteString("\n" + style.Render(line))
	}
	if m.visibleTo < len(m.items) {
		sb.WriteString("\n" + SubtleStyle.Render("  ↓ more"))
	}

	return MenuStyle.Render(sb.String())
}
