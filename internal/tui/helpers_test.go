package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/contentview/internal/catalog"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func special(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func testRegistry() *catalog.Registry {
	return catalog.NewRegistry(catalog.Options{Seed: 1, Logger: zerolog.Nop()})
}

// systemsModel returns a systems screen of 8 rows, 3 per page.
func systemsModel() *TableModel[catalog.System] {
	reg := testRegistry()
	return NewTableModel(reg.Systems.Title, reg.Systems.Controller(3),
		TableOptions[catalog.System]{Logger: zerolog.Nop()})
}

// press sends keys in order and returns the last command.
func press(m tea.Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func pageNames(m *TableModel[catalog.System]) []string {
	items := m.Result().Items
	names := make([]string, len(items))
	for i, s := range items {
		names[i] = s.Name
	}
	return names
}
