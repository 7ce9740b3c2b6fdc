package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/contentview/internal/catalog"
)

func newTestApp(t *testing.T, initial string) *App {
	t.Helper()
	app, err := NewApp(testRegistry(), AppOptions{PageSize: 5, Initial: initial, Logger: zerolog.Nop()})
	require.NoError(t, err)
	return app
}

func TestApp_TabNavigation(t *testing.T) {
	app := newTestApp(t, "")
	assert.Equal(t, catalog.TableContent, app.ActiveKey())

	press(app, special(tea.KeyTab))
	assert.Equal(t, catalog.TableTemplates, app.ActiveKey())

	press(app, special(tea.KeyShiftTab), special(tea.KeyShiftTab))
	assert.Equal(t, catalog.TablePackages, app.ActiveKey())
	assert.Equal(t, "Packages", app.Current().Title())
}

func TestApp_InitialTab(t *testing.T) {
	app := newTestApp(t, " Popular ")
	assert.Equal(t, catalog.TablePopular, app.ActiveKey())

	_, err := NewApp(testRegistry(), AppOptions{Initial: "nope", Logger: zerolog.Nop()})
	require.ErrorIs(t, err, catalog.ErrUnknownTable)
}

func TestApp_TabIgnoredWhileSearching(t *testing.T) {
	app := newTestApp(t, "")

	press(app, runes("/"), special(tea.KeyTab))
	assert.Equal(t, catalog.TableContent, app.ActiveKey())
	assert.True(t, app.Current().Capturing())
}

func TestApp_OpenSystemsAndBack(t *testing.T) {
	app := newTestApp(t, "")

	cmd := press(app, special(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, _ = app.Update(cmd())
	assert.True(t, strings.HasPrefix(app.Current().Title(), "Systems assigned to "))
	assert.Contains(t, app.View(), "Systems assigned to ")

	press(app, special(tea.KeyTab))
	assert.Equal(t, catalog.TableContent, app.ActiveKey(), "tabs are locked while a detail screen is open")

	cmd = press(app, special(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, _ = app.Update(cmd())
	assert.Equal(t, "Content templates", app.Current().Title())
}

func TestApp_ViewShowsTabs(t *testing.T) {
	app := newTestApp(t, "")
	_, _ = app.Update(tea.WindowSizeMsg{Width: 160, Height: 40})

	view := app.View()
	for _, title := range []string{"Content templates", "Templates", "Repositories", "Popular repositories", "Systems", "Packages"} {
		assert.Contains(t, view, title)
	}
}
