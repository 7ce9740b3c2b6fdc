package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/contentview/internal/catalog"
)

// AppOptions configure NewApp.
type AppOptions struct {
	PageSize int
	// Initial is the key of the first tab shown. Empty selects the first tab.
	Initial string
	Logger  zerolog.Logger
}

// App is the root model of the browser: a tab per table plus an optional
// detail screen stacked on top.
type App struct {
	registry *catalog.Registry
	pageSize int
	logger   zerolog.Logger

	keys    []string
	screens []Screen
	active  int
	detail  Screen

	width  int
	height int
}

// NewApp creates the browser over every table of reg.
func NewApp(reg *catalog.Registry, opts AppOptions) (*App, error) {
	a := &App{
		registry: reg,
		pageSize: opts.PageSize,
		logger:   opts.Logger.With().Str("component", "tui").Logger(),
		width:    defaultWidth,
		height:   defaultHeight,
	}

	a.add(catalog.TableContent, NewTableModel(reg.Content.Title, reg.Content.Controller(a.pageSize),
		TableOptions[catalog.Template]{
			NewRecord: func(seq int) catalog.Template { return catalog.NewTemplate(fmt.Sprintf("New template %d", seq)) },
			Open:      a.openSystems,
			Logger:    opts.Logger,
		}))
	a.add(catalog.TableTemplates, NewTableModel(reg.Templates.Title, reg.Templates.Controller(a.pageSize),
		TableOptions[catalog.Template]{
			NewRecord: func(seq int) catalog.Template { return catalog.NewTemplate(fmt.Sprintf("New template %d", seq)) },
			Logger:    opts.Logger,
		}))
	a.add(catalog.TableRepositories, NewTableModel(reg.Repositories.Title, reg.Repositories.Controller(a.pageSize),
		TableOptions[catalog.Repository]{
			NewRecord: func(seq int) catalog.Repository {
				return catalog.NewRepository(fmt.Sprintf("Custom repository %d", seq),
					fmt.Sprintf("https://example.com/repos/custom-%d/", seq))
			},
			Logger: opts.Logger,
		}))
	a.add(catalog.TablePopular, NewTableModel(reg.Popular.Title, reg.Popular.Controller(a.pageSize),
		TableOptions[catalog.Repository]{Logger: opts.Logger}))
	a.add(catalog.TableSystems, NewTableModel(reg.Systems.Title, reg.Systems.Controller(a.pageSize),
		TableOptions[catalog.System]{Logger: opts.Logger}))
	a.add(catalog.TablePackages, NewTableModel(reg.Packages.Title, reg.Packages.Controller(a.pageSize),
		TableOptions[catalog.Package]{
			NewRecord: func(seq int) catalog.Package { return catalog.NewPackage(fmt.Sprintf("new-package-%d", seq), "1.0.0") },
			Logger:    opts.Logger,
		}))

	if opts.Initial != "" {
		if err := a.SelectTab(opts.Initial); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *App) add(key string, screen Screen) {
	a.keys = append(a.keys, key)
	a.screens = append(a.screens, screen)
}

// openSystems shows the systems assigned to a content template.
func (a *App) openSystems(t catalog.Template) tea.Cmd {
	a.logger.Debug().Str("operation", "open").Str("id", t.ID).Msg("opening assigned systems")
	screen := NewTableModel("Systems assigned to "+t.Name, a.registry.Systems.Controller(a.pageSize),
		TableOptions[catalog.System]{Back: true, Logger: a.logger})
	return OpenScreen(screen)
}

// SelectTab activates the tab registered under key.
func (a *App) SelectTab(key string) error {
	want := strings.ToLower(strings.TrimSpace(key))
	for i, k := range a.keys {
		if k == want {
			a.active = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q (available: %s)", catalog.ErrUnknownTable, key, strings.Join(a.keys, ", "))
}

// ActiveKey returns the key of the active tab.
func (a *App) ActiveKey() string {
	return a.keys[a.active]
}

// Current returns the screen receiving input.
func (a *App) Current() Screen {
	if a.detail != nil {
		return a.detail
	}
	return a.screens[a.active]
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for i, s := range a.screens {
			a.screens[i] = a.forward(s, msg)
		}
		if a.detail != nil {
			a.detail = a.forward(a.detail, msg)
		}
		return a, nil
	case openMsg:
		a.detail = a.forward(msg.screen, tea.WindowSizeMsg{Width: a.width, Height: a.height})
		return a, nil
	case backMsg:
		a.detail = nil
		return a, nil
	case tea.KeyMsg:
		if !a.Current().Capturing() && a.detail == nil {
			switch msg.String() {
			case keyTab:
				a.active = (a.active + 1) % len(a.screens)
				return a, nil
			case keyShiftTab:
				a.active = (a.active - 1 + len(a.screens)) % len(a.screens)
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	if a.detail != nil {
		a.detail, cmd = a.update(a.detail, msg)
	} else {
		a.screens[a.active], cmd = a.update(a.screens[a.active], msg)
	}
	return a, cmd
}

func (a *App) forward(s Screen, msg tea.Msg) Screen {
	next, _ := a.update(s, msg)
	return next
}

func (a *App) update(s Screen, msg tea.Msg) (Screen, tea.Cmd) {
	model, cmd := s.Update(msg)
	if next, ok := model.(Screen); ok {
		return next, cmd
	}
	return s, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, a.renderTabs(), "", a.Current().View())
}

func (a *App) renderTabs() string {
	if a.detail != nil {
		return HeaderStyle.Render(a.detail.Title())
	}
	tabs := make([]string, len(a.screens))
	for i, s := range a.screens {
		if i == a.active {
			tabs[i] = TabActiveStyle.Render(s.Title())
		} else {
			tabs[i] = TabInactiveStyle.Render(s.Title())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "  " + SubtleStyle.Render("[tab] Next table")
}
