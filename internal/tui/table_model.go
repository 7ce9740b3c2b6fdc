package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	"github.com/rshade/contentview/internal/listview"
)

const (
	defaultWidth  = 120
	defaultHeight = 30
	minHeight     = 5

	// chromeHeight is the number of lines used by the tab bar, toolbar,
	// status line and help text around the table.
	chromeHeight = 9

	filterInputCharLimit = 100
	filterInputWidth     = 40

	checkboxColumnWidth = 3
	defaultColumnWidth  = 12
)

// Checkbox glyphs for the bulk-select toggle and row selection.
const (
	checkboxNone = "[ ]"
	checkboxSome = "[-]"
	checkboxAll  = "[x]"
)

// Sort direction indicators shown next to the active column header.
const (
	sortIndicatorAsc  = " ▲"
	sortIndicatorDesc = " ▼"
)

// Screen is one tab of the browser.
type Screen interface {
	tea.Model
	Title() string
	// Capturing reports whether the screen consumes every key, e.g. while the
	// search box or a menu is open.
	Capturing() bool
}

// backMsg asks the App to close the current detail screen.
type backMsg struct{}

// openMsg asks the App to show a detail screen.
type openMsg struct {
	screen Screen
}

// OpenScreen returns a command that shows screen as a detail view.
func OpenScreen(screen Screen) tea.Cmd {
	return func() tea.Msg { return openMsg{screen: screen} }
}

func back() tea.Msg { return backMsg{} }

// menuKind identifies what a menu choice applies to.
type menuKind int

const (
	menuBulk menuKind = iota
	menuScope
	menuFacetColumn
	menuFacetValue
	menuRowAction
)

// Bulk and row actions.
const (
	actionSelectNone = "select-none"
	actionSelectPage = "select-page"
	actionSelectAll  = "select-all"
	actionToggle     = "toggle"
	actionOpen       = "open"
	actionDelete     = "delete"
	actionClearFacet = "clear-facet"
)

type menuChoice struct {
	kind   menuKind
	action string
	column int
	value  string
}

// TableOptions customise a TableModel.
type TableOptions[R any] struct {
	// NewRecord creates the record inserted by the add key. Nil disables add.
	NewRecord func(seq int) R
	// Open returns the command run when enter is pressed on a row. Nil
	// disables the detail action.
	Open func(r R) tea.Cmd
	// Back makes esc on an idle screen return to the previous screen.
	Back   bool
	Logger zerolog.Logger
}

// TableModel is the Bubble Tea model of one list screen: a toolbar with the
// bulk-select checkbox, search box and pagination summary above a table of
// the current page.
type TableModel[R any] struct {
	title   string
	ctrl    *listview.Controller[R]
	opts    TableOptions[R]
	logger  zerolog.Logger
	printer *message.Printer

	state     ViewState
	table     table.Model
	textInput textinput.Model
	menu      *Menu[menuChoice]
	view      listview.ViewResult[R]

	width  int
	height int
	status string
	added  int
}

// NewTableModel creates a list screen over ctrl.
func NewTableModel[R any](title string, ctrl *listview.Controller[R], opts TableOptions[R]) *TableModel[R] {
	m := &TableModel[R]{
		title:     title,
		ctrl:      ctrl,
		opts:      opts,
		logger:    opts.Logger.With().Str("component", "tui").Str("screen", title).Logger(),
		printer:   message.NewPrinter(ctrl.Pipeline().Registry().Language()),
		state:     ViewStateList,
		textInput: newSearchInput(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.table = table.New(
		table.WithFocused(true),
		table.WithKeyMap(tableKeyMap()),
		table.WithHeight(m.tableHeight()),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	m.table.SetStyles(s)
	m.refresh()
	return m
}

// newSearchInput creates the search box.
func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = ""
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	return ti
}

// tableKeyMap keeps row navigation but frees the letter and space keys used
// by screen actions.
func tableKeyMap() table.KeyMap {
	km := table.DefaultKeyMap()
	km.PageUp = key.NewBinding(key.WithKeys("pgup"))
	km.PageDown = key.NewBinding(key.WithKeys("pgdown"))
	km.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"))
	km.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"))
	km.GotoTop = key.NewBinding(key.WithKeys("home", "g"))
	km.GotoBottom = key.NewBinding(key.WithKeys("end", "G"))
	return km
}

// Title implements Screen.
func (m *TableModel[R]) Title() string {
	return m.title
}

// Capturing implements Screen.
func (m *TableModel[R]) Capturing() bool {
	return m.state == ViewStateSearch || m.state == ViewStateMenu
}

// Controller returns the screen's list controller.
func (m *TableModel[R]) Controller() *listview.Controller[R] {
	return m.ctrl
}

// Result returns the last computed page.
func (m *TableModel[R]) Result() listview.ViewResult[R] {
	return m.view
}

// State returns the input mode.
func (m *TableModel[R]) State() ViewState {
	return m.state
}

// Status returns the last status message.
func (m *TableModel[R]) Status() string {
	return m.status
}

// Init implements tea.Model.
func (m *TableModel[R]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *TableModel[R]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.table.SetHeight(m.tableHeight())
		m.refresh()
		return m, nil
	}

	switch m.state {
	case ViewStateSearch:
		return m.handleSearchInput(msg)
	case ViewStateMenu:
		return m.handleMenuInput(msg)
	case ViewStateQuitting:
		return m, nil
	case ViewStateList:
		return m.handleListUpdate(msg)
	default:
		return m, nil
	}
}

func (m *TableModel[R]) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.state = ViewStateList
			m.textInput.Blur()
			return m, nil
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != m.ctrl.Query().SearchText {
		m.ctrl.SetSearch(m.textInput.Value())
		m.refresh()
	}
	return m, cmd
}

//nolint:gocyclo,cyclop // One branch per key binding.
func (m *TableModel[R]) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	k := keyMsg.String()
	switch k {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyEsc:
		if m.ctrl.Query().SearchText != "" {
			m.setSearch("")
			return m, nil
		}
		if m.opts.Back {
			return m, back
		}
		return m, nil
	case keySlash:
		m.state = ViewStateSearch
		return m, m.textInput.Focus()
	case keyEnter:
		if r, found := m.cursorRecord(); found && m.opts.Open != nil {
			return m, m.opts.Open(r)
		}
		return m, nil
	case keySortNext:
		m.cycleSort()
	case keySortFlip:
		m.flipSort()
	case keyLeft:
		m.ctrl.PrevPage()
	case keyRight:
		m.ctrl.NextPage()
	case keyPageSize:
		size := m.ctrl.CyclePageSize()
		m.status = fmt.Sprintf("%d per page", size)
	case keySpace:
		m.toggleCursorRow()
	case keyBulk:
		m.openBulkMenu()
		return m, nil
	case keyScope:
		m.openScopeMenu()
		return m, nil
	case keyFacet:
		m.openFacetColumnMenu()
		return m, nil
	case keyActions:
		m.openRowMenu()
		return m, nil
	case keyClear:
		m.clearFilters()
	case keyAdd:
		m.addRecord()
	case keyDelete:
		m.deleteSelected()
	default:
		if col, isDigit := sortDigit(k); isDigit {
			m.sortBy(col)
			break
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

// sortDigit maps the keys 1-9 to 0-based column indexes.
func sortDigit(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}

func (m *TableModel[R]) handleMenuInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.menu == nil {
		return m, nil
	}
	if keyMsg.String() == keyCtrlC {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.menu.HandleKey(keyMsg) {
	case MenuCancelled:
		m.closeMenu()
	case MenuChosen:
		item := m.menu.Selected()
		m.closeMenu()
		if item == nil {
			return m, nil
		}
		choice := item.Value
		cmd := m.applyChoice(choice)
		m.refresh()
		return m, cmd
	case MenuNone:
	}
	return m, nil
}

func (m *TableModel[R]) closeMenu() {
	m.menu = nil
	m.state = ViewStateList
}

func (m *TableModel[R]) showMenu(menu *Menu[menuChoice]) {
	menu.SetHeight(max(m.tableHeight()-2, minHeight))
	m.menu = menu
	m.state = ViewStateMenu
}

//nolint:gocyclo,cyclop // One branch per menu action.
func (m *TableModel[R]) applyChoice(choice menuChoice) tea.Cmd {
	switch choice.kind {
	case menuBulk:
		switch choice.action {
		case actionSelectNone:
			m.ctrl.SelectNone()
		case actionSelectPage:
			m.ctrl.SelectPage()
		case actionSelectAll:
			m.ctrl.SelectAllFiltered()
		}
		m.logger.Debug().Str("operation", "bulk_select").Str("action", choice.action).
			Int("selected", m.ctrl.Selection().Len()).Msg("bulk selection changed")
	case menuScope:
		if choice.column < 0 {
			m.ctrl.SetSearchColumn(nil)
		} else {
			col := choice.column
			m.ctrl.SetSearchColumn(&col)
		}
	case menuFacetColumn:
		if choice.action == actionClearFacet {
			m.ctrl.ClearFacet(choice.column)
			return nil
		}
		m.openFacetValueMenu(choice.column)
	case menuFacetValue:
		m.ctrl.AddFacet(listview.Facet{Column: choice.column, Value: choice.value})
	case menuRowAction:
		switch choice.action {
		case actionToggle:
			m.toggleCursorRow()
		case actionDelete:
			m.deleteIDs([]string{choice.value})
		case actionOpen:
			if r, found := m.ctrl.Find(choice.value); found && m.opts.Open != nil {
				return m.opts.Open(r)
			}
		}
	}
	return nil
}

func (m *TableModel[R]) openBulkMenu() {
	view := m.ctrl.View()
	items := []MenuItem[menuChoice]{
		{Label: "Select none (0 items)", Value: menuChoice{kind: menuBulk, action: actionSelectNone}},
		{Label: fmt.Sprintf("Select page (%d items)", len(view.PageIDs)), Value: menuChoice{kind: menuBulk, action: actionSelectPage}, Disabled: len(view.PageIDs) == 0},
		{Label: fmt.Sprintf("Select all (%d items)", view.TotalMatched), Value: menuChoice{kind: menuBulk, action: actionSelectAll}, Disabled: view.TotalMatched == 0},
	}
	m.showMenu(NewMenu("Bulk select", items))
}

func (m *TableModel[R]) openScopeMenu() {
	items := []MenuItem[menuChoice]{{Label: "All fields", Value: menuChoice{kind: menuScope, column: -1}}}
	for i, c := range m.ctrl.Schema().Columns {
		if c.Searchable {
			items = append(items, MenuItem[menuChoice]{Label: c.Label, Value: menuChoice{kind: menuScope, column: i}})
		}
	}
	m.showMenu(NewMenu("Search in", items))
}

func (m *TableModel[R]) openFacetColumnMenu() {
	active := make(map[int]string)
	for _, f := range m.ctrl.Query().Facets {
		active[f.Column] = f.Value
	}

	var items []MenuItem[menuChoice]
	for i, c := range m.ctrl.Schema().Columns {
		if !c.Sortable {
			continue
		}
		if v, ok := active[i]; ok {
			items = append(items, MenuItem[menuChoice]{
				Label: fmt.Sprintf("Clear %s = %s", c.Label, v),
				Value: menuChoice{kind: menuFacetColumn, action: actionClearFacet, column: i},
			})
			continue
		}
		items = append(items, MenuItem[menuChoice]{Label: c.Label, Value: menuChoice{kind: menuFacetColumn, column: i}})
	}
	m.showMenu(NewMenu("Filter by", items))
}

func (m *TableModel[R]) openFacetValueMenu(column int) {
	col, ok := m.ctrl.Schema().Column(column)
	if !ok {
		return
	}
	values := m.ctrl.Pipeline().Distinct(m.ctrl.Records(), column)
	items := make([]MenuItem[menuChoice], len(values))
	for i, v := range values {
		items[i] = MenuItem[menuChoice]{Label: v, Value: menuChoice{kind: menuFacetValue, column: column, value: v}}
	}
	m.showMenu(NewMenu(col.Label, items))
}

func (m *TableModel[R]) openRowMenu() {
	r, found := m.cursorRecord()
	if !found {
		m.status = "No row selected"
		return
	}
	id := m.ctrl.Schema().ID(r)

	toggle := "Select"
	if m.ctrl.Selection().IsSelected(id) {
		toggle = "Deselect"
	}
	items := []MenuItem[menuChoice]{
		{Label: toggle, Value: menuChoice{kind: menuRowAction, action: actionToggle, value: id}},
	}
	if m.opts.Open != nil {
		items = append(items, MenuItem[menuChoice]{Label: "Open", Value: menuChoice{kind: menuRowAction, action: actionOpen, value: id}})
	}
	items = append(items, MenuItem[menuChoice]{Label: "Delete", Value: menuChoice{kind: menuRowAction, action: actionDelete, value: id}})
	m.showMenu(NewMenu("Actions", items))
}

func (m *TableModel[R]) setSearch(text string) {
	m.textInput.SetValue(text)
	m.ctrl.SetSearch(text)
	m.refresh()
}

func (m *TableModel[R]) clearFilters() {
	m.textInput.SetValue("")
	m.ctrl.ClearFilters()
	m.status = "Filters cleared"
}

// cycleSort moves the sort to the next sortable column, ascending, and
// clears it after the last one.
func (m *TableModel[R]) cycleSort() {
	cols := m.ctrl.Schema().Columns
	start := 0
	if s := m.ctrl.Query().Sort; s != nil {
		start = s.Column + 1
	}
	for i := start; i < len(cols); i++ {
		if cols[i].Sortable {
			m.ctrl.SetSort(&listview.SortSpec{Column: i, Direction: listview.Ascending})
			return
		}
	}
	m.ctrl.SetSort(nil)
}

func (m *TableModel[R]) flipSort() {
	s := m.ctrl.Query().Sort
	if s == nil {
		m.cycleSort()
		s = m.ctrl.Query().Sort
		if s == nil {
			return
		}
	}
	m.ctrl.SetSort(&listview.SortSpec{Column: s.Column, Direction: s.Direction.Reverse()})
}

func (m *TableModel[R]) sortBy(column int) {
	col, ok := m.ctrl.Schema().Column(column)
	if !ok || !col.Sortable {
		return
	}
	m.ctrl.SortBy(column)
}

func (m *TableModel[R]) cursorRecord() (R, bool) {
	var zero R
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.view.Items) {
		return zero, false
	}
	return m.view.Items[cursor], true
}

func (m *TableModel[R]) toggleCursorRow() {
	r, found := m.cursorRecord()
	if !found {
		return
	}
	m.ctrl.ToggleRow(m.ctrl.Schema().ID(r))
}

func (m *TableModel[R]) addRecord() {
	if m.opts.NewRecord == nil {
		m.status = "Adding is not available here"
		return
	}
	m.added++
	r := m.opts.NewRecord(m.added)
	m.ctrl.Add(r)
	m.status = "Added " + m.ctrl.Schema().ID(r)
	m.logger.Debug().Str("operation", "add").Str("id", m.ctrl.Schema().ID(r)).Msg("record added")
}

func (m *TableModel[R]) deleteSelected() {
	ids := m.ctrl.Selection().IDs()
	if len(ids) == 0 {
		m.status = "Nothing selected"
		return
	}
	m.deleteIDs(ids)
}

func (m *TableModel[R]) deleteIDs(ids []string) {
	removed := m.ctrl.Remove(ids...)
	m.status = fmt.Sprintf("Deleted %d %s", removed, plural(removed, "row", "rows"))
	m.logger.Debug().Str("operation", "delete").Int("count", removed).Msg("records deleted")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// refresh recomputes the page and rebuilds the table rows, keeping the cursor
// in range.
func (m *TableModel[R]) refresh() {
	m.view = m.ctrl.View()
	schema := m.ctrl.Schema()
	sortSpec := m.ctrl.Query().Sort

	columns := make([]table.Column, 0, len(schema.Columns)+1)
	columns = append(columns, table.Column{Title: "", Width: checkboxColumnWidth})
	for i, c := range schema.Columns {
		title := c.Label
		if sortSpec != nil && sortSpec.Column == i {
			title += sortIndicator(sortSpec.Direction)
		}
		width := c.Width
		if width <= 0 {
			width = defaultColumnWidth
		}
		columns = append(columns, table.Column{Title: title, Width: width})
	}

	rows := make([]table.Row, len(m.view.Items))
	for i, r := range m.view.Items {
		row := make(table.Row, 0, len(columns))
		box := checkboxNone
		if m.ctrl.Selection().IsSelected(m.view.PageIDs[i]) {
			box = checkboxAll
		}
		row = append(row, box)
		for _, c := range schema.Columns {
			row = append(row, c.Value(r).String())
		}
		rows[i] = row
	}

	// Rows must be cleared before columns shrink or grow.
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func sortIndicator(d listview.Direction) string {
	if d == listview.Descending {
		return sortIndicatorDesc
	}
	return sortIndicatorAsc
}

func (m *TableModel[R]) tableHeight() int {
	return max(m.height-chromeHeight, minHeight)
}

// Checkbox renders the bulk-select toggle for a tri-state.
func Checkbox(state listview.TriState) string {
	switch state {
	case listview.SelectedAll:
		return checkboxAll
	case listview.SelectedSome:
		return checkboxSome
	default:
		return checkboxNone
	}
}

// View implements tea.Model.
func (m *TableModel[R]) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	sections := []string{m.renderToolbar()}
	switch {
	case m.state == ViewStateMenu && m.menu != nil:
		sections = append(sections, m.menu.View())
	case m.view.TotalMatched == 0:
		sections = append(sections, m.renderEmptyState())
	default:
		sections = append(sections, m.table.View())
	}
	sections = append(sections, m.renderStatus(), m.renderHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *TableModel[R]) renderToolbar() string {
	q := m.ctrl.Query()
	parts := []string{
		Checkbox(m.view.PageState) + " " + LabelStyle.Render(m.printer.Sprintf("%d selected", m.view.SelectedTotal)),
	}

	search := SubtleStyle.Render("/ to search")
	switch {
	case m.state == ViewStateSearch:
		search = LabelStyle.Render("Search: ") + m.textInput.View()
	case q.SearchText != "":
		search = LabelStyle.Render("Search: ") + ValueStyle.Render(q.SearchText)
	}
	if q.SearchColumn != nil {
		if c, ok := m.ctrl.Schema().Column(*q.SearchColumn); ok {
			search += SubtleStyle.Render(" in " + c.Label)
		}
	}
	parts = append(parts, search)

	if len(q.Facets) > 0 {
		facets := make([]string, 0, len(q.Facets))
		for _, f := range q.Facets {
			if c, ok := m.ctrl.Schema().Column(f.Column); ok {
				facets = append(facets, c.Label+"="+f.Value)
			}
		}
		parts = append(parts, InfoStyle.Render(strings.Join(facets, ", ")))
	}

	parts = append(parts, ValueStyle.Render(m.pageSummary()))
	return strings.Join(parts, "   ")
}

// pageSummary renders "1 - 20 of 50 · page 1/3".
func (m *TableModel[R]) pageSummary() string {
	meta := m.view.Page
	if meta.TotalItems == 0 {
		return m.printer.Sprintf("0 items · %d per page", meta.PageSize)
	}
	return m.printer.Sprintf("%d - %d of %d · page %d/%d · %d per page",
		meta.FirstItem, meta.LastItem, meta.TotalItems, meta.CurrentPage, meta.TotalPages, meta.PageSize)
}

func (m *TableModel[R]) renderEmptyState() string {
	if m.ctrl.Query().IsFiltered() {
		body := HeaderStyle.Render("No results found") + "\n" +
			SubtleStyle.Render("No results match the filter criteria. Clear all filters and try again.") + "\n" +
			InfoStyle.Render("[c] Clear all filters")
		return BoxStyle.Render(body)
	}
	return BoxStyle.Render(SubtleStyle.Render("No records"))
}

func (m *TableModel[R]) renderStatus() string {
	if m.status == "" {
		return ""
	}
	return InfoStyle.Render(m.status)
}

func (m *TableModel[R]) renderHelp() string {
	help := "[/] Search  [o] Scope  [f] Filter  [c] Clear  [s/S] Sort  [1-9] Sort column  " +
		"[←→] Page  [+] Per page  [space] Select  [b] Bulk  [.] Actions  [d] Delete"
	if m.opts.NewRecord != nil {
		help += "  [a] Add"
	}
	if m.opts.Open != nil {
		help += "  [enter] Open"
	}
	if m.opts.Back {
		help += "  [esc] Back"
	}
	return SubtleStyle.Render(help + "  [q] Quit")
}

// Columns returns the column count including the checkbox column.
func (m *TableModel[R]) Columns() int {
	return len(m.ctrl.Schema().Columns) + 1
}

// String describes the screen for logs.
func (m *TableModel[R]) String() string {
	return m.title + " (" + strconv.Itoa(m.view.TotalMatched) + " matched)"
}
