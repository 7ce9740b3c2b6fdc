package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/contentview/internal/listview"
)

// Table keys.
const (
	TableContent      = "content"
	TableTemplates    = "templates"
	TableRepositories = "repositories"
	TablePopular      = "popular"
	TableSystems      = "systems"
	TablePackages     = "packages"
)

// ErrUnknownTable is returned when a table key is not registered.
var ErrUnknownTable = errors.New("unknown table")

// TableInfo summarises a table for listings.
type TableInfo struct {
	Key         string   `json:"key"         yaml:"key"`
	Title       string   `json:"title"       yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Columns     []string `json:"columns"     yaml:"columns"`
	Rows        int      `json:"rows"        yaml:"rows"`
}

// Page is one query result rendered to text cells, independent of the record
// type. Items holds the typed records of the page for structured output.
type Page struct {
	Table         string              `json:"table"          yaml:"table"`
	Columns       []string            `json:"columns"        yaml:"columns"`
	Rows          [][]string          `json:"-"              yaml:"-"`
	IDs           []string            `json:"ids"            yaml:"ids"`
	Items         any                 `json:"items"          yaml:"items"`
	TotalMatched  int                 `json:"total_matched"  yaml:"total_matched"`
	Meta          listview.PageMeta   `json:"page"           yaml:"page"`
	PageState     listview.TriState   `json:"page_state"     yaml:"page_state"`
	FilteredState listview.TriState   `json:"filtered_state" yaml:"filtered_state"`
	SelectedTotal int                 `json:"selected_total" yaml:"selected_total"`
	Query         listview.QueryState `json:"query"          yaml:"query"`
}

// Querier runs list queries against a table without exposing its record type.
type Querier interface {
	Info() TableInfo
	ColumnIndex(label string) (int, bool)
	Sortable(column int) bool
	Searchable(column int) bool
	Query(q listview.QueryState, selected []string) Page
}

// Table is a named set of records with its schema.
type Table[R any] struct {
	Key         string
	Title       string
	Description string
	Records     []R
	Pipeline    *listview.Pipeline[R]
}

// Info implements Querier.
func (t *Table[R]) Info() TableInfo {
	return TableInfo{
		Key:         t.Key,
		Title:       t.Title,
		Description: t.Description,
		Columns:     t.Pipeline.Schema().Labels(),
		Rows:        len(t.Records),
	}
}

// ColumnIndex resolves a column by label or by 0-based index.
func (t *Table[R]) ColumnIndex(label string) (int, bool) {
	schema := t.Pipeline.Schema()
	if i, ok := schema.ColumnIndex(label); ok {
		return i, true
	}
	if i, err := strconv.Atoi(strings.TrimSpace(label)); err == nil {
		if _, ok := schema.Column(i); ok {
			return i, true
		}
	}
	return -1, false
}

// Sortable reports whether column can be sorted.
func (t *Table[R]) Sortable(column int) bool {
	c, ok := t.Pipeline.Schema().Column(column)
	return ok && c.Sortable
}

// Searchable reports whether column takes part in search.
func (t *Table[R]) Searchable(column int) bool {
	c, ok := t.Pipeline.Schema().Column(column)
	return ok && c.Searchable
}

// Controller returns a list controller over a copy of the table's records.
func (t *Table[R]) Controller(pageSize int) *listview.Controller[R] {
	records := make([]R, len(t.Records))
	copy(records, t.Records)
	return listview.NewController(t.Pipeline, records, pageSize)
}

// Query implements Querier. selected seeds the selection so its tri-state can
// be reported.
func (t *Table[R]) Query(q listview.QueryState, selected []string) Page {
	result := t.Pipeline.Query(t.Records, q, listview.NewSelection(selected...))
	schema := t.Pipeline.Schema()

	rows := make([][]string, len(result.Items))
	for i, r := range result.Items {
		rows[i] = Cells(schema, r)
	}

	q.Page = result.Page.CurrentPage
	q.PageSize = result.Page.PageSize
	return Page{
		Table:         t.Key,
		Columns:       schema.Labels(),
		Rows:          rows,
		IDs:           result.PageIDs,
		Items:         result.Items,
		TotalMatched:  result.TotalMatched,
		Meta:          result.Page,
		PageState:     result.PageState,
		FilteredState: result.FilteredState,
		SelectedTotal: result.SelectedTotal,
		Query:         q,
	}
}

// Cells renders every column of r as text.
func Cells[R any](schema listview.Schema[R], r R) []string {
	cells := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		cells[i] = c.Value(r).String()
	}
	return cells
}

// Registry holds every table, built once from a seed.
type Registry struct {
	Content      *Table[Template]
	Templates    *Table[Template]
	Repositories *Table[Repository]
	Popular      *Table[Repository]
	Systems      *Table[System]
	Packages     *Table[Package]

	order   []string
	queries map[string]Querier
}

// Options configure NewRegistry.
type Options struct {
	// Seed drives the generated tables.
	Seed uint64
	// Now anchors generated introspection dates. Zero means time.Now.
	Now time.Time
	// Comparators is shared by every table. Nil collates in English.
	Comparators *listview.Registry
	Logger      zerolog.Logger
}

// NewRegistry builds every table.
func NewRegistry(opts Options) *Registry {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	popularRNG := rand.New(rand.NewPCG(opts.Seed, 1)) //nolint:gosec // Sample data, not security sensitive.
	packageRNG := rand.New(rand.NewPCG(opts.Seed, 2)) //nolint:gosec // Sample data, not security sensitive.

	r := &Registry{
		Content: newTable(TableContent, "Content templates",
			"Templates with their assigned hosts", ContentTemplates(), ContentSchema(), opts),
		Templates: newTable(TableTemplates, "Templates",
			"Content templates available for systems", Templates(), TemplateSchema(), opts),
		Repositories: newTable(TableRepositories, "Repositories",
			"Custom repositories and their introspection state", Repositories(), RepositorySchema(TableRepositories), opts),
		Popular: newTable(TablePopular, "Popular repositories",
			"Frequently used public repositories", PopularRepositories(popularRNG, now), RepositorySchema(TablePopular), opts),
		Systems: newTable(TableSystems, "Systems",
			"Systems assigned to a template", Systems(), SystemSchema(), opts),
		Packages: newTable(TablePackages, "Packages",
			"Installed packages and available upgrades", Packages(packageRNG, PackageCount), PackageSchema(), opts),
	}

	r.order = []string{TableContent, TableTemplates, TableRepositories, TablePopular, TableSystems, TablePackages}
	r.queries = map[string]Querier{
		TableContent:      r.Content,
		TableTemplates:    r.Templates,
		TableRepositories: r.Repositories,
		TablePopular:      r.Popular,
		TableSystems:      r.Systems,
		TablePackages:     r.Packages,
	}
	return r
}

func newTable[R any](key, title, description string, records []R, schema listview.Schema[R], opts Options) *Table[R] {
	return &Table[R]{
		Key:         key,
		Title:       title,
		Description: description,
		Records:     records,
		Pipeline:    listview.NewPipeline(schema, opts.Comparators, opts.Logger),
	}
}

// Names returns the table keys in display order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Lookup returns the table registered under key.
func (r *Registry) Lookup(key string) (Querier, error) {
	q, ok := r.queries[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTable, key, strings.Join(r.order, ", "))
	}
	return q, nil
}

// Describe returns the summary of the table registered under key.
func (r *Registry) Describe(key string) (TableInfo, error) {
	q, err := r.Lookup(key)
	if err != nil {
		return TableInfo{}, err
	}
	return q.Info(), nil
}

// Infos summarises every table in display order.
func (r *Registry) Infos() []TableInfo {
	infos := make([]TableInfo, 0, len(r.order))
	for _, key := range r.order {
		infos = append(infos, r.queries[key].Info())
	}
	return infos
}
