package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/rshade/contentview/internal/catalog"
	"github.com/rshade/contentview/internal/listview"
	"github.com/rshade/contentview/internal/tui"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// Column headers added before the table's own columns.
const (
	headerSelected = "SEL"
	headerID       = "ID"
)

// renderPage writes page in the requested format. selected holds the ids
// passed with --select, used to mark rows.
func renderPage(w io.Writer, format OutputFormat, page catalog.Page, selected []string) error {
	switch format {
	case OutputJSON:
		return renderJSON(w, page)
	case OutputYAML:
		return renderYAML(w, page)
	case OutputNDJSON:
		return renderPageNDJSON(w, page)
	case OutputTable:
		return renderPageStyled(w, page, selectedSet(selected))
	case OutputPlain:
		return renderPagePlain(w, page, selectedSet(selected))
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, format)
	}
}

func selectedSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func checkState(selected bool) listview.TriState {
	if selected {
		return listview.SelectedAll
	}
	return listview.SelectedNone
}

func rowMarker(selected bool) string {
	if selected {
		return "*"
	}
	return ""
}

// renderPagePlain renders the page as aligned plain text.
func renderPagePlain(w io.Writer, page catalog.Page, selected map[string]bool) error {
	if page.TotalMatched == 0 {
		_, err := fmt.Fprintln(w, emptyMessage(page))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	headers := append([]string{headerSelected, headerID}, page.Columns...)
	for i, h := range headers {
		headers[i] = strings.ToUpper(h)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for i, row := range page.Rows {
		cells := append([]string{rowMarker(selected[page.IDs[i]]), page.IDs[i]}, row...)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}

	_, err := fmt.Fprintln(w, "\n"+summaryLine(page))
	return err
}

// renderPageStyled renders the page with a lipgloss table.
func renderPageStyled(w io.Writer, page catalog.Page, selected map[string]bool) error {
	if page.TotalMatched == 0 {
		_, err := fmt.Fprintln(w, tui.WarningStyle.Render(emptyMessage(page)))
		return err
	}

	rows := make([][]string, len(page.Rows))
	for i, row := range page.Rows {
		rows[i] = append([]string{tui.Checkbox(checkState(selected[page.IDs[i]])), page.IDs[i]}, row...)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.SubtleStyle).
		Headers(append([]string{tui.Checkbox(page.PageState), headerID}, page.Columns...)...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.TableHeaderStyle.UnsetBorderBottom()
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	_, err := fmt.Fprintln(w, t.String()+"\n"+tui.SubtleStyle.Render(summaryLine(page)))
	return err
}

// summaryLine renders "1 - 20 of 50 · page 1/3 · 2 selected".
func summaryLine(page catalog.Page) string {
	m := page.Meta
	return fmt.Sprintf("%d - %d of %d · page %d/%d · %d selected (%s)",
		m.FirstItem, m.LastItem, m.TotalItems, m.CurrentPage, m.TotalPages, page.SelectedTotal, page.FilteredState)
}

func emptyMessage(page catalog.Page) string {
	if page.Query.IsFiltered() {
		return "No results found. No results match the filter criteria; clear all filters and try again."
	}
	return "No records."
}

// renderJSON renders v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// renderYAML renders v as YAML.
func renderYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd // Two-space indentation.
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}

// ndjsonSummary is the first line of NDJSON output.
type ndjsonSummary struct {
	Type string       `json:"type"`
	Page catalog.Page `json:"page"`
}

// ndjsonRow is one row of NDJSON output, keyed by column label.
type ndjsonRow struct {
	Type   string            `json:"type"`
	ID     string            `json:"id"`
	Values map[string]string `json:"values"`
}

// renderPageNDJSON writes a summary line followed by one line per row.
func renderPageNDJSON(w io.Writer, page catalog.Page) error {
	encoder := json.NewEncoder(w)

	summary := page
	summary.Items = nil
	if err := encoder.Encode(ndjsonSummary{Type: "summary", Page: summary}); err != nil {
		return fmt.Errorf("encoding NDJSON summary: %w", err)
	}

	for i, row := range page.Rows {
		values := make(map[string]string, len(row))
		for c, cell := range row {
			values[page.Columns[c]] = cell
		}
		if err := encoder.Encode(ndjsonRow{Type: "row", ID: page.IDs[i], Values: values}); err != nil {
			return fmt.Errorf("encoding NDJSON row: %w", err)
		}
	}
	return nil
}
