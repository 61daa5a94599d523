package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ListingRow is one row of a listing table. ActionsHTML carries pre-rendered
// action anchors and is written without further escaping.
type ListingRow struct {
	ObjectID    string
	Cells       []string
	ActionsHTML string
}

// ListingView provides data for a listing page.
type ListingView struct {
	Heading      PageHeading
	Columns      []string
	ActionsLabel string
	Rows         []ListingRow
	EmptyMessage string
}

// ListingTable renders a listing as an HTML table with a trailing row
// actions column.
func ListingTable(view ListingView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<h1>`)
		b.WriteString(templ.EscapeString(view.Heading.Title))
		b.WriteString(`</h1>`)

		if len(view.Rows) == 0 {
			b.WriteString(`<p class="listing-empty">`)
			b.WriteString(templ.EscapeString(view.EmptyMessage))
			b.WriteString(`</p>`)
			_, err := io.WriteString(w, b.String())
			return err
		}

		b.WriteString(`<table class="listing"><thead><tr>`)
		for _, column := range view.Columns {
			b.WriteString(`<th>`)
			b.WriteString(templ.EscapeString(column))
			b.WriteString(`</th>`)
		}
		b.WriteString(`<th>`)
		b.WriteString(templ.EscapeString(view.ActionsLabel))
		b.WriteString(`</th>`)
		b.WriteString(`</tr></thead><tbody>`)

		for _, row := range view.Rows {
			b.WriteString(`<tr data-object-id="`)
			b.WriteString(templ.EscapeString(row.ObjectID))
			b.WriteString(`">`)
			for _, cell := range row.Cells {
				b.WriteString(`<td>`)
				b.WriteString(templ.EscapeString(cell))
				b.WriteString(`</td>`)
			}
			b.WriteString(`<td class="row-actions">`)
			b.WriteString(row.ActionsHTML)
			b.WriteString(`</td>`)
			b.WriteString(`</tr>`)
		}

		b.WriteString(`</tbody></table>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
