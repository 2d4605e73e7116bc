package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regboard-be/pkg/genui"
)

func TestRenderButton(t *testing.T) {
	r := New(nil)

	html := r.Render(genui.NewButton("Search").WithVariant(genui.VariantDestructive))
	assert.Contains(t, html, `class="ui-button ui-button--destructive"`)
	assert.Contains(t, html, ">Search</button>")
}

func TestRenderEscapesText(t *testing.T) {
	r := New(nil)

	html := r.Render(genui.NewButton(`<script>alert("x")</script>`))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderUnknownKindPlaceholder(t *testing.T) {
	r := New(nil)

	html := r.Render(&genui.UIComponent{Kind: "sparkle"})
	assert.Contains(t, html, `class="ui-unknown"`)
	assert.Contains(t, html, "unknown component kind: sparkle")
}

func TestRenderNilComponentPlaceholder(t *testing.T) {
	r := New(nil)

	html := r.Render(nil)
	assert.Contains(t, html, `class="ui-unknown"`)
}

func TestRenderDataTableGrid(t *testing.T) {
	// N columns and M rows must come out as exactly M body rows with N cells
	// each, both in given order.
	columns := []genui.Column{
		{Key: "source", Header: "Source"},
		{Key: "article_no", Header: "Article"},
		{Key: "similarity", Header: "Score"},
	}
	var rows []map[string]any
	for i := 0; i < 4; i++ {
		rows = append(rows, map[string]any{
			"source":     fmt.Sprintf("doc-%d.txt", i),
			"article_no": fmt.Sprintf("Art. %d", i),
			"similarity": float64(i), // no "score" cell on purpose below
		})
	}
	rows[3] = map[string]any{"source": "doc-3.txt"} // sparse row

	r := New(nil)
	html := r.Render(genui.NewDataTable(columns, rows))

	body := html[strings.Index(html, "<tbody>"):]
	assert.Equal(t, 4, strings.Count(body, "<tr>"))
	assert.Equal(t, 12, strings.Count(body, "<td>"))

	// Order check: row 0's cells appear left to right.
	first := body[:strings.Index(body, "</tr>")]
	srcIdx := strings.Index(first, "doc-0.txt")
	artIdx := strings.Index(first, "Art. 0")
	require.True(t, srcIdx >= 0 && artIdx >= 0)
	assert.Less(t, srcIdx, artIdx)

	// Sparse row: missing values render as empty cells.
	lastRow := body[strings.LastIndex(body, "<tr>"):]
	assert.Contains(t, lastRow, "doc-3.txt")
	assert.Contains(t, lastRow, "<td></td>")
}

func TestRenderDataTableHeaders(t *testing.T) {
	r := New(nil)
	html := r.Render(genui.NewDataTable(
		[]genui.Column{{Key: "content", Header: "Content", Sortable: true}},
		nil,
	))

	assert.Contains(t, html, `<th data-key="content" data-sortable="true">Content</th>`)
	assert.Contains(t, html, "<tbody></tbody>")
}

func TestRenderCardRecursesIntoSlots(t *testing.T) {
	table := genui.NewDataTable([]genui.Column{{Key: "id", Header: "ID"}}, nil)
	card, err := genui.NewCard(genui.CardProps{
		Title:       "Regulations",
		Description: "Latest chunks",
		Content:     genui.ComponentSlot(table),
		Footer:      genui.TextSlot("50 rows max"),
	})
	require.NoError(t, err)

	r := New(nil)
	html := r.Render(card)

	assert.Contains(t, html, "<h3>Regulations</h3>")
	assert.Contains(t, html, "ui-data-table")
	assert.Contains(t, html, `<div class="ui-card__footer">50 rows max</div>`)
}

func TestRenderDialogRecursesIntoTriggerAndContent(t *testing.T) {
	dialog, err := genui.NewDialog(genui.DialogProps{
		Title:       "Edit Document",
		Trigger:     genui.NewButton("Edit"),
		Content:     genui.NewForm(genui.FormField{Name: "content", Label: "Content", Type: genui.FieldTextarea}),
		ConfirmText: "Save",
	})
	require.NoError(t, err)

	r := New(nil)
	html := r.Render(dialog)

	assert.Contains(t, html, "<h2>Edit Document</h2>")
	assert.Contains(t, html, ">Edit</button>")
	assert.Contains(t, html, "<textarea")
	assert.Contains(t, html, `data-dialog="confirm">Save</button>`)
	assert.Contains(t, html, `data-dialog="cancel">Cancel</button>`)
}

func TestRenderFormFields(t *testing.T) {
	form := genui.NewForm(
		genui.FormField{Name: "query", Label: "Query", Type: genui.FieldText, Placeholder: "search...", Required: true},
		genui.FormField{Name: "doc_type", Label: "Type", Type: genui.FieldSelect, Options: []genui.FieldOption{
			{Value: "document", Label: "Document"},
			{Value: "regulation", Label: "Regulation"},
		}},
	)

	r := New(nil)
	html := r.Render(form)

	assert.Contains(t, html, `<input name="query" type="text" placeholder="search..." required/>`)
	assert.Contains(t, html, `<select name="doc_type">`)
	assert.Contains(t, html, `<option value="regulation">Regulation</option>`)
	assert.Contains(t, html, `type="submit"`)
}

func TestRenderChartDataIsland(t *testing.T) {
	chart := genui.NewChart(genui.ChartProps{
		Type:  genui.ChartBar,
		Title: "Chunks per source",
		Data:  []map[string]any{{"source": "gdpr.txt", "count": 12}},
		XKey:  "source",
		YKey:  "count",
	})

	r := New(nil)
	html := r.Render(chart)

	assert.Contains(t, html, "ui-chart--bar")
	assert.Contains(t, html, `data-x-key="source"`)
	assert.Contains(t, html, `<figcaption>Chunks per source</figcaption>`)
	assert.Contains(t, html, `<script type="application/json">`)
	assert.Contains(t, html, `"count":12`)
}

func TestRenderActionAttributes(t *testing.T) {
	button := genui.NewButton("Refresh").Bind(genui.ActionClick, "refresh_documents", map[string]any{"limit": 50})

	r := New(nil)
	html := r.Render(button)
	assert.Contains(t, html, `data-on-click="refresh_documents"`)
	// Parameters never leak into the markup.
	assert.NotContains(t, html, "50")
}

func TestRenderChildrenInOrder(t *testing.T) {
	card, err := genui.NewCard(genui.CardProps{Title: "Badges", Content: genui.TextSlot("")})
	require.NoError(t, err)
	require.NoError(t, card.AppendChild(genui.NewBadge("first")))
	require.NoError(t, card.AppendChild(genui.NewBadge("second")))

	r := New(nil)
	html := r.Render(card)

	assert.Less(t, strings.Index(html, "first"), strings.Index(html, "second"))
}
