package service

import (
	"fmt"
	"strings"
	"time"

	"regboard-be/pkg/genui"
	"regboard-be/pkg/store"
)

const snippetLength = 160

// buildDashboardView assembles the server-rendered dashboard for one session:
// a search card, the result and corpus tables, session controls, and an edit
// dialog. Action bindings carry the session id so tool invocations land back
// on the same store.
func buildDashboardView(sessionID string, state store.State) (*genui.UIComponent, error) {
	sessionParams := map[string]any{"session_id": sessionID}

	searchForm := genui.NewForm(
		genui.FormField{
			Name:        "query",
			Label:       "Query",
			Type:        genui.FieldText,
			Placeholder: "Search the corpus",
			Required:    true,
		},
	).Bind(genui.ActionSubmit, "search_documents", sessionParams)

	searchCard, err := genui.NewCard(genui.CardProps{
		Title:       "Semantic search",
		Description: "Vector search over documents and regulations",
		Content:     genui.ComponentSlot(searchForm),
	})
	if err != nil {
		return nil, err
	}

	refreshDocs := genui.NewButton("Refresh documents").
		Bind(genui.ActionClick, "refresh_documents", sessionParams)
	refreshRegs := genui.NewButton("Refresh regulations").
		Bind(genui.ActionClick, "refresh_regulations", sessionParams)
	reset := genui.NewButton("Reset").
		WithVariant(genui.VariantDestructive).
		Bind(genui.ActionClick, "reset_dashboard", sessionParams)

	results := genui.NewDataTable(
		[]genui.Column{
			{Key: "doc_type", Header: "Type", Type: "badge"},
			{Key: "source", Header: "Source"},
			{Key: "content", Header: "Content"},
			{Key: "similarity", Header: "Similarity", Type: "number", Sortable: true},
		},
		resultRows(state.SearchResults),
	)

	documents := genui.NewDataTable(
		[]genui.Column{
			{Key: "source", Header: "Source"},
			{Key: "chunk_idx", Header: "Chunk", Type: "number"},
			{Key: "content", Header: "Content"},
			{Key: "created_at", Header: "Created", Type: "date", Sortable: true},
		},
		documentRows(state.Documents),
	)

	regulations := genui.NewDataTable(
		[]genui.Column{
			{Key: "source", Header: "Source"},
			{Key: "article_no", Header: "Article"},
			{Key: "content", Header: "Content"},
			{Key: "created_at", Header: "Created", Type: "date", Sortable: true},
		},
		regulationRows(state.Regulations),
	)

	editForm := genui.NewForm(
		genui.FormField{
			Name:     "id",
			Label:    "Document id",
			Type:     genui.FieldText,
			Required: true,
		},
		genui.FormField{
			Name:     "content",
			Label:    "Content",
			Type:     genui.FieldTextarea,
			Required: true,
		},
	).Bind(genui.ActionSubmit, "update_document", map[string]any{"regenerate_embedding": true})

	editDialog, err := genui.NewDialog(genui.DialogProps{
		Title:       "Edit document",
		Description: "Saving regenerates the chunk embedding",
		Trigger:     genui.NewButton("Edit document").WithVariant(genui.VariantOutline),
		Content:     editForm,
		ConfirmText: "Save",
	})
	if err != nil {
		return nil, err
	}

	root, err := genui.NewCard(genui.CardProps{
		Title:       "Regulation corpus",
		Description: "Documents and regulations with semantic search",
		Content:     genui.TextSlot(summaryLine(state)),
	})
	if err != nil {
		return nil, err
	}

	sections := []*genui.UIComponent{statusBadge(state)}
	if state.Error != "" {
		sections = append(sections,
			genui.NewAlert("Last action failed", state.Error).WithVariant(genui.VariantDestructive))
	}
	sections = append(sections, searchCard, refreshDocs, refreshRegs, reset,
		results, documents, regulations, editDialog)

	for _, section := range sections {
		if err := root.AppendChild(section); err != nil {
			return nil, err
		}
	}

	if res := genui.Validate(root); !res.Valid {
		return nil, fmt.Errorf("dashboard view failed validation: %s", strings.Join(res.Errors, "; "))
	}
	return root, nil
}

func summaryLine(state store.State) string {
	line := fmt.Sprintf("%d documents and %d regulations loaded", len(state.Documents), len(state.Regulations))
	if state.LastQuery != "" {
		line += fmt.Sprintf(", %d results for %q", len(state.SearchResults), state.LastQuery)
	}
	return line
}

func statusBadge(state store.State) *genui.UIComponent {
	switch {
	case state.IsLoading:
		return genui.NewBadge("Loading").WithVariant(genui.VariantSecondary)
	case state.IsSubscribed:
		return genui.NewBadge("Live")
	default:
		return genui.NewBadge("Offline").WithVariant(genui.VariantOutline)
	}
}

func resultRows(records []store.Record) []map[string]any {
	rows := make([]map[string]any, 0, len(records))
	for _, r := range records {
		row := map[string]any{
			"doc_type": r.DocType,
			"source":   r.Source,
			"content":  snippet(r.Content),
		}
		if r.Similarity != nil {
			row["similarity"] = *r.Similarity
		}
		rows = append(rows, row)
	}
	return rows
}

func documentRows(records []store.Record) []map[string]any {
	rows := make([]map[string]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]any{
			"source":     r.Source,
			"chunk_idx":  r.ChunkIndex,
			"content":    snippet(r.Content),
			"created_at": r.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows
}

func regulationRows(records []store.Record) []map[string]any {
	rows := make([]map[string]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]any{
			"source":     r.Source,
			"article_no": r.ArticleNo,
			"content":    snippet(r.Content),
			"created_at": r.CreatedAt.Format(time.RFC3339),
		})
	}
	return rows
}

// snippet shortens cell text so a chunk does not blow up the table layout.
func snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= snippetLength {
		return content
	}
	return string(runes[:snippetLength]) + "..."
}
