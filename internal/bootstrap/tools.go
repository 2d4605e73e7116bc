package bootstrap

import (
	"context"
	"fmt"

	"regboard-be/internal/dto"
	"regboard-be/internal/service"
	"regboard-be/pkg/apperror"
	"regboard-be/pkg/genui/render"
	"regboard-be/pkg/tools"

	"github.com/google/uuid"
)

// registerTools binds every declared tool to its service call. The catalog is
// the allowlist, so a tool missing a binding here fails at startup instead of
// at dispatch time.
func registerTools(
	registry *tools.Registry,
	searchService service.ISearchService,
	documentService service.IDocumentService,
	dashboardService service.IDashboardService,
) error {
	bindings := map[string]tools.Handler{
		"search_documents":    searchDocumentsTool(searchService, dashboardService),
		"update_document":     updateDocumentTool(documentService),
		"delete_document":     deleteDocumentTool(documentService),
		"refresh_documents":   refreshDocumentsTool(dashboardService),
		"refresh_regulations": refreshRegulationsTool(dashboardService),
		"reset_dashboard":     resetDashboardTool(dashboardService),
	}

	for name, handler := range bindings {
		if err := registry.Bind(name, handler); err != nil {
			return err
		}
	}
	return nil
}

// searchDocumentsTool runs a semantic search. With a session id the search
// goes through the session store, so the dashboard state and its live
// subscribers pick the results up; without one it returns the results
// directly.
func searchDocumentsTool(search service.ISearchService, dashboard service.IDashboardService) tools.Handler {
	return func(ctx context.Context, params map[string]any) (any, error) {
		query := stringParam(params, "query")
		if query == "" {
			query = stringParam(formValues(params), "query")
		}
		if query == "" {
			return nil, &apperror.ValidationError{Errors: []string{"missing query"}}
		}
		limit := intParam(params, "limit")

		if sid := stringParam(params, "session_id"); sid != "" {
			return dashboard.Search(ctx, sid, &dto.DashboardSearchRequest{Query: query, Limit: limit})
		}

		res, err := search.Search(ctx, &dto.SearchRequest{
			Query:      query,
			MatchCount: limit,
			DocType:    stringParam(params, "doc_type"),
		})
		if err != nil {
			return nil, err
		}
		return res.Data, nil
	}
}

func updateDocumentTool(documents service.IDocumentService) tools.Handler {
	return func(ctx context.Context, params map[string]any) (any, error) {
		values := formValues(params)

		idStr := stringParam(params, "id")
		if idStr == "" {
			idStr = stringParam(values, "id")
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, &apperror.ValidationError{Errors: []string{"id must be a UUID"}}
		}

		content := stringParam(values, "content")
		if content == "" {
			return nil, &apperror.ValidationError{Errors: []string{"missing content"}}
		}

		res, err := documents.Update(ctx, &dto.UpdateDocumentRequest{
			Id:                  id,
			Content:             content,
			RegenerateEmbedding: boolParam(params, "regenerate_embedding"),
		})
		if err != nil {
			return nil, err
		}
		if res == nil {
			return nil, fmt.Errorf("document not found: %s", id)
		}
		return res, nil
	}
}

func deleteDocumentTool(documents service.IDocumentService) tools.Handler {
	return func(ctx context.Context, params map[string]any) (any, error) {
		id, err := uuid.Parse(stringParam(params, "id"))
		if err != nil {
			return nil, &apperror.ValidationError{Errors: []string{"id must be a UUID"}}
		}

		if err := documents.Delete(ctx, id); err != nil {
			return nil, err
		}
		return map[string]any{"deleted": id.String()}, nil
	}
}

func refreshDocumentsTool(dashboard service.IDashboardService) tools.Handler {
	return func(ctx context.Context, params map[string]any) (any, error) {
		id, s, err := dashboard.Session(ctx, stringParam(params, "session_id"))
		if err != nil {
			return nil, err
		}
		s.FetchDocuments(ctx)
		return &dto.DashboardStateResponse{SessionId: id, State: s.State()}, nil
	}
}

func refreshRegulationsTool(dashboard service.IDashboardService) tools.Handler {
	return func(ctx context.Context, params map[string]any) (any, error) {
		id, s, err := dashboard.Session(ctx, stringParam(params, "session_id"))
		if err != nil {
			return nil, err
		}
		s.FetchRegulations(ctx)
		return &dto.DashboardStateResponse{SessionId: id, State: s.State()}, nil
	}
}

func resetDashboardTool(dashboard service.IDashboardService) tools.Handler {
	return func(ctx context.Context, params map[string]any) (any, error) {
		return dashboard.Reset(ctx, stringParam(params, "session_id"))
	}
}

func stringParam(params map[string]any, key string) string {
	v, _ := params[key].(string)
	return v
}

func intParam(params map[string]any, key string) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func boolParam(params map[string]any, key string) bool {
	v, _ := params[key].(bool)
	return v
}

func formValues(params map[string]any) map[string]any {
	values, _ := params[render.FormDataKey].(map[string]any)
	return values
}
