package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regboard-be/internal/dto"
	"regboard-be/internal/entity"
	"regboard-be/internal/repository/specification"
	"regboard-be/pkg/embedding"
	"regboard-be/pkg/store"
)

func paginationOf(t *testing.T, specs []specification.Specification) specification.Pagination {
	t.Helper()
	for _, s := range specs {
		if p, ok := s.(specification.Pagination); ok {
			return p
		}
	}
	t.Fatal("no pagination spec applied")
	return specification.Pagination{}
}

func TestListRecentClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero becomes page size", limit: 0, want: store.DefaultPageSize},
		{name: "negative becomes page size", limit: -3, want: store.DefaultPageSize},
		{name: "over cap becomes page size", limit: 500, want: store.DefaultPageSize},
		{name: "in range kept", limit: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, docs, _ := newFakeFactory()
			svc := NewDocumentService(factory, &fakeEmbedder{}, nil)

			_, err := svc.ListRecent(context.Background(), tt.limit, "", "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, paginationOf(t, docs.findAllSpecs).Limit)
		})
	}
}

func TestListRecentFilters(t *testing.T) {
	factory, docs, _ := newFakeFactory()
	svc := NewDocumentService(factory, &fakeEmbedder{}, nil)

	_, err := svc.ListRecent(context.Background(), 10, "gdpr.txt", "breach")
	require.NoError(t, err)

	assert.Contains(t, docs.findAllSpecs, specification.BySource{Source: "gdpr.txt"})
	assert.Contains(t, docs.findAllSpecs, specification.ContentSearch{Query: "breach"})
	assert.Contains(t, docs.findAllSpecs, specification.OrderBy{Field: "created_at", Desc: true})
}

func TestUpdateMissingDocument(t *testing.T) {
	factory, docs, _ := newFakeFactory()
	svc := NewDocumentService(factory, &fakeEmbedder{}, nil)

	res, err := svc.Update(context.Background(), &dto.UpdateDocumentRequest{Id: uuid.New(), Content: "new"})
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Empty(t, docs.updated)
}

func TestUpdateRegeneratesEmbedding(t *testing.T) {
	factory, docs, _ := newFakeFactory()
	docs.findOneResult = &entity.Document{Id: uuid.New(), Content: "old", Source: "a.txt", Embedding: []float32{9, 9, 9}}

	embedder := &fakeEmbedder{vector: []float32{1, 2, 3}}
	svc := NewDocumentService(factory, embedder, nil)

	res, err := svc.Update(context.Background(), &dto.UpdateDocumentRequest{
		Id:                  docs.findOneResult.Id,
		Content:             "edited text",
		RegenerateEmbedding: true,
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Len(t, docs.updated, 1)
	assert.Equal(t, "edited text", docs.updated[0].Content)
	assert.Equal(t, []float32{1, 2, 3}, docs.updated[0].Embedding)
	assert.NotNil(t, docs.updated[0].UpdatedAt)

	assert.Equal(t, "edited text", embedder.lastText)
	assert.Equal(t, embedding.TaskDocument, embedder.lastTask)

	assert.True(t, res.Success)
	assert.True(t, res.EmbeddingRegenerated)
	assert.Equal(t, "edited text", res.Data.Content)
}

func TestUpdateKeepsEmbeddingUnlessAsked(t *testing.T) {
	factory, docs, _ := newFakeFactory()
	docs.findOneResult = &entity.Document{Id: uuid.New(), Content: "old", Embedding: []float32{9}}

	embedder := &fakeEmbedder{}
	svc := NewDocumentService(factory, embedder, nil)

	res, err := svc.Update(context.Background(), &dto.UpdateDocumentRequest{Id: docs.findOneResult.Id, Content: "edited"})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Zero(t, embedder.calls)
	require.Len(t, docs.updated, 1)
	assert.Equal(t, []float32{9}, docs.updated[0].Embedding)
	assert.False(t, res.EmbeddingRegenerated)
}

func TestDeleteMissingDocumentIsNoop(t *testing.T) {
	factory, docs, _ := newFakeFactory()
	svc := NewDocumentService(factory, &fakeEmbedder{}, nil)

	require.NoError(t, svc.Delete(context.Background(), uuid.New()))
	assert.Empty(t, docs.deleted)
}

func TestDeleteDocument(t *testing.T) {
	factory, docs, _ := newFakeFactory()
	id := uuid.New()
	docs.findOneResult = &entity.Document{Id: id, Source: "a.txt"}
	svc := NewDocumentService(factory, &fakeEmbedder{}, nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, []uuid.UUID{id}, docs.deleted)
}
