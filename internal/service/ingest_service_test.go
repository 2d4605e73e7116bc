package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regboard-be/pkg/embedding"
)

func TestIngestDocumentSplitsAndStores(t *testing.T) {
	factory, docs, _ := newFakeFactory()
	embedder := &fakeEmbedder{}
	svc := NewIngestService(factory, embedder, nil)

	content := strings.TrimSpace(strings.Repeat("regulation paragraph text ", 200))
	metadata := map[string]any{"path": "corpus/gdpr.txt", "bytes": len(content)}

	count, err := svc.IngestDocument(context.Background(), "gdpr.txt", content, metadata)
	require.NoError(t, err)
	require.Greater(t, count, 1, "long content must split into several chunks")
	require.Len(t, docs.created, count)

	for i, doc := range docs.created {
		assert.Equal(t, i, doc.ChunkIndex)
		assert.Equal(t, "gdpr.txt", doc.Source)
		assert.Equal(t, metadata, doc.Metadata)
		assert.Len(t, doc.Embedding, embedding.Dimension)
		assert.NotEmpty(t, doc.Content)
	}

	assert.Equal(t, count, embedder.calls)
	assert.Equal(t, embedding.TaskDocument, embedder.lastTask)

	uow := factory.uow
	assert.Equal(t, 1, uow.began, "chunks must be written inside one transaction")
	assert.Equal(t, 1, uow.committed)
}

func TestIngestDocumentEmptyContent(t *testing.T) {
	factory, docs, _ := newFakeFactory()
	svc := NewIngestService(factory, &fakeEmbedder{}, nil)

	count, err := svc.IngestDocument(context.Background(), "empty.txt", "   \n ", nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, docs.created)
	assert.Zero(t, factory.uow.began)
}

func TestIngestDocumentEmbedFailure(t *testing.T) {
	factory, docs, _ := newFakeFactory()
	embedder := &fakeEmbedder{err: errors.New("ollama down")}
	svc := NewIngestService(factory, embedder, nil)

	_, err := svc.IngestDocument(context.Background(), "gdpr.txt", "short content", nil)
	require.Error(t, err)
	assert.Empty(t, docs.created)
	assert.Zero(t, factory.uow.began, "nothing must be written when embedding fails")
}

func TestIngestRegulation(t *testing.T) {
	factory, _, regs := newFakeFactory()
	embedder := &fakeEmbedder{}
	svc := NewIngestService(factory, embedder, nil)

	err := svc.IngestRegulation(context.Background(), "GDPR", "17", "right to erasure")
	require.NoError(t, err)

	require.Len(t, regs.created, 1)
	assert.Equal(t, "GDPR", regs.created[0].Source)
	assert.Equal(t, "17", regs.created[0].ArticleNo)
	assert.Equal(t, "right to erasure", regs.created[0].Content)
	assert.Len(t, regs.created[0].Embedding, embedding.Dimension)

	assert.Equal(t, embedding.TaskDocument, embedder.lastTask)
}
