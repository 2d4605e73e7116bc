package service

import (
	"context"
	"fmt"
	"time"

	"regboard-be/internal/dto"
	"regboard-be/internal/entity"
	"regboard-be/internal/repository/specification"
	"regboard-be/internal/repository/unitofwork"
	"regboard-be/pkg/embedding"
	"regboard-be/pkg/events"
	pktNats "regboard-be/pkg/nats"
	"regboard-be/pkg/store"

	"github.com/google/uuid"
)

type IDocumentService interface {
	ListRecent(ctx context.Context, limit int, source string, query string) ([]dto.DocumentRow, error)
	Update(ctx context.Context, req *dto.UpdateDocumentRequest) (*dto.UpdateDocumentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pktNats.Publisher
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
) IDocumentService {
	return &documentService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
	}
}

func (c *documentService) ListRecent(ctx context.Context, limit int, source string, query string) ([]dto.DocumentRow, error) {
	if limit <= 0 || limit > store.DefaultPageSize {
		limit = store.DefaultPageSize
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	}
	if source != "" {
		specs = append(specs, specification.BySource{Source: source})
	}
	if query != "" {
		specs = append(specs, specification.ContentSearch{Query: query})
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.DocumentRow, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, documentRow(doc))
	}
	return rows, nil
}

// Update replaces a chunk's content and, when asked, regenerates its embedding
// so search stays consistent with the edit. A nil response means not found.
func (c *documentService) Update(ctx context.Context, req *dto.UpdateDocumentRequest) (*dto.UpdateDocumentResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	now := time.Now()
	doc.Content = req.Content
	doc.UpdatedAt = &now

	if req.RegenerateEmbedding {
		embeddingRes, err := c.embeddingProvider.Generate(doc.Content, embedding.TaskDocument)
		if err != nil {
			return nil, err
		}
		doc.Embedding = embeddingRes.Values
	}

	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	if c.eventPublisher != nil {
		evt := events.NewDocumentUpdated(doc.Id, doc.Source, req.RegenerateEmbedding)
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish DOCUMENT_UPDATED event: %v\n", err)
		}
	}

	return &dto.UpdateDocumentResponse{
		Success:              true,
		Data:                 documentRow(doc),
		EmbeddingRegenerated: req.RegenerateEmbedding,
	}, nil
}

func (c *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if doc == nil {
		return nil
	}

	if err := uow.DocumentRepository().Delete(ctx, id); err != nil {
		return err
	}

	if c.eventPublisher != nil {
		evt := events.NewDocumentDeleted(doc.Id, doc.Source)
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish DOCUMENT_DELETED event: %v\n", err)
		}
	}

	return nil
}

func documentRow(doc *entity.Document) dto.DocumentRow {
	return dto.DocumentRow{
		Id:         doc.Id,
		Content:    doc.Content,
		Source:     doc.Source,
		ChunkIndex: doc.ChunkIndex,
		Metadata:   doc.Metadata,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}
