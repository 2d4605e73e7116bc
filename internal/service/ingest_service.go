package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"regboard-be/internal/entity"
	"regboard-be/internal/repository/unitofwork"
	"regboard-be/pkg/embedding"
	"regboard-be/pkg/events"
	pktNats "regboard-be/pkg/nats"
	"regboard-be/pkg/utils"

	"github.com/google/uuid"
)

// Chunking parameters for document ingestion.
// ChunkSize: 1500 chars (approx 375 tokens), overlap: 200 chars.
const (
	ingestChunkSize    = 1500
	ingestChunkOverlap = 200
)

type IIngestService interface {
	IngestDocument(ctx context.Context, source string, content string, metadata map[string]any) (int, error)
	IngestRegulation(ctx context.Context, source string, articleNo string, content string) error
}

type ingestService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pktNats.Publisher
}

func NewIngestService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
) IIngestService {
	return &ingestService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
	}
}

// IngestDocument splits the content, embeds every chunk, and stores the batch
// in one transaction. It returns the number of chunks written. Re-ingesting a
// source that is already loaded fails with contract.ErrDuplicateKey.
func (cs *ingestService) IngestDocument(ctx context.Context, source string, content string, metadata map[string]any) (int, error) {
	chunks := utils.SplitText(content, ingestChunkSize, ingestChunkOverlap)
	if len(chunks) == 0 {
		log.Printf("[WARN] Source %s has no content, nothing ingested", source)
		return 0, nil
	}
	log.Printf("[INFO] Source %s split into %d chunks", source, len(chunks))

	docs := make([]*entity.Document, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, embedding.TaskDocument)
		if err != nil {
			return 0, fmt.Errorf("embed chunk %d of %s: %w", i, source, err)
		}

		docs = append(docs, &entity.Document{
			Id:         uuid.New(),
			Content:    chunk,
			Source:     source,
			ChunkIndex: i,
			Metadata:   metadata,
			Embedding:  res.Values,
			CreatedAt:  time.Now(),
		})
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	if err := uow.DocumentRepository().CreateBulk(ctx, docs); err != nil {
		return 0, err
	}
	if err := uow.Commit(); err != nil {
		return 0, err
	}

	if cs.eventPublisher != nil {
		evt := events.NewDocumentIngested(source, len(docs))
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish DOCUMENT_INGESTED event: %v\n", err)
		}
	}

	log.Printf("[SUCCESS] Ingested %d chunks from %s", len(docs), source)
	return len(docs), nil
}

// IngestRegulation stores one article with its embedding. Articles are small
// enough to embed whole, so no splitting happens here.
func (cs *ingestService) IngestRegulation(ctx context.Context, source string, articleNo string, content string) error {
	res, err := cs.embeddingProvider.Generate(content, embedding.TaskDocument)
	if err != nil {
		return fmt.Errorf("embed article %s of %s: %w", articleNo, source, err)
	}

	reg := &entity.Regulation{
		Id:        uuid.New(),
		Content:   content,
		Source:    source,
		ArticleNo: articleNo,
		Embedding: res.Values,
		CreatedAt: time.Now(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.RegulationRepository().Create(ctx, reg); err != nil {
		return err
	}

	if cs.eventPublisher != nil {
		evt := events.NewDocumentIngested(source, 1)
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish DOCUMENT_INGESTED event: %v\n", err)
		}
	}

	return nil
}
