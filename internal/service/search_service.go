package service

import (
	"context"
	"fmt"
	"sort"

	"regboard-be/internal/dto"
	"regboard-be/internal/repository/unitofwork"
	"regboard-be/pkg/embedding"
	"regboard-be/pkg/events"
	pktNats "regboard-be/pkg/nats"
	"regboard-be/pkg/store"
)

const (
	// DefaultMatchCount caps a search that does not ask for a count.
	DefaultMatchCount = 10
	// DefaultMatchThreshold is the minimum similarity kept, balanced for recall.
	DefaultMatchThreshold = 0.35
)

type ISearchService interface {
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type searchService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pktNats.Publisher
}

func NewSearchService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
) ISearchService {
	return &searchService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
	}
}

// Search embeds the query once and ranks it against the corpus. With no
// doc_type filter both tables are searched and the merged list is re-sorted,
// so a regulation can outrank a document chunk.
func (c *searchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	count := req.MatchCount
	if count <= 0 {
		count = DefaultMatchCount
	}
	threshold := DefaultMatchThreshold
	if req.MatchThreshold != nil {
		threshold = *req.MatchThreshold
	}

	embeddingRes, err := c.embeddingProvider.Generate(req.Query, embedding.TaskQuery)
	if err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	results := make([]dto.SearchResult, 0, count)

	if req.DocType == "" || req.DocType == store.DocTypeDocument {
		scoredDocs, err := uow.DocumentRepository().SearchSimilarWithScore(ctx, embeddingRes.Values, count, threshold)
		if err != nil {
			return nil, err
		}
		for _, sd := range scoredDocs {
			results = append(results, dto.SearchResult{
				Id:         sd.Document.Id,
				DocType:    store.DocTypeDocument,
				Content:    sd.Document.Content,
				Source:     sd.Document.Source,
				ChunkIndex: sd.Document.ChunkIndex,
				Similarity: sd.Similarity,
			})
		}
	}

	if req.DocType == "" || req.DocType == store.DocTypeRegulation {
		scoredRegs, err := uow.RegulationRepository().SearchSimilarWithScore(ctx, embeddingRes.Values, count, threshold)
		if err != nil {
			return nil, err
		}
		for _, sr := range scoredRegs {
			results = append(results, dto.SearchResult{
				Id:         sr.Regulation.Id,
				DocType:    store.DocTypeRegulation,
				Content:    sr.Regulation.Content,
				Source:     sr.Regulation.Source,
				ArticleNo:  sr.Regulation.ArticleNo,
				Similarity: sr.Similarity,
			})
		}
	}

	// Each repository returns its side already ordered; the stable sort
	// restores a single global order across both corpora.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > count {
		results = results[:count]
	}

	if c.eventPublisher != nil {
		evt := events.NewSearchPerformed(req.Query, len(results))
		// Audit is auxiliary; log the failure and keep the results.
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SEARCH_PERFORMED event: %v\n", err)
		}
	}

	return &dto.SearchResponse{
		Success:            true,
		Data:               results,
		Query:              req.Query,
		EmbeddingDimension: embeddingRes.Dimension(),
	}, nil
}
