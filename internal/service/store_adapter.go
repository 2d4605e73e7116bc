package service

import (
	"context"

	"regboard-be/internal/dto"
	"regboard-be/internal/entity"
	"regboard-be/internal/repository/specification"
	"regboard-be/internal/repository/unitofwork"
	"regboard-be/pkg/store"
)

// corpusFetcher feeds dashboard stores from the corpus tables, newest first.
type corpusFetcher struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCorpusFetcher(uowFactory unitofwork.RepositoryFactory) store.Fetcher {
	return &corpusFetcher{uowFactory: uowFactory}
}

func (f *corpusFetcher) RecentDocuments(ctx context.Context, limit int) ([]store.Record, error) {
	uow := f.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	records := make([]store.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, documentRecord(doc))
	}
	return records, nil
}

func (f *corpusFetcher) RecentRegulations(ctx context.Context, limit int) ([]store.Record, error) {
	uow := f.uowFactory.NewUnitOfWork(ctx)
	regs, err := uow.RegulationRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	records := make([]store.Record, 0, len(regs))
	for _, reg := range regs {
		records = append(records, regulationRecord(reg))
	}
	return records, nil
}

// searchAdapter lets dashboard stores run the shared semantic search.
type searchAdapter struct {
	search ISearchService
}

func NewSearchAdapter(search ISearchService) store.Searcher {
	return &searchAdapter{search: search}
}

func (a *searchAdapter) Search(ctx context.Context, query string, limit int) ([]store.Record, error) {
	res, err := a.search.Search(ctx, &dto.SearchRequest{Query: query, MatchCount: limit})
	if err != nil {
		return nil, err
	}

	records := make([]store.Record, 0, len(res.Data))
	for _, r := range res.Data {
		similarity := r.Similarity
		records = append(records, store.Record{
			Id:         r.Id,
			DocType:    r.DocType,
			Content:    r.Content,
			Source:     r.Source,
			ChunkIndex: r.ChunkIndex,
			ArticleNo:  r.ArticleNo,
			Similarity: &similarity,
		})
	}
	return records, nil
}

func documentRecord(doc *entity.Document) store.Record {
	return store.Record{
		Id:         doc.Id,
		DocType:    store.DocTypeDocument,
		Content:    doc.Content,
		Source:     doc.Source,
		ChunkIndex: doc.ChunkIndex,
		Metadata:   doc.Metadata,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

func regulationRecord(reg *entity.Regulation) store.Record {
	return store.Record{
		Id:        reg.Id,
		DocType:   store.DocTypeRegulation,
		Content:   reg.Content,
		Source:    reg.Source,
		ArticleNo: reg.ArticleNo,
		CreatedAt: reg.CreatedAt,
		UpdatedAt: reg.UpdatedAt,
	}
}
