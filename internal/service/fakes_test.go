package service

import (
	"context"

	"regboard-be/internal/entity"
	"regboard-be/internal/repository/contract"
	"regboard-be/internal/repository/specification"
	"regboard-be/internal/repository/unitofwork"
	"regboard-be/pkg/embedding"

	"github.com/google/uuid"
)

// In-memory unit of work so service tests run without Postgres.

type fakeDocumentRepo struct {
	findOneResult *entity.Document
	findAllResult []*entity.Document
	scored        []*contract.ScoredDocument
	err           error

	created       []*entity.Document
	updated       []*entity.Document
	deleted       []uuid.UUID
	findAllSpecs  []specification.Specification
	searchCalls   int
	lastLimit     int
	lastThreshold float64
}

func (f *fakeDocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, doc)
	return nil
}

func (f *fakeDocumentRepo) CreateBulk(ctx context.Context, docs []*entity.Document) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, docs...)
	return nil
}

func (f *fakeDocumentRepo) Update(ctx context.Context, doc *entity.Document) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, doc)
	return nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeDocumentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	return f.findOneResult, f.err
}

func (f *fakeDocumentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	f.findAllSpecs = specs
	return f.findAllResult, f.err
}

func (f *fakeDocumentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.findAllResult)), f.err
}

func (f *fakeDocumentRepo) SearchSimilarWithScore(ctx context.Context, emb []float32, limit int, threshold float64) ([]*contract.ScoredDocument, error) {
	f.searchCalls++
	f.lastLimit = limit
	f.lastThreshold = threshold
	return f.scored, f.err
}

type fakeRegulationRepo struct {
	findOneResult *entity.Regulation
	findAllResult []*entity.Regulation
	scored        []*contract.ScoredRegulation
	err           error

	created       []*entity.Regulation
	updated       []*entity.Regulation
	deleted       []uuid.UUID
	findAllSpecs  []specification.Specification
	searchCalls   int
	lastLimit     int
	lastThreshold float64
}

func (f *fakeRegulationRepo) Create(ctx context.Context, reg *entity.Regulation) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, reg)
	return nil
}

func (f *fakeRegulationRepo) CreateBulk(ctx context.Context, regs []*entity.Regulation) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, regs...)
	return nil
}

func (f *fakeRegulationRepo) Update(ctx context.Context, reg *entity.Regulation) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, reg)
	return nil
}

func (f *fakeRegulationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRegulationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Regulation, error) {
	return f.findOneResult, f.err
}

func (f *fakeRegulationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Regulation, error) {
	f.findAllSpecs = specs
	return f.findAllResult, f.err
}

func (f *fakeRegulationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.findAllResult)), f.err
}

func (f *fakeRegulationRepo) SearchSimilarWithScore(ctx context.Context, emb []float32, limit int, threshold float64) ([]*contract.ScoredRegulation, error) {
	f.searchCalls++
	f.lastLimit = limit
	f.lastThreshold = threshold
	return f.scored, f.err
}

type fakeUow struct {
	docs *fakeDocumentRepo
	regs *fakeRegulationRepo

	began      int
	committed  int
	rolledBack int
}

func (f *fakeUow) Begin(ctx context.Context) error { f.began++; return nil }
func (f *fakeUow) Commit() error                   { f.committed++; return nil }
func (f *fakeUow) Rollback() error                 { f.rolledBack++; return nil }

func (f *fakeUow) DocumentRepository() contract.DocumentRepository     { return f.docs }
func (f *fakeUow) RegulationRepository() contract.RegulationRepository { return f.regs }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

func newFakeFactory() (*fakeUowFactory, *fakeDocumentRepo, *fakeRegulationRepo) {
	docs := &fakeDocumentRepo{}
	regs := &fakeRegulationRepo{}
	return &fakeUowFactory{uow: &fakeUow{docs: docs, regs: regs}}, docs, regs
}

// fakeEmbedder hands back a fixed unit vector and records the last call.
type fakeEmbedder struct {
	vector []float32
	err    error

	calls    int
	lastText string
	lastTask string
}

func (f *fakeEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.calls++
	f.lastText = text
	f.lastTask = taskType
	if f.err != nil {
		return nil, f.err
	}
	vec := f.vector
	if vec == nil {
		vec = make([]float32, embedding.Dimension)
		vec[0] = 1
	}
	return &embedding.EmbeddingResponse{Values: vec}, nil
}
