package implementation

import (
	"context"
	"errors"
	"fmt"
	"log"

	"regboard-be/internal/entity"
	"regboard-be/internal/mapper"
	"regboard-be/internal/model"
	"regboard-be/internal/repository/contract"
	"regboard-be/internal/repository/specification"
	"regboard-be/pkg/realtime"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	broker *realtime.Broker
	mapper *mapper.DocumentMapper
}

func NewDocumentRepository(db *gorm.DB, broker *realtime.Broker) contract.DocumentRepository {
	return &DocumentRepositoryImpl{
		db:     db,
		broker: broker,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// publishChange emits a row change on the broker. Publishing is best effort:
// the database write already succeeded, so failures are logged, not returned.
func (r *DocumentRepositoryImpl) publishChange(eventType realtime.EventType, newRow, oldRow any) {
	if r.broker == nil {
		return
	}
	evt, err := realtime.NewEvent(model.Document{}.TableName(), eventType, newRow, oldRow)
	if err != nil {
		log.Printf("[WARN] Failed to build %s change event: %v", eventType, err)
		return
	}
	if err := r.broker.Publish(evt); err != nil {
		log.Printf("[WARN] Failed to publish %s change event: %v", eventType, err)
	}
}

func (r *DocumentRepositoryImpl) Create(ctx context.Context, doc *entity.Document) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", contract.ErrDuplicateKey, err)
		}
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	r.publishChange(realtime.EventInsert, m, nil)
	return nil
}

func (r *DocumentRepositoryImpl) CreateBulk(ctx context.Context, docs []*entity.Document) error {
	if len(docs) == 0 {
		return nil
	}
	models := make([]*model.Document, len(docs))
	for i, d := range docs {
		models[i] = r.mapper.ToModel(d)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", contract.ErrDuplicateKey, err)
		}
		return err
	}

	for i, m := range models {
		*docs[i] = *r.mapper.ToEntity(m)
		r.publishChange(realtime.EventInsert, m, nil)
	}
	return nil
}

func (r *DocumentRepositoryImpl) Update(ctx context.Context, doc *entity.Document) error {
	m := r.mapper.ToModel(doc)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	r.publishChange(realtime.EventUpdate, m, nil)
	return nil
}

func (r *DocumentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Document{}, id).Error; err != nil {
		return err
	}
	// Delete events carry the old row; subscribers only need the id.
	r.publishChange(realtime.EventDelete, nil, map[string]any{"id": id})
	return nil
}

func (r *DocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error) {
	var m model.Document
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error) {
	var models []*model.Document
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Document{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchSimilarWithScore ranks documents by cosine similarity to the query
// vector. Cosine distance in pgvector is 1 - cosine_similarity, so
// 1 - (embedding <=> query_vector) recovers the similarity.
func (r *DocumentRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.Document
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("documents").
		Select("documents.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("documents.deleted_at IS NULL").
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredDocument, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredDocument{
			Document:   r.mapper.ToEntity(&res.Document),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
