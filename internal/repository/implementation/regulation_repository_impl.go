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

type RegulationRepositoryImpl struct {
	db     *gorm.DB
	broker *realtime.Broker
	mapper *mapper.RegulationMapper
}

func NewRegulationRepository(db *gorm.DB, broker *realtime.Broker) contract.RegulationRepository {
	return &RegulationRepositoryImpl{
		db:     db,
		broker: broker,
		mapper: mapper.NewRegulationMapper(),
	}
}

func (r *RegulationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RegulationRepositoryImpl) publishChange(eventType realtime.EventType, newRow, oldRow any) {
	if r.broker == nil {
		return
	}
	evt, err := realtime.NewEvent(model.Regulation{}.TableName(), eventType, newRow, oldRow)
	if err != nil {
		log.Printf("[WARN] Failed to build %s change event: %v", eventType, err)
		return
	}
	if err := r.broker.Publish(evt); err != nil {
		log.Printf("[WARN] Failed to publish %s change event: %v", eventType, err)
	}
}

func (r *RegulationRepositoryImpl) Create(ctx context.Context, reg *entity.Regulation) error {
	m := r.mapper.ToModel(reg)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", contract.ErrDuplicateKey, err)
		}
		return err
	}
	*reg = *r.mapper.ToEntity(m)
	r.publishChange(realtime.EventInsert, m, nil)
	return nil
}

func (r *RegulationRepositoryImpl) CreateBulk(ctx context.Context, regs []*entity.Regulation) error {
	if len(regs) == 0 {
		return nil
	}
	models := make([]*model.Regulation, len(regs))
	for i, reg := range regs {
		models[i] = r.mapper.ToModel(reg)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", contract.ErrDuplicateKey, err)
		}
		return err
	}

	for i, m := range models {
		*regs[i] = *r.mapper.ToEntity(m)
		r.publishChange(realtime.EventInsert, m, nil)
	}
	return nil
}

func (r *RegulationRepositoryImpl) Update(ctx context.Context, reg *entity.Regulation) error {
	m := r.mapper.ToModel(reg)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*reg = *r.mapper.ToEntity(m)
	r.publishChange(realtime.EventUpdate, m, nil)
	return nil
}

func (r *RegulationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.Regulation{}, id).Error; err != nil {
		return err
	}
	r.publishChange(realtime.EventDelete, nil, map[string]any{"id": id})
	return nil
}

func (r *RegulationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Regulation, error) {
	var m model.Regulation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RegulationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Regulation, error) {
	var models []*model.Regulation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RegulationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Regulation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RegulationRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredRegulation, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.Regulation
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("regulations").
		Select("regulations.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("regulations.deleted_at IS NULL").
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredRegulation, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredRegulation{
			Regulation: r.mapper.ToEntity(&res.Regulation),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
