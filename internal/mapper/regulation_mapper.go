package mapper

import (
	"time"

	"regboard-be/internal/entity"
	"regboard-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type RegulationMapper struct{}

func NewRegulationMapper() *RegulationMapper {
	return &RegulationMapper{}
}

func (m *RegulationMapper) ToEntity(r *model.Regulation) *entity.Regulation {
	if r == nil {
		return nil
	}

	var deletedAt *time.Time
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Regulation{
		Id:        r.Id,
		Content:   r.Content,
		Source:    r.Source,
		ArticleNo: r.ArticleNo,
		Embedding: r.Embedding.Slice(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: r.DeletedAt.Valid,
	}
}

func (m *RegulationMapper) ToModel(r *entity.Regulation) *model.Regulation {
	if r == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if r.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *r.DeletedAt, Valid: true}
	} else if r.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.Regulation{
		Id:        r.Id,
		Content:   r.Content,
		Source:    r.Source,
		ArticleNo: r.ArticleNo,
		Embedding: pgvector.NewVector(r.Embedding),
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *RegulationMapper) ToEntities(regs []*model.Regulation) []*entity.Regulation {
	entities := make([]*entity.Regulation, len(regs))
	for i, r := range regs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *RegulationMapper) ToModels(regs []*entity.Regulation) []*model.Regulation {
	models := make([]*model.Regulation, len(regs))
	for i, r := range regs {
		models[i] = m.ToModel(r)
	}
	return models
}
