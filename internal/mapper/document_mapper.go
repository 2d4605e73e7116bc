package mapper

import (
	"encoding/json"
	"time"

	"regboard-be/internal/entity"
	"regboard-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	var metadata map[string]any
	if len(d.Metadata) > 0 {
		// Undecodable metadata stays nil rather than failing the read.
		_ = json.Unmarshal(d.Metadata, &metadata)
	}

	return &entity.Document{
		Id:         d.Id,
		Content:    d.Content,
		Source:     d.Source,
		ChunkIndex: d.ChunkIndex,
		Metadata:   metadata,
		Embedding:  d.Embedding.Slice(),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  d.DeletedAt.Valid,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	var metadata datatypes.JSON
	if d.Metadata != nil {
		raw, err := json.Marshal(d.Metadata)
		if err == nil {
			metadata = raw
		}
	}

	return &model.Document{
		Id:         d.Id,
		Content:    d.Content,
		Source:     d.Source,
		ChunkIndex: d.ChunkIndex,
		Metadata:   metadata,
		Embedding:  pgvector.NewVector(d.Embedding),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

func (m *DocumentMapper) ToModels(docs []*entity.Document) []*model.Document {
	models := make([]*model.Document, len(docs))
	for i, d := range docs {
		models[i] = m.ToModel(d)
	}
	return models
}
