package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document is one chunk of an ingested source document together with its
// embedding. Rows are published on the realtime broker, so the JSON tags
// are the wire names dashboard sessions decode.
type Document struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Content    string          `gorm:"type:text;not null" json:"content"`
	Source     string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_documents_source_chunk" json:"source"`
	ChunkIndex int             `gorm:"default:0;uniqueIndex:idx_documents_source_chunk" json:"chunk_idx"` // 0-based index for ordering
	Metadata   datatypes.JSON  `gorm:"type:jsonb" json:"metadata,omitempty"`
	Embedding  pgvector.Vector `gorm:"type:vector(768)" json:"-"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Document) TableName() string {
	return "documents"
}
