package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Content    string
	Source     string
	ChunkIndex int
	Metadata   map[string]any
	Embedding  []float32
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
