package entity

import (
	"time"

	"github.com/google/uuid"
)

type Regulation struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Content   string
	Source    string
	ArticleNo string
	Embedding []float32
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
