package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// Regulation is a curated regulation article kept separate from the raw
// document chunks so searches can target either corpus.
type Regulation struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Content   string          `gorm:"type:text;not null" json:"content"`
	Source    string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_regulations_source_article" json:"source"`
	ArticleNo string          `gorm:"type:varchar(64);uniqueIndex:idx_regulations_source_article" json:"article_no,omitempty"`
	Embedding pgvector.Vector `gorm:"type:vector(768)" json:"-"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Regulation) TableName() string {
	return "regulations"
}
