package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegulationRow struct {
	Id        uuid.UUID  `json:"id"`
	Content   string     `json:"content"`
	Source    string     `json:"source"`
	ArticleNo string     `json:"article_no,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
