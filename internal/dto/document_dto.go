package dto

import (
	"time"

	"github.com/google/uuid"
)

type DocumentRow struct {
	Id         uuid.UUID      `json:"id"`
	Content    string         `json:"content"`
	Source     string         `json:"source"`
	ChunkIndex int            `json:"chunk_idx"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

type UpdateDocumentRequest struct {
	Id                  uuid.UUID
	Content             string `json:"content" validate:"required"`
	RegenerateEmbedding bool   `json:"regenerate_embedding"`
}

// UpdateDocumentResponse is the documented wire shape of
// PATCH /api/document/v1/:id.
type UpdateDocumentResponse struct {
	Success              bool        `json:"success"`
	Data                 DocumentRow `json:"data"`
	EmbeddingRegenerated bool        `json:"embedding_regenerated"`
}
