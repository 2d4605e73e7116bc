package dto

import "github.com/google/uuid"

type SearchRequest struct {
	Query          string   `json:"query" validate:"required"`
	MatchCount     int      `json:"match_count" validate:"omitempty,min=1,max=100"`
	MatchThreshold *float64 `json:"match_threshold" validate:"omitempty,min=0,max=1"`
	DocType        string   `json:"doc_type" validate:"omitempty,oneof=document regulation"`
}

type SearchResult struct {
	Id         uuid.UUID `json:"id"`
	DocType    string    `json:"doc_type"`
	Content    string    `json:"content"`
	Source     string    `json:"source"`
	ChunkIndex int       `json:"chunk_idx"`
	ArticleNo  string    `json:"article_no,omitempty"`
	Similarity float64   `json:"similarity"` // 0.0-1.0, descending over the result list
}

// SearchResponse is the documented wire shape of POST /api/search/v1; it is
// returned as-is, not wrapped in the standard success envelope.
type SearchResponse struct {
	Success            bool           `json:"success"`
	Data               []SearchResult `json:"data"`
	Query              string         `json:"query"`
	EmbeddingDimension int            `json:"embedding_dimension"`
}
