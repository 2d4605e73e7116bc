package contract

import (
	"context"
	"errors"

	"regboard-be/internal/entity"
	"regboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ErrDuplicateKey is returned when an insert collides with the corpus unique
// indexes (same source + chunk, or source + article). Ingest treats it as
// "already loaded" and moves on.
var ErrDuplicateKey = errors.New("duplicate key")

// ScoredDocument wraps Document with its similarity score
type ScoredDocument struct {
	Document   *entity.Document
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	CreateBulk(ctx context.Context, docs []*entity.Document) error
	Update(ctx context.Context, doc *entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns documents with their similarity scores, filtered by threshold
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredDocument, error)
}
