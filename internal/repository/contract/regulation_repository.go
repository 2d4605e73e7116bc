package contract

import (
	"context"

	"regboard-be/internal/entity"
	"regboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredRegulation wraps Regulation with its similarity score
type ScoredRegulation struct {
	Regulation *entity.Regulation
	Similarity float64
}

type RegulationRepository interface {
	Create(ctx context.Context, reg *entity.Regulation) error
	CreateBulk(ctx context.Context, regs []*entity.Regulation) error
	Update(ctx context.Context, reg *entity.Regulation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Regulation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Regulation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredRegulation, error)
}
