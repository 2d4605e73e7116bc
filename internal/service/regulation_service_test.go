package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regboard-be/internal/entity"
	"regboard-be/internal/repository/specification"
	"regboard-be/pkg/store"
)

func TestRegulationListRecent(t *testing.T) {
	factory, _, regs := newFakeFactory()
	regs.findAllResult = []*entity.Regulation{
		{Id: uuid.New(), Content: "article body", Source: "GDPR", ArticleNo: "5"},
	}
	svc := NewRegulationService(factory)

	rows, err := svc.ListRecent(context.Background(), 0, "GDPR", "5")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "article body", rows[0].Content)
	assert.Equal(t, "5", rows[0].ArticleNo)

	assert.Equal(t, store.DefaultPageSize, paginationOf(t, regs.findAllSpecs).Limit)
	assert.Contains(t, regs.findAllSpecs, specification.BySource{Source: "GDPR"})
	assert.Contains(t, regs.findAllSpecs, specification.ByArticleNo{ArticleNo: "5"})
	assert.Contains(t, regs.findAllSpecs, specification.OrderBy{Field: "created_at", Desc: true})
}
