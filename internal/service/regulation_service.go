package service

import (
	"context"

	"regboard-be/internal/dto"
	"regboard-be/internal/repository/specification"
	"regboard-be/internal/repository/unitofwork"
	"regboard-be/pkg/store"
)

type IRegulationService interface {
	ListRecent(ctx context.Context, limit int, source string, articleNo string) ([]dto.RegulationRow, error)
}

type regulationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRegulationService(uowFactory unitofwork.RepositoryFactory) IRegulationService {
	return &regulationService{
		uowFactory: uowFactory,
	}
}

func (c *regulationService) ListRecent(ctx context.Context, limit int, source string, articleNo string) ([]dto.RegulationRow, error) {
	if limit <= 0 || limit > store.DefaultPageSize {
		limit = store.DefaultPageSize
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	}
	if source != "" {
		specs = append(specs, specification.BySource{Source: source})
	}
	if articleNo != "" {
		specs = append(specs, specification.ByArticleNo{ArticleNo: articleNo})
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	regs, err := uow.RegulationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.RegulationRow, 0, len(regs))
	for _, reg := range regs {
		rows = append(rows, dto.RegulationRow{
			Id:        reg.Id,
			Content:   reg.Content,
			Source:    reg.Source,
			ArticleNo: reg.ArticleNo,
			CreatedAt: reg.CreatedAt,
			UpdatedAt: reg.UpdatedAt,
		})
	}
	return rows, nil
}
