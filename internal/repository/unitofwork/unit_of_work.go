package unitofwork

import (
	"context"

	"regboard-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DocumentRepository() contract.DocumentRepository
	RegulationRepository() contract.RegulationRepository
}
