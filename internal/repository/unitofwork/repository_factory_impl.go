package unitofwork

import (
	"context"

	"regboard-be/pkg/realtime"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db     *gorm.DB
	broker *realtime.Broker
}

func NewRepositoryFactory(db *gorm.DB, broker *realtime.Broker) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db:     db,
		broker: broker,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// UoW is short lived per request; the context is consumed by Begin() or
	// passed explicitly to repository calls.
	return NewUnitOfWork(f.db, f.broker)
}
