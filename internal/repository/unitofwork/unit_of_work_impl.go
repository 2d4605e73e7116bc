package unitofwork

import (
	"context"
	"fmt"

	"regboard-be/internal/repository/contract"
	"regboard-be/internal/repository/implementation"
	"regboard-be/pkg/realtime"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db     *gorm.DB
	broker *realtime.Broker
	tx     *gorm.DB // The active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB, broker *realtime.Broker) UnitOfWork {
	return &UnitOfWorkImpl{
		db:     db,
		broker: broker,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) DocumentRepository() contract.DocumentRepository {
	return implementation.NewDocumentRepository(u.getDB(), u.broker)
}

func (u *UnitOfWorkImpl) RegulationRepository() contract.RegulationRepository {
	return implementation.NewRegulationRepository(u.getDB(), u.broker)
}
