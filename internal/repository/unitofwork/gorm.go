package unitofwork

import (
	"context"

	"solar-catalog-be/internal/repository/contract"
	"solar-catalog-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type gormFactory struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &gormFactory{db: db}
}

func (f *gormFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &gormUnitOfWork{db: f.db.WithContext(ctx)}
}

type gormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

func (u *gormUnitOfWork) conn() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *gormUnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTxActive
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *gormUnitOfWork) Commit() error {
	if u.tx == nil {
		return ErrNoTx
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *gormUnitOfWork) Rollback() error {
	if u.tx == nil {
		return ErrNoTx
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *gormUnitOfWork) SeriesRepository() contract.SeriesRepository {
	return implementation.NewSeriesRepository(u.conn())
}

func (u *gormUnitOfWork) ProductRepository() contract.ProductRepository {
	return implementation.NewProductRepository(u.conn())
}

func (u *gormUnitOfWork) AdminRepository() contract.AdminRepository {
	return implementation.NewAdminRepository(u.conn())
}

func (u *gormUnitOfWork) ContactMessageRepository() contract.ContactMessageRepository {
	return implementation.NewContactMessageRepository(u.conn())
}
