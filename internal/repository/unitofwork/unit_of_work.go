package unitofwork

import (
	"context"
	"errors"

	"solar-catalog-be/internal/repository/contract"
)

var (
	ErrTxActive = errors.New("transaction already started")
	ErrNoTx     = errors.New("no transaction in progress")
)

// UnitOfWork hands out repositories that share one store handle. Between
// Begin and Commit/Rollback every repository writes inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SeriesRepository() contract.SeriesRepository
	ProductRepository() contract.ProductRepository
	AdminRepository() contract.AdminRepository
	ContactMessageRepository() contract.ContactMessageRepository
}

type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}

// Transact runs fn inside a transaction, committing when it returns nil.
func Transact(ctx context.Context, factory RepositoryFactory, fn func(uow UnitOfWork) error) error {
	uow := factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := fn(uow); err != nil {
		_ = uow.Rollback()
		return err
	}
	return uow.Commit()
}
