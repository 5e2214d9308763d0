// Package memory is a process-local store driver selected with
// DB_DRIVER=memory. It mirrors the Postgres constraints the services rely on
// (unique series name/slug, unique admin email, series foreign key) and
// supports snapshot transactions.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/repository/contract"
	"solar-catalog-be/internal/repository/unitofwork"
)

type Store struct {
	mu       sync.RWMutex
	series   []*entity.Series
	products []*entity.Product
	admins   []*entity.Admin
	messages []*entity.ContactMessage
}

func NewStore() *Store {
	return &Store{}
}

type snapshot struct {
	series   []*entity.Series
	products []*entity.Product
	admins   []*entity.Admin
	messages []*entity.ContactMessage
}

func (s *Store) snapshot() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &snapshot{
		series:   make([]*entity.Series, len(s.series)),
		products: make([]*entity.Product, len(s.products)),
		admins:   make([]*entity.Admin, len(s.admins)),
		messages: make([]*entity.ContactMessage, len(s.messages)),
	}
	for i, v := range s.series {
		c := *v
		snap.series[i] = &c
	}
	for i, v := range s.products {
		snap.products[i] = v.Clone()
	}
	for i, v := range s.admins {
		c := *v
		snap.admins[i] = &c
	}
	for i, v := range s.messages {
		c := *v
		snap.messages[i] = &c
	}
	return snap
}

func (s *Store) restore(snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.series = snap.series
	s.products = snap.products
	s.admins = snap.admins
	s.messages = snap.messages
}

func sortByDisplayOrder[T any](items []T, order func(T) int, created func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		if order(items[i]) != order(items[j]) {
			return order(items[i]) < order(items[j])
		}
		return created(items[i]).Before(created(items[j]))
	})
}

type repositoryFactory struct {
	store *Store
}

func NewRepositoryFactory(store *Store) unitofwork.RepositoryFactory {
	return &repositoryFactory{store: store}
}

func (f *repositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

// unitOfWork snapshots the store on Begin and restores it on Rollback.
// Writes from concurrent requests during a transaction are lost on rollback,
// which is acceptable for a development driver.
type unitOfWork struct {
	store *Store
	snap  *snapshot
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.snap != nil {
		return unitofwork.ErrTxActive
	}
	u.snap = u.store.snapshot()
	return nil
}

func (u *unitOfWork) Commit() error {
	if u.snap == nil {
		return unitofwork.ErrNoTx
	}
	u.snap = nil
	return nil
}

func (u *unitOfWork) Rollback() error {
	if u.snap == nil {
		return unitofwork.ErrNoTx
	}
	u.store.restore(u.snap)
	u.snap = nil
	return nil
}

func (u *unitOfWork) SeriesRepository() contract.SeriesRepository {
	return &seriesRepository{store: u.store}
}

func (u *unitOfWork) ProductRepository() contract.ProductRepository {
	return &productRepository{store: u.store}
}

func (u *unitOfWork) AdminRepository() contract.AdminRepository {
	return &adminRepository{store: u.store}
}

func (u *unitOfWork) ContactMessageRepository() contract.ContactMessageRepository {
	return &contactMessageRepository{store: u.store}
}
