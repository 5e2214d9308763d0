package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/repository/contract"
	"solar-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUow(t *testing.T) (*Store, func() *unitOfWork) {
	t.Helper()
	store := NewStore()
	factory := NewRepositoryFactory(store)
	return store, func() *unitOfWork {
		return factory.NewUnitOfWork(context.Background()).(*unitOfWork)
	}
}

func TestSeriesRepository_UniqueNameAndSlug(t *testing.T) {
	ctx := context.Background()
	_, uow := newUow(t)
	repo := uow().SeriesRepository()

	require.NoError(t, repo.Create(ctx, &entity.Series{Name: "Rex", Slug: "rex", Description: "d"}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Series{Name: "Rex", Slug: "other", Description: "d"}), contract.ErrDuplicate)
	assert.ErrorIs(t, repo.Create(ctx, &entity.Series{Name: "Other", Slug: "rex", Description: "d"}), contract.ErrDuplicate)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSeriesRepository_SortedByOrderThenCreated(t *testing.T) {
	ctx := context.Background()
	_, uow := newUow(t)
	repo := uow().SeriesRepository()

	base := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.Series{Name: "C", Slug: "c", Order: 2, CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &entity.Series{Name: "B", Slug: "b", Order: 1, CreatedAt: base.Add(time.Second)}))
	require.NoError(t, repo.Create(ctx, &entity.Series{Name: "A", Slug: "a", Order: 1, CreatedAt: base}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{all[0].Name, all[1].Name, all[2].Name})
}

func TestSeriesRepository_DeleteBlockedByProducts(t *testing.T) {
	ctx := context.Background()
	_, uow := newUow(t)
	u := uow()

	series := &entity.Series{Name: "Rex", Slug: "rex"}
	require.NoError(t, u.SeriesRepository().Create(ctx, series))
	product := &entity.Product{Name: "P", Slug: "p", SeriesId: series.Id, Active: true}
	require.NoError(t, u.ProductRepository().Create(ctx, product))

	assert.ErrorIs(t, u.SeriesRepository().Delete(ctx, series.Id), contract.ErrReferenced)

	require.NoError(t, u.ProductRepository().Delete(ctx, product.Id))
	require.NoError(t, u.SeriesRepository().Delete(ctx, series.Id))
	found, err := u.SeriesRepository().FindByID(ctx, series.Id)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProductRepository_ForeignKey(t *testing.T) {
	_, uow := newUow(t)
	err := uow().ProductRepository().Create(context.Background(), &entity.Product{Name: "P", SeriesId: uuid.New()})
	assert.ErrorIs(t, err, contract.ErrReferenced)
}

func TestProductRepository_FilterAndPaging(t *testing.T) {
	ctx := context.Background()
	_, uow := newUow(t)
	u := uow()

	a := &entity.Series{Name: "A", Slug: "a"}
	b := &entity.Series{Name: "B", Slug: "b"}
	require.NoError(t, u.SeriesRepository().Create(ctx, a))
	require.NoError(t, u.SeriesRepository().Create(ctx, b))

	for i, p := range []*entity.Product{
		{Name: "a1", SeriesId: a.Id, Order: 3, Active: true},
		{Name: "a2", SeriesId: a.Id, Order: 1, Active: true},
		{Name: "a3", SeriesId: a.Id, Order: 2, Active: false},
		{Name: "b1", SeriesId: b.Id, Order: 0, Active: true},
	} {
		p.Slug = p.Name
		require.NoError(t, u.ProductRepository().Create(ctx, p), "product %d", i)
	}

	repo := u.ProductRepository()

	public, err := repo.FindAll(ctx, contract.ProductFilter{SeriesId: &a.Id})
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a1"}, names(public))

	withInactive, err := repo.FindAll(ctx, contract.ProductFilter{SeriesId: &a.Id, IncludeInactive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a3", "a1"}, names(withInactive))

	page, err := repo.FindAll(ctx, contract.ProductFilter{IncludeInactive: true, Limit: 2, Skip: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"a2", "a3"}, names(page))

	total, err := repo.Count(ctx, contract.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	bySeries, err := repo.CountBySeries(ctx, a.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), bySeries)
}

func TestProductRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	_, uow := newUow(t)
	u := uow()

	series := &entity.Series{Name: "A", Slug: "a"}
	require.NoError(t, u.SeriesRepository().Create(ctx, series))
	product := &entity.Product{Name: "p", Slug: "p", SeriesId: series.Id, Features: []string{"x"}, Active: true}
	require.NoError(t, u.ProductRepository().Create(ctx, product))

	product.Features[0] = "mutated"
	found, err := u.ProductRepository().FindByID(ctx, product.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, found.Features)
}

func TestUnitOfWork_RollbackRestoresSnapshot(t *testing.T) {
	ctx := context.Background()
	_, uow := newUow(t)

	u := uow()
	require.NoError(t, u.Begin(ctx))
	require.NoError(t, u.SeriesRepository().Create(ctx, &entity.Series{Name: "Temp", Slug: "temp"}))
	require.NoError(t, u.Rollback())

	all, err := uow().SeriesRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	u = uow()
	require.NoError(t, u.Begin(ctx))
	require.NoError(t, u.SeriesRepository().Create(ctx, &entity.Series{Name: "Kept", Slug: "kept"}))
	require.NoError(t, u.Commit())
	assert.ErrorIs(t, u.Rollback(), unitofwork.ErrNoTx)

	all, err = uow().SeriesRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTransact_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(NewStore())
	errStop := errors.New("stop")

	err := unitofwork.Transact(ctx, factory, func(u unitofwork.UnitOfWork) error {
		require.NoError(t, u.SeriesRepository().Create(ctx, &entity.Series{Name: "Temp", Slug: "temp"}))
		return errStop
	})
	assert.ErrorIs(t, err, errStop)

	err = unitofwork.Transact(ctx, factory, func(u unitofwork.UnitOfWork) error {
		return u.SeriesRepository().Create(ctx, &entity.Series{Name: "Kept", Slug: "kept"})
	})
	require.NoError(t, err)

	all, err := factory.NewUnitOfWork(ctx).SeriesRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "kept", all[0].Slug)
}

func TestContactMessageRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	_, uow := newUow(t)
	repo := uow().ContactMessageRepository()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &entity.ContactMessage{Name: name}))
	}

	msgs, err := repo.FindAll(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "third", msgs[0].Name)
	assert.Equal(t, "second", msgs[1].Name)

	msgs, err = repo.FindAll(ctx, 10, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "first", msgs[0].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestLoginAttemptRepository(t *testing.T) {
	repo := NewLoginAttemptRepository(2, time.Minute)

	assert.True(t, repo.Allowed("k"))
	repo.Fail("k")
	assert.True(t, repo.Allowed("k"))
	repo.Fail("k")
	assert.False(t, repo.Allowed("k"))
	assert.True(t, repo.Allowed("other"))

	repo.Reset("k")
	assert.True(t, repo.Allowed("k"))
}

func TestLoginAttemptRepository_WindowExpires(t *testing.T) {
	repo := NewLoginAttemptRepository(1, 20*time.Millisecond)
	repo.Fail("k")
	assert.False(t, repo.Allowed("k"))

	assert.Eventually(t, func() bool { return repo.Allowed("k") }, time.Second, 10*time.Millisecond)
}

func names(products []*entity.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}
