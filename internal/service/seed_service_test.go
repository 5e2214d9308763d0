package service

import (
	"context"
	"net/http"
	"testing"

	"solar-catalog-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_SeedCatalogIsIdempotent(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewSeedService(factory, nopLogger())
	ctx := context.Background()

	first, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(demoSeries), first.SeriesCreated)
	assert.Equal(t, len(demoProducts), first.ProductsCreated)

	second, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.SeriesCreated)
	assert.Equal(t, len(demoSeries), second.SeriesReused)
	assert.Zero(t, second.ProductsCreated)
	assert.Equal(t, len(demoProducts), second.ProductsSkipped)

	products := NewProductService(factory, &fakeUploader{}, &recordingPublisher{}, nopLogger())
	list, err := products.List(ctx, &dto.ProductListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(len(demoProducts)), list.Total)

	rex, err := products.ShowBySlug(ctx, "rex-400w-panel")
	require.NoError(t, err)
	assert.NotEmpty(t, rex.Features)
	assert.Equal(t, "400W", rex.Specifications["power"])
}

func TestSeedService_SeedAdmin(t *testing.T) {
	svc := NewSeedService(newTestFactory(t), nopLogger())
	ctx := context.Background()

	_, err := svc.SeedAdmin(ctx, "", "pw")
	requireStatus(t, err, http.StatusBadRequest)

	res, err := svc.SeedAdmin(ctx, "Admin@Example.com", "pw")
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "admin@example.com", res.Email)

	res, err = svc.SeedAdmin(ctx, "admin@example.com", "other")
	require.NoError(t, err)
	assert.False(t, res.Created)
}
