package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/windsor-dist/storefront-api/internal/catalog"
)

func newService(t *testing.T, cache *catalog.Cache) *catalog.Service {
	t.Helper()
	svc, err := catalog.NewService(catalog.ServiceConfig{
		Products:     catalog.SeedProducts(),
		Cache:        cache,
		Logger:       zerolog.Nop(),
		DefaultLimit: 20,
		MaxLimit:     100,
	})
	require.NoError(t, err)
	return svc
}

func TestListFilterByCategory(t *testing.T) {
	svc := newService(t, nil)
	result, err := svc.List(context.Background(), catalog.ListParams{Category: catalog.CategoryDoor})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	for _, item := range result.Items {
		require.Equal(t, catalog.CategoryDoor, item.Category)
	}
}

func TestListFilterConfigurableAndPrice(t *testing.T) {
	svc := newService(t, nil)
	configurable := false
	result, err := svc.List(context.Background(), catalog.ListParams{Configurable: &configurable})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	require.Equal(t, "ACC-HDL-1201", result.Items[0].SKU)

	minPrice := int64(10000)
	result, err = svc.List(context.Background(), catalog.ListParams{MinPrice: &minPrice})
	require.NoError(t, err)
	for _, item := range result.Items {
		require.GreaterOrEqual(t, item.BasePrice, minPrice)
	}
}

func TestListSortByPrice(t *testing.T) {
	svc := newService(t, nil)
	result, err := svc.List(context.Background(), catalog.ListParams{Sort: "price_asc"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Items)
	for i := 1; i < len(result.Items); i++ {
		require.LessOrEqual(t, result.Items[i-1].BasePrice, result.Items[i].BasePrice)
	}
}

func TestListPagination(t *testing.T) {
	svc := newService(t, nil)
	result, err := svc.List(context.Background(), catalog.ListParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	require.Equal(t, 6, result.Total)

	last, err := svc.List(context.Background(), catalog.ListParams{Page: 4, Limit: 2})
	require.NoError(t, err)
	require.Empty(t, last.Items)
	require.Equal(t, 6, last.Total)
}

func TestDetailNotFound(t *testing.T) {
	svc := newService(t, nil)
	_, err := svc.Detail(context.Background(), "prod-999")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestListUsesCache(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := newService(t, catalog.NewCache(client, time.Minute))
	ctx := context.Background()

	first, err := svc.List(ctx, catalog.ListParams{Category: catalog.CategoryWindow})
	require.NoError(t, err)
	require.Equal(t, 2, first.Total)
	require.NotEmpty(t, srv.Keys())

	second, err := svc.List(ctx, catalog.ListParams{Category: catalog.CategoryWindow})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDetailCachedPayloadRoundTrips(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := newService(t, catalog.NewCache(client, time.Minute))
	ctx := context.Background()

	p, err := svc.Detail(ctx, "prod-001")
	require.NoError(t, err)
	require.NotNil(t, p.Constraints)

	cached, err := svc.Detail(ctx, "prod-001")
	require.NoError(t, err)
	require.Equal(t, p.Constraints.Width, cached.Constraints.Width)
	require.Len(t, cached.Constraints.Glass, len(p.Constraints.Glass))
}
